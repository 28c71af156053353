package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"geleverd/internal/entities"
	"geleverd/internal/pkg/config"
	"geleverd/internal/service/auth"
	"geleverd/pkg/logger"
)

// Seeder fills an empty database with the default pricing rules and,
// when configured, a bootstrap admin account.
type Seeder struct {
	log       seedLogger
	admins    AdminRepository
	rules     RuleRepository
	txManager TxManager
	cfg       config.Seed
}

func New(
	log seedLogger,
	admins AdminRepository,
	rules RuleRepository,
	txManager TxManager,
	cfg config.Seed,
) *Seeder {
	return &Seeder{
		log:       log.With(),
		admins:    admins,
		rules:     rules,
		txManager: txManager,
		cfg:       cfg,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.seedPricingRules(ctx); err != nil {
			return err
		}
		return s.seedAdmin(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to seed database: %w", err)
	}
	return nil
}

func (s *Seeder) seedPricingRules(ctx context.Context) error {
	count, err := s.rules.Count(ctx)
	if err != nil {
		return fmt.Errorf("count pricing rules: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []entities.PricingRule{
		{
			Name:           "Standaard bestelauto",
			VehicleType:    entities.Bestelauto,
			BasePrice:      25.0,
			PricePerKm:     1.2,
			TimeMultiplier: 1.0,
			AreaMultiplier: 1.0,
			IsActive:       true,
		},
		{
			Name:           "Standaard bestelbus",
			VehicleType:    entities.Bestelbus,
			BasePrice:      35.0,
			PricePerKm:     1.5,
			TimeMultiplier: 1.0,
			AreaMultiplier: 1.0,
			IsActive:       true,
		},
		{
			Name:           "Standaard bakwagen",
			VehicleType:    entities.Bakwagen,
			BasePrice:      45.0,
			PricePerKm:     1.8,
			TimeMultiplier: 1.0,
			AreaMultiplier: 1.0,
			IsActive:       true,
		},
	}

	for _, rule := range defaults {
		rule.ID = uuid.NewString()
		if err := s.rules.Create(ctx, rule); err != nil {
			return fmt.Errorf("create pricing rule %q: %w", rule.Name, err)
		}
	}

	s.log.With(
		logger.NewField("count", len(defaults)),
	).Info("seeded default pricing rules")
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	if s.cfg.AdminUsername == "" {
		return nil
	}

	_, err := s.admins.GetByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, auth.ErrAdminNotFound) {
		return fmt.Errorf("get admin: %w", err)
	}

	hashed, err := auth.HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	adminEntity := entities.Admin{
		ID:             uuid.NewString(),
		Username:       s.cfg.AdminUsername,
		Email:          s.cfg.AdminUsername + "@geleverd.local",
		HashedPassword: hashed,
		Role:           entities.RoleAdmin,
		IsActive:       true,
	}
	if err := s.admins.Create(ctx, adminEntity); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	s.log.With(
		logger.NewField("username", adminEntity.Username),
	).Info("seeded bootstrap admin")
	return nil
}
