package pricingrule

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"geleverd/internal/entities"
	"geleverd/internal/repository"
	"geleverd/internal/service/pricing"
)

const pricingRuleColumns = `id, name, vehicle_type, base_price, price_per_km,
	time_multiplier, area_multiplier, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, ruleEntity entities.PricingRule) error {
	query := `INSERT INTO pricing_rules (id, name, vehicle_type, base_price, price_per_km, time_multiplier, area_multiplier, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.querier.Exec(
		ctx,
		query,
		ruleEntity.ID,
		ruleEntity.Name,
		ruleEntity.VehicleType.String(),
		ruleEntity.BasePrice,
		ruleEntity.PricePerKm,
		ruleEntity.TimeMultiplier,
		ruleEntity.AreaMultiplier,
		ruleEntity.IsActive,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return pricing.ErrConflict
		}
		return fmt.Errorf("unexpected pricing rule repository create error: %w", err)
	}

	return nil
}

// GetActiveByVehicleType returns the most recently created active rule
// for the vehicle type. Older rules stay in the table as history.
func (r *Repository) GetActiveByVehicleType(ctx context.Context, vehicleType entities.VehicleType) (*entities.PricingRule, error) {
	query := `SELECT ` + pricingRuleColumns + `
		FROM pricing_rules
		WHERE vehicle_type = $1 AND is_active = TRUE
		ORDER BY created_at DESC
		LIMIT 1`

	var ruleModel PricingRuleDB
	err := r.querier.QueryRow(ctx, query, vehicleType.String()).
		Scan(
			&ruleModel.ID,
			&ruleModel.Name,
			&ruleModel.VehicleType,
			&ruleModel.BasePrice,
			&ruleModel.PricePerKm,
			&ruleModel.TimeMultiplier,
			&ruleModel.AreaMultiplier,
			&ruleModel.IsActive,
			&ruleModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pricing.ErrRuleNotFound
		}
		return nil, fmt.Errorf("unexpected pricing rule repository getactive error: %w", err)
	}

	return ToDomain(&ruleModel), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM pricing_rules`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected pricing rule repository count error: %w", err)
	}

	return count, nil
}
