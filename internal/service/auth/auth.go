package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"geleverd/internal/entities"
)

const TokenTypeBearer = "bearer"

type Auth struct {
	admins   AdminRepository
	secret   []byte
	tokenTTL time.Duration
}

func New(admins AdminRepository, secret string, tokenTTL time.Duration) *Auth {
	return &Auth{
		admins:   admins,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// Login checks the credentials and issues a bearer token. Unknown
// usernames and wrong passwords produce the same error so the response
// does not leak which admins exist.
func (s *Auth) Login(ctx context.Context, username, password string) (*entities.AdminSession, error) {
	admin, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.HashedPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token, err := s.issueToken(admin.Username, now)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	admin.LastLogin = &now

	return &entities.AdminSession{
		AccessToken: token,
		TokenType:   TokenTypeBearer,
		Admin:       *admin,
	}, nil
}

// VerifyToken resolves a bearer token back to its admin. Any parsing
// or signature problem is reported as ErrInvalidToken.
func (s *Auth) VerifyToken(ctx context.Context, tokenString string) (*entities.Admin, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	admin, err := s.admins.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrAdminNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to load admin: %w", err)
	}

	if !admin.IsActive {
		return nil, ErrAccountDisabled
	}

	return admin, nil
}

func (s *Auth) issueToken(username string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// HashPassword is used by the seeder when it creates the initial admin
// account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
