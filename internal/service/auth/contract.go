//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"geleverd/internal/entities"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	UpdateLastLogin(ctx context.Context, id string, lastLogin time.Time) error
}
