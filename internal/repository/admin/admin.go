package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"geleverd/internal/entities"
	"geleverd/internal/repository"
	"geleverd/internal/service/auth"
)

const adminColumns = `id, username, email, hashed_password, role, last_login, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, adminEntity entities.Admin) error {
	query := `INSERT INTO admins (id, username, email, hashed_password, role, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.querier.Exec(
		ctx,
		query,
		adminEntity.ID,
		adminEntity.Username,
		adminEntity.Email,
		adminEntity.HashedPassword,
		adminEntity.Role,
		adminEntity.IsActive,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return auth.ErrConflict
		}
		return fmt.Errorf("unexpected admin repository create error: %w", err)
	}

	return nil
}

func (r *Repository) GetByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	query := `SELECT ` + adminColumns + `
		FROM admins
		WHERE username = $1`

	var adminModel AdminDB
	err := r.querier.QueryRow(ctx, query, username).
		Scan(
			&adminModel.ID,
			&adminModel.Username,
			&adminModel.Email,
			&adminModel.HashedPassword,
			&adminModel.Role,
			&adminModel.LastLogin,
			&adminModel.IsActive,
			&adminModel.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAdminNotFound
		}
		return nil, fmt.Errorf("unexpected admin repository getbyusername error: %w", err)
	}

	return ToDomain(&adminModel), nil
}

func (r *Repository) UpdateLastLogin(ctx context.Context, id string, lastLogin time.Time) error {
	query := `UPDATE admins SET last_login = $2 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, lastLogin)
	if err != nil {
		return fmt.Errorf("unexpected admin repository updatelastlogin error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return auth.ErrAdminNotFound
	}

	return nil
}
