package customer

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"geleverd/internal/entities"
	"geleverd/internal/repository"
	"geleverd/internal/service/order"
)

const customerColumns = `id, name, email, phone, company, total_orders, is_active, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerEntity entities.Customer) (*entities.Customer, error) {
	customerModel := FromDomain(&customerEntity)

	query := `INSERT INTO customers (id, name, email, phone, company, total_orders, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + customerColumns

	created, err := scanCustomer(r.querier.QueryRow(
		ctx,
		query,
		customerModel.ID,
		customerModel.Name,
		customerModel.Email,
		customerModel.Phone,
		customerModel.Company,
		customerModel.TotalOrders,
		customerModel.IsActive,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	query := `SELECT ` + customerColumns + `
		FROM customers
		WHERE email = $1`

	customerModel, err := scanCustomer(r.querier.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("unexpected customer repository getbyemail error: %w", err)
	}

	return ToDomain(customerModel), nil
}

// IncrementTotalOrders bumps the counter atomically in the database so
// concurrent order creations for the same customer never lose updates.
func (r *Repository) IncrementTotalOrders(ctx context.Context, id string) error {
	query := `UPDATE customers SET total_orders = total_orders + 1 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected customer repository increment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrCustomerNotFound
	}

	return nil
}

func scanCustomer(row pgx.Row) (*CustomerDB, error) {
	var c CustomerDB
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.Company,
		&c.TotalOrders,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
