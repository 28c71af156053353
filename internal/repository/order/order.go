package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"geleverd/internal/entities"
	"geleverd/internal/repository"
	"geleverd/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, tracking_number, customer_id, customer_name, customer_email, customer_phone,
	pickup_street, pickup_city, pickup_postal_code, pickup_country,
	delivery_street, delivery_city, delivery_postal_code, delivery_country,
	vehicle_type, status, price, distance, courier_id, courier_name,
	pickup_time, delivery_time, estimated_delivery, special_instructions, notes,
	created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel := FromDomain(&orderEntity)

	query := `INSERT INTO orders (id, tracking_number, customer_id, customer_name, customer_email, customer_phone,
			pickup_street, pickup_city, pickup_postal_code, pickup_country,
			delivery_street, delivery_city, delivery_postal_code, delivery_country,
			vehicle_type, status, price, distance, courier_id, courier_name,
			pickup_time, delivery_time, estimated_delivery, special_instructions, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.TrackingNumber,
		orderModel.CustomerID,
		orderModel.CustomerName,
		orderModel.CustomerEmail,
		orderModel.CustomerPhone,
		orderModel.PickupStreet,
		orderModel.PickupCity,
		orderModel.PickupPostalCode,
		orderModel.PickupCountry,
		orderModel.DeliveryStreet,
		orderModel.DeliveryCity,
		orderModel.DeliveryPostalCode,
		orderModel.DeliveryCountry,
		orderModel.VehicleType,
		orderModel.Status,
		orderModel.Price,
		orderModel.Distance,
		orderModel.CourierID,
		orderModel.CourierName,
		orderModel.PickupTime,
		orderModel.DeliveryTime,
		orderModel.EstimatedDelivery,
		orderModel.SpecialInstructions,
		orderModel.Notes,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tracking_number = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbytracking error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC").
		Offset(filter.Skip).
		Limit(filter.Limit)

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Search != nil {
		pattern := "%" + *filter.Search + "%"
		builder = builder.Where(sq.Or{
			sq.ILike{"tracking_number": pattern},
			sq.ILike{"customer_name": pattern},
			sq.ILike{"customer_email": pattern},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 16)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list error: %w", err)
		}
		orderModels = append(orderModels, *orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", orderModifyModel.CourierID)
	}
	if orderModifyModel.CourierName != nil {
		builder = builder.Set("courier_name", orderModifyModel.CourierName)
	}
	if orderModifyModel.PickupTime != nil {
		builder = builder.Set("pickup_time", orderModifyModel.PickupTime)
	}
	if orderModifyModel.DeliveryTime != nil {
		builder = builder.Set("delivery_time", orderModifyModel.DeliveryTime)
	}
	if orderModifyModel.EstimatedDelivery != nil {
		builder = builder.Set("estimated_delivery", orderModifyModel.EstimatedDelivery)
	}
	if orderModifyModel.Notes != nil {
		builder = builder.Set("notes", orderModifyModel.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.TrackingNumber,
		&o.CustomerID,
		&o.CustomerName,
		&o.CustomerEmail,
		&o.CustomerPhone,
		&o.PickupStreet,
		&o.PickupCity,
		&o.PickupPostalCode,
		&o.PickupCountry,
		&o.DeliveryStreet,
		&o.DeliveryCity,
		&o.DeliveryPostalCode,
		&o.DeliveryCountry,
		&o.VehicleType,
		&o.Status,
		&o.Price,
		&o.Distance,
		&o.CourierID,
		&o.CourierName,
		&o.PickupTime,
		&o.DeliveryTime,
		&o.EstimatedDelivery,
		&o.SpecialInstructions,
		&o.Notes,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
