package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"geleverd/internal/entities"
	"geleverd/internal/repository"
	"geleverd/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, email, phone, vehicle_type, license_plate, status,
	rating, total_deliveries, is_active, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierEntity entities.Courier) (*entities.Courier, error) {
	query := `INSERT INTO couriers (id, name, email, phone, vehicle_type, license_plate, status, rating, total_deliveries, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + courierColumns

	created, err := scanCourier(r.querier.QueryRow(
		ctx,
		query,
		courierEntity.ID,
		courierEntity.Name,
		courierEntity.Email,
		courierEntity.Phone,
		courierEntity.VehicleType.String(),
		courierEntity.LicensePlate,
		courierEntity.Status.String(),
		courierEntity.Rating,
		courierEntity.TotalDeliveries,
		courierEntity.IsActive,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Email != nil {
		builder = builder.Set("email", courierModifyModel.Email)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", courierModifyModel.VehicleType)
	}
	if courierModifyModel.LicensePlate != nil {
		builder = builder.Set("license_plate", courierModifyModel.LicensePlate)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.IsActive != nil {
		builder = builder.Set("is_active", courierModifyModel.IsActive)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)
		FROM couriers
		WHERE status IN ('available', 'busy')`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository countactive error: %w", err)
	}

	return count, nil
}

// TopByDeliveries ranks couriers by the number of orders currently
// assigned to them, not by the denormalized total_deliveries column.
func (r *Repository) TopByDeliveries(ctx context.Context, limit uint64) ([]entities.CourierPerformance, error) {
	query := `SELECT c.id, c.name, COUNT(o.id), c.rating, c.status
		FROM couriers c
		LEFT JOIN orders o ON o.courier_id = c.id
		GROUP BY c.id, c.name, c.rating, c.status
		ORDER BY COUNT(o.id) DESC
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository topbydeliveries error: %w", err)
	}
	defer rows.Close()

	performanceModels := make([]CourierPerformanceDB, 0, limit)
	for rows.Next() {
		var performanceModel CourierPerformanceDB
		err := rows.Scan(
			&performanceModel.ID,
			&performanceModel.Name,
			&performanceModel.TotalDeliveries,
			&performanceModel.Rating,
			&performanceModel.Status,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository topbydeliveries error: %w", err)
		}
		performanceModels = append(performanceModels, performanceModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository topbydeliveries error: %w", err)
	}

	return ToDomainPerformanceList(performanceModels), nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var c CourierDB
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.VehicleType,
		&c.LicensePlate,
		&c.Status,
		&c.Rating,
		&c.TotalDeliveries,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
