//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"geleverd/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, courierEntity entities.Courier) (*entities.Courier, error)
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
	GetAll(ctx context.Context) ([]entities.Courier, error)
	Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error)
}
