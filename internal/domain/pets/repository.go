package pets

import (
	"context"

	"pet-adoption-api/internal/ports/recordstore"
)

// Table es el nombre de la tabla en el record store.
const Table = "pets"

// Repository es el subconjunto de recordstore.Repository[Pet] que usa el servicio.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Pet, error)
	FindMany(ctx context.Context, f recordstore.Filter, o recordstore.Order) ([]Pet, error)
	Insert(ctx context.Context, v recordstore.Values) (Pet, error)
	UpdateOne(ctx context.Context, f recordstore.Filter, v recordstore.Values) (*Pet, error)
	DeleteByID(ctx context.Context, id string) error
}

func NewRepository(gw recordstore.Gateway) Repository {
	return recordstore.NewRepository[Pet](gw.Table(Table))
}
