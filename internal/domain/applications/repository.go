package applications

import (
	"context"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/ports/recordstore"
)

const Table = "applications"

type Repository interface {
	FindByID(ctx context.Context, id string) (*Application, error)
	FindMany(ctx context.Context, f recordstore.Filter, o recordstore.Order) ([]Application, error)
	Insert(ctx context.Context, v recordstore.Values) (Application, error)
	UpdateOne(ctx context.Context, f recordstore.Filter, v recordstore.Values) (*Application, error)
	UpdateWhere(ctx context.Context, f recordstore.Filter, v recordstore.Values) ([]Application, error)
	DeleteByID(ctx context.Context, id string) error
}

func NewRepository(gw recordstore.Gateway) Repository {
	return recordstore.NewRepository[Application](gw.Table(Table))
}

// Pets es lo que el workflow necesita del módulo pets (lo implementa
// *pets.Service).
type Pets interface {
	GetByID(ctx context.Context, id string) (*pets.Pet, error)
	MarkAdopted(ctx context.Context, id string) (pets.Pet, error)
}

// Outcome clasifica el resultado de una aprobación para métricas.
type Outcome string

const (
	OutcomeApproved Outcome = "approved"
	OutcomeNotFound Outcome = "not_found"
	OutcomeConflict Outcome = "conflict"
	OutcomeFailed   Outcome = "failed"
)

// Observer recibe los eventos del workflow de aprobación.
type Observer interface {
	ObserveApproval(outcome Outcome)
	ObserveCompensation(err error)
	ObserveSiblingRejectionFailure()
}

type nopObserver struct{}

func (nopObserver) ObserveApproval(Outcome)         {}
func (nopObserver) ObserveCompensation(error)       {}
func (nopObserver) ObserveSiblingRejectionFailure() {}
