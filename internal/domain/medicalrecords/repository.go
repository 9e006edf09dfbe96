package medicalrecords

import (
	"context"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/ports/recordstore"
)

const Table = "medical_records"

type Repository interface {
	FindByID(ctx context.Context, id string) (*MedicalRecord, error)
	FindMany(ctx context.Context, f recordstore.Filter, o recordstore.Order) ([]MedicalRecord, error)
	Insert(ctx context.Context, v recordstore.Values) (MedicalRecord, error)
	UpdateOne(ctx context.Context, f recordstore.Filter, v recordstore.Values) (*MedicalRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

func NewRepository(gw recordstore.Gateway) Repository {
	return recordstore.NewRepository[MedicalRecord](gw.Table(Table))
}

// PetLookup es lo único que este módulo necesita de pets.
type PetLookup interface {
	GetByID(ctx context.Context, id string) (*pets.Pet, error)
}
