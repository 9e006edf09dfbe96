package medicalrecords

import (
	"context"
	"strings"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/apperr"
	"pet-adoption-api/internal/platform/validation"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	pets PetLookup
}

func NewService(repo Repository, petLookup PetLookup) *Service {
	return &Service{repo: repo, pets: petLookup}
}

type CreateInput struct {
	PetID     string  `json:"pet_id" validate:"required,uuid"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Procedure string  `json:"procedure" validate:"required,max=255"`
	VetName   string  `json:"vet_name" validate:"required,max=255"`
	Notes     *string `json:"notes"`
	Cost      *string `json:"cost"`
}

type UpdateInput struct {
	PetID     *string `json:"pet_id" validate:"omitempty,uuid"`
	Date      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Procedure *string `json:"procedure" validate:"omitempty,min=1,max=255"`
	VetName   *string `json:"vet_name" validate:"omitempty,min=1,max=255"`
	Notes     *string `json:"notes"`
	Cost      *string `json:"cost"`
}

func (s *Service) ListAll(ctx context.Context) ([]MedicalRecord, error) {
	items, err := s.repo.FindMany(ctx, nil, recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch medical records")
	}
	return items, nil
}

// ListByPet no verifica que la mascota exista; un pet_id mal formado no
// matchea nada.
func (s *Service) ListByPet(ctx context.Context, petID string) ([]MedicalRecord, error) {
	if !validID(petID) {
		return []MedicalRecord{}, nil
	}
	items, err := s.repo.FindMany(ctx, recordstore.Where(recordstore.Eq("pet_id", petID)), recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch medical records")
	}
	return items, nil
}

// ListForPet es ListByPet para la ruta anidada: 404 si la mascota no existe.
func (s *Service) ListForPet(ctx context.Context, petID string) ([]MedicalRecord, error) {
	if err := s.requirePet(ctx, petID); err != nil {
		return nil, err
	}
	return s.ListByPet(ctx, petID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*MedicalRecord, error) {
	if !validID(id) {
		return nil, nil
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch medical record")
	}
	return m, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalRecord, error) {
	in.Procedure = strings.TrimSpace(in.Procedure)
	in.VetName = strings.TrimSpace(in.VetName)
	if err := validation.Struct(in); err != nil {
		return MedicalRecord{}, err
	}
	if err := s.requirePet(ctx, in.PetID); err != nil {
		return MedicalRecord{}, err
	}

	v := recordstore.Values{
		"pet_id":    in.PetID,
		"date":      in.Date,
		"procedure": in.Procedure,
		"vet_name":  in.VetName,
	}
	if in.Notes != nil {
		v["notes"] = *in.Notes
	}
	if in.Cost != nil {
		v["cost"] = *in.Cost
	}

	m, err := s.repo.Insert(ctx, v)
	if err != nil {
		return MedicalRecord{}, apperr.Store(err, "Failed to create medical record")
	}
	return m, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (MedicalRecord, error) {
	if err := validation.Struct(in); err != nil {
		return MedicalRecord{}, err
	}
	if !validID(id) {
		return MedicalRecord{}, NotFoundError()
	}
	if in.PetID != nil {
		if err := s.requirePet(ctx, *in.PetID); err != nil {
			return MedicalRecord{}, err
		}
	}

	v := recordstore.Values{}
	for col, p := range map[string]*string{
		"pet_id":    in.PetID,
		"date":      in.Date,
		"procedure": in.Procedure,
		"vet_name":  in.VetName,
		"notes":     in.Notes,
		"cost":      in.Cost,
	} {
		if p != nil {
			v[col] = *p
		}
	}

	if len(v) == 0 {
		m, err := s.GetByID(ctx, id)
		if err != nil {
			return MedicalRecord{}, err
		}
		if m == nil {
			return MedicalRecord{}, NotFoundError()
		}
		return *m, nil
	}

	m, err := s.repo.UpdateOne(ctx, recordstore.Where(recordstore.Eq("id", id)), v)
	if err != nil {
		return MedicalRecord{}, apperr.Store(err, "Failed to update medical record")
	}
	if m == nil {
		return MedicalRecord{}, NotFoundError()
	}
	return *m, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperr.Store(err, "Failed to delete medical record")
	}
	return nil
}

func (s *Service) requirePet(ctx context.Context, petID string) error {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return err
	}
	if p == nil {
		return pets.NotFoundError()
	}
	return nil
}

func NotFoundError() error {
	return apperr.NotFound("Medical record not found")
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
