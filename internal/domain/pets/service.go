package pets

import (
	"context"
	"strings"

	"pet-adoption-api/internal/platform/apperr"
	"pet-adoption-api/internal/platform/validation"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Type        Type    `json:"type" validate:"required,oneof=dog cat bird rabbit hamster other"`
	Breed       *string `json:"breed"`
	Age         *int    `json:"age" validate:"omitempty,gte=0"`
	Gender      *string `json:"gender"`
	Size        *string `json:"size"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Status      Status  `json:"status" validate:"omitempty,oneof=available pending adopted not_available"`
}

// UpdateInput: nil = no tocar.
type UpdateInput struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	Type        *Type   `json:"type" validate:"omitempty,oneof=dog cat bird rabbit hamster other"`
	Breed       *string `json:"breed"`
	Age         *int    `json:"age" validate:"omitempty,gte=0"`
	Gender      *string `json:"gender"`
	Size        *string `json:"size"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url" validate:"omitempty,url"`
	Status      *Status `json:"status" validate:"omitempty,oneof=available pending adopted not_available"`
}

// ListFilter: campos vacíos = sin filtro.
type ListFilter struct {
	Status Status
	Type   string
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	items, err := s.repo.FindMany(ctx, nil, recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch pets")
	}
	return items, nil
}

func (s *Service) ListByStatus(ctx context.Context, st Status) ([]Pet, error) {
	items, err := s.repo.FindMany(ctx, recordstore.Where(recordstore.Eq("status", string(st))), recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch pets by status")
	}
	return items, nil
}

// ListByType no valida el tipo: uno desconocido simplemente no matchea.
func (s *Service) ListByType(ctx context.Context, t string) ([]Pet, error) {
	items, err := s.repo.FindMany(ctx, recordstore.Where(recordstore.Eq("type", t)), recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch pets by type")
	}
	return items, nil
}

// List combina filtros: status va al store, type se aplica en memoria sobre
// ese resultado.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Pet, error) {
	if f.Status != "" && !validation.OneOf(f.Status, Statuses) {
		return nil, InvalidStatusError()
	}

	switch {
	case f.Status != "" && f.Type != "":
		items, err := s.ListByStatus(ctx, f.Status)
		if err != nil {
			return nil, err
		}
		return lo.Filter(items, func(p Pet, _ int) bool { return string(p.Type) == f.Type }), nil
	case f.Status != "":
		return s.ListByStatus(ctx, f.Status)
	case f.Type != "":
		return s.ListByType(ctx, f.Type)
	default:
		return s.ListAll(ctx)
	}
}

// GetByID devuelve nil, nil si no existe (incluye ids mal formados).
func (s *Service) GetByID(ctx context.Context, id string) (*Pet, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch pet")
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}
	if in.Status == "" {
		in.Status = StatusAvailable
	}

	v := recordstore.Values{
		"name":   in.Name,
		"type":   string(in.Type),
		"status": string(in.Status),
	}
	setOptional(v, "breed", in.Breed)
	setOptional(v, "gender", in.Gender)
	setOptional(v, "size", in.Size)
	setOptional(v, "color", in.Color)
	setOptional(v, "description", in.Description)
	setOptional(v, "image_url", in.ImageURL)
	if in.Age != nil {
		v["age"] = *in.Age
	}

	p, err := s.repo.Insert(ctx, v)
	if err != nil {
		return Pet{}, apperr.Store(err, "Failed to create pet")
	}
	return p, nil
}

// Update aplica solo los campos enviados. NotFound si ninguna fila matchea.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Pet, error) {
	if err := validation.Struct(in); err != nil {
		return Pet{}, err
	}
	if !validID(id) {
		return Pet{}, NotFoundError()
	}

	v := recordstore.Values{}
	setOptional(v, "name", in.Name)
	setOptional(v, "breed", in.Breed)
	setOptional(v, "gender", in.Gender)
	setOptional(v, "size", in.Size)
	setOptional(v, "color", in.Color)
	setOptional(v, "description", in.Description)
	setOptional(v, "image_url", in.ImageURL)
	if in.Type != nil {
		v["type"] = string(*in.Type)
	}
	if in.Status != nil {
		v["status"] = string(*in.Status)
	}
	if in.Age != nil {
		v["age"] = *in.Age
	}

	if len(v) == 0 {
		p, err := s.GetByID(ctx, id)
		if err != nil {
			return Pet{}, err
		}
		if p == nil {
			return Pet{}, NotFoundError()
		}
		return *p, nil
	}

	p, err := s.repo.UpdateOne(ctx, recordstore.Where(recordstore.Eq("id", id)), v)
	if err != nil {
		return Pet{}, apperr.Store(err, "Failed to update pet")
	}
	if p == nil {
		return Pet{}, NotFoundError()
	}
	return *p, nil
}

// Delete es idempotente. No borra solicitudes ni historia clínica.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperr.Store(err, "Failed to delete pet")
	}
	return nil
}

// MarkAdopted pasa la mascota a adopted solo si todavía no lo está; con
// Postgres el UPDATE condicional toma el lock de la fila y serializa dos
// aprobaciones concurrentes.
func (s *Service) MarkAdopted(ctx context.Context, id string) (Pet, error) {
	if !validID(id) {
		return Pet{}, NotFoundError()
	}

	p, err := s.repo.UpdateOne(ctx,
		recordstore.Where(recordstore.Eq("id", id), recordstore.Neq("status", string(StatusAdopted))),
		recordstore.Values{"status": string(StatusAdopted)},
	)
	if err != nil {
		return Pet{}, apperr.Store(err, "Failed to update pet")
	}
	if p != nil {
		return *p, nil
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}
	if current == nil {
		return Pet{}, NotFoundError()
	}
	return Pet{}, apperr.Conflict("Pet is already adopted")
}

func NotFoundError() error {
	return apperr.NotFound("Pet not found")
}

func InvalidStatusError() error {
	names := lo.Map(Statuses, func(s Status, _ int) string { return string(s) })
	return apperr.Validationf("Invalid status. Must be one of: %s", strings.Join(names, ", "))
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func setOptional(v recordstore.Values, col string, s *string) {
	if s != nil {
		v[col] = *s
	}
}
