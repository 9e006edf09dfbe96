package applications

import (
	"context"
	"strings"

	"pet-adoption-api/internal/domain/pets"
	"pet-adoption-api/internal/platform/apperr"
	"pet-adoption-api/internal/platform/logger"
	"pet-adoption-api/internal/platform/validation"
	"pet-adoption-api/internal/ports/recordstore"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Service struct {
	repo Repository
	pets Pets
	tx   recordstore.Transactor
	log  logger.Logger
	obs  Observer
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.obs = o
		}
	}
}

// NewService arma el workflow. tx decide si Approve corre en una transacción
// real o con compensación manual.
func NewService(repo Repository, petsSvc Pets, tx recordstore.Transactor, opts ...Option) *Service {
	if tx == nil {
		tx = recordstore.NoTx{}
	}
	s := &Service{
		repo: repo,
		pets: petsSvc,
		tx:   tx,
		log:  logger.NewNop(),
		obs:  nopObserver{},
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With(map[string]any{"component": "applications"})
	return s
}

type CreateInput struct {
	PetID            string  `json:"pet_id" validate:"required,uuid"`
	ApplicantName    string  `json:"applicant_name" validate:"required,min=1,max=255"`
	ApplicantEmail   string  `json:"applicant_email" validate:"required,email,max=255"`
	ApplicantPhone   *string `json:"applicant_phone" validate:"omitempty,max=50"`
	ApplicantAddress *string `json:"applicant_address"`
	ApplicationText  *string `json:"application_text"`
	Status           Status  `json:"status" validate:"omitempty,oneof=pending approved rejected withdrawn"`
}

type UpdateInput struct {
	ApplicantName    *string `json:"applicant_name" validate:"omitempty,min=1,max=255"`
	ApplicantEmail   *string `json:"applicant_email" validate:"omitempty,email,max=255"`
	ApplicantPhone   *string `json:"applicant_phone" validate:"omitempty,max=50"`
	ApplicantAddress *string `json:"applicant_address"`
	ApplicationText  *string `json:"application_text"`
	Status           *Status `json:"status" validate:"omitempty,oneof=pending approved rejected withdrawn"`
}

type ListFilter struct {
	Status Status
	PetID  string
}

func (s *Service) ListAll(ctx context.Context) ([]Application, error) {
	items, err := s.repo.FindMany(ctx, nil, recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch applications")
	}
	return items, nil
}

func (s *Service) ListByStatus(ctx context.Context, st Status) ([]Application, error) {
	items, err := s.repo.FindMany(ctx, recordstore.Where(recordstore.Eq("status", string(st))), recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch applications by status")
	}
	return items, nil
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Application, error) {
	if !validID(petID) {
		return []Application{}, nil
	}
	items, err := s.repo.FindMany(ctx, recordstore.Where(recordstore.Eq("pet_id", petID)), recordstore.NewestFirst)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch applications for pet")
	}
	return items, nil
}

// List: status se filtra en el store y pet_id en memoria sobre ese set.
func (s *Service) List(ctx context.Context, f ListFilter) ([]Application, error) {
	if f.Status != "" && !validation.OneOf(f.Status, Statuses) {
		return nil, InvalidStatusError()
	}

	switch {
	case f.Status != "" && f.PetID != "":
		items, err := s.ListByStatus(ctx, f.Status)
		if err != nil {
			return nil, err
		}
		return lo.Filter(items, func(a Application, _ int) bool { return a.PetID == f.PetID }), nil
	case f.Status != "":
		return s.ListByStatus(ctx, f.Status)
	case f.PetID != "":
		return s.ListByPet(ctx, f.PetID)
	default:
		return s.ListAll(ctx)
	}
}

// ListForPet es la vista /pets/{id}/applications: 404 si la mascota no existe.
func (s *Service) ListForPet(ctx context.Context, petID string) ([]Application, error) {
	p, err := s.pets.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, pets.NotFoundError()
	}
	return s.ListByPet(ctx, petID)
}

// GetByID devuelve nil, nil si no existe.
func (s *Service) GetByID(ctx context.Context, id string) (*Application, error) {
	if !validID(id) {
		return nil, nil
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Store(err, "Failed to fetch application")
	}
	return a, nil
}

// Create solo acepta solicitudes para mascotas en estado available.
func (s *Service) Create(ctx context.Context, in CreateInput) (Application, error) {
	in.ApplicantName = strings.TrimSpace(in.ApplicantName)
	in.ApplicantEmail = strings.TrimSpace(in.ApplicantEmail)
	if err := validation.Struct(in); err != nil {
		return Application{}, err
	}

	p, err := s.pets.GetByID(ctx, in.PetID)
	if err != nil {
		return Application{}, err
	}
	if p == nil {
		return Application{}, pets.NotFoundError()
	}
	if p.Status != pets.StatusAvailable {
		return Application{}, apperr.Conflictf("Pet is not available for adoption. Current status: %s", p.Status)
	}

	if in.Status == "" {
		in.Status = StatusPending
	}
	v := recordstore.Values{
		"pet_id":          in.PetID,
		"applicant_name":  in.ApplicantName,
		"applicant_email": in.ApplicantEmail,
		"status":          string(in.Status),
	}
	setOptional(v, "applicant_phone", in.ApplicantPhone)
	setOptional(v, "applicant_address", in.ApplicantAddress)
	setOptional(v, "application_text", in.ApplicationText)

	a, err := s.repo.Insert(ctx, v)
	if err != nil {
		return Application{}, apperr.Store(err, "Failed to create application")
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Application, error) {
	if err := validation.Struct(in); err != nil {
		return Application{}, err
	}
	if !validID(id) {
		return Application{}, NotFoundError()
	}

	v := recordstore.Values{}
	setOptional(v, "applicant_name", in.ApplicantName)
	setOptional(v, "applicant_email", in.ApplicantEmail)
	setOptional(v, "applicant_phone", in.ApplicantPhone)
	setOptional(v, "applicant_address", in.ApplicantAddress)
	setOptional(v, "application_text", in.ApplicationText)
	if in.Status != nil {
		v["status"] = string(*in.Status)
	}

	if len(v) == 0 {
		a, err := s.GetByID(ctx, id)
		if err != nil {
			return Application{}, err
		}
		if a == nil {
			return Application{}, NotFoundError()
		}
		return *a, nil
	}

	a, err := s.repo.UpdateOne(ctx, recordstore.Where(recordstore.Eq("id", id)), v)
	if err != nil {
		return Application{}, apperr.Store(err, "Failed to update application")
	}
	if a == nil {
		return Application{}, NotFoundError()
	}
	return *a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return apperr.Store(err, "Failed to delete application")
	}
	return nil
}

// Approve aprueba la solicitud, marca la mascota como adopted y opcionalmente
// rechaza las demás solicitudes pendientes de esa mascota.
//
// Con un store transaccional todo corre en una tx y la mascota se actualiza
// antes que la solicitud (orden de locks: mascota, solicitud, hermanas);
// cualquier fallo revierte todo. Sin tx, si falla la mascota se revierte la solicitud a pending a mano
// (best-effort) y si falla el rechazo de las hermanas la aprobación queda
// hecha y el fallo se reporta en Warnings.
func (s *Service) Approve(ctx context.Context, id string, opts ApproveOptions) (ApprovalResult, error) {
	var res ApprovalResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.approve(ctx, id, opts)
		return err
	})
	s.obs.ObserveApproval(outcomeOf(err))
	if err != nil {
		return ApprovalResult{}, err
	}

	s.log.Info("application approved", map[string]any{
		"application_id":    res.Application.ID,
		"pet_id":            res.Application.PetID,
		"rejected_siblings": res.RejectedSiblings,
		"atomic":            s.tx.Atomic(),
	})
	return res, nil
}

func (s *Service) approve(ctx context.Context, id string, opts ApproveOptions) (ApprovalResult, error) {
	app, err := s.GetByID(ctx, id)
	if err != nil {
		return ApprovalResult{}, err
	}
	if app == nil {
		return ApprovalResult{}, NotFoundError()
	}

	switch app.Status {
	case StatusPending:
	case StatusApproved:
		return ApprovalResult{}, apperr.Conflict("Application is already approved")
	default:
		return ApprovalResult{}, apperr.Conflictf("Cannot approve application with status: %s", app.Status)
	}

	var approved *Application
	if s.tx.Atomic() {
		// Con tx la fila de la mascota se bloquea primero: dos aprobaciones de
		// la misma mascota esperan en ese lock en vez de cruzarse con el
		// rechazo de hermanas (deadlock).
		if _, err := s.pets.MarkAdopted(ctx, app.PetID); err != nil {
			return ApprovalResult{}, apperr.Store(err, "Failed to update pet status")
		}
		if approved, err = s.setApproved(ctx, id); err != nil {
			return ApprovalResult{}, err
		}
	} else {
		if approved, err = s.setApproved(ctx, id); err != nil {
			return ApprovalResult{}, err
		}
		if _, err := s.pets.MarkAdopted(ctx, app.PetID); err != nil {
			s.compensate(ctx, id, err)
			return ApprovalResult{}, apperr.Store(err, "Failed to update pet status")
		}
	}

	res := ApprovalResult{Application: *approved}
	if !opts.RejectOtherApplications {
		return res, nil
	}

	rejected, err := s.repo.UpdateWhere(ctx,
		recordstore.Where(
			recordstore.Eq("pet_id", app.PetID),
			recordstore.Eq("status", string(StatusPending)),
			recordstore.Neq("id", id),
		),
		recordstore.Values{"status": string(StatusRejected)},
	)
	if err != nil {
		if s.tx.Atomic() {
			return ApprovalResult{}, apperr.Store(err, "Failed to reject other applications")
		}
		s.obs.ObserveSiblingRejectionFailure()
		s.log.Error("sibling rejection failed after approval", map[string]any{
			"application_id": id,
			"pet_id":         app.PetID,
			"error":          err,
		})
		res.Warnings = append(res.Warnings, "Failed to reject other pending applications: "+err.Error())
		return res, nil
	}

	res.RejectedSiblings = len(rejected)
	return res, nil
}

// setApproved es el compare-and-set pending -> approved.
func (s *Service) setApproved(ctx context.Context, id string) (*Application, error) {
	approved, err := s.repo.UpdateOne(ctx,
		recordstore.Where(recordstore.Eq("id", id), recordstore.Eq("status", string(StatusPending))),
		recordstore.Values{"status": string(StatusApproved)},
	)
	if err != nil {
		return nil, apperr.Store(err, "Failed to approve application")
	}
	if approved == nil {
		return nil, apperr.Storef("Failed to approve application: No data returned")
	}
	return approved, nil
}

// compensate devuelve la solicitud a pending. Corre aunque el request se haya
// cancelado; si falla solo se loguea.
func (s *Service) compensate(ctx context.Context, id string, cause error) {
	_, err := s.repo.UpdateOne(context.WithoutCancel(ctx),
		recordstore.Where(recordstore.Eq("id", id), recordstore.Eq("status", string(StatusApproved))),
		recordstore.Values{"status": string(StatusPending)},
	)
	s.obs.ObserveCompensation(err)

	fields := map[string]any{"application_id": id, "cause": cause}
	if err != nil {
		fields["error"] = err
		s.log.Error("approval compensation failed; application left approved", fields)
		return
	}
	s.log.Warn("approval compensated; application back to pending", fields)
}

func outcomeOf(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeApproved
	case apperr.IsStore(err):
		return OutcomeFailed
	case apperr.IsNotFound(err):
		return OutcomeNotFound
	case apperr.IsConflict(err):
		return OutcomeConflict
	default:
		return OutcomeFailed
	}
}

func NotFoundError() error {
	return apperr.NotFound("Application not found")
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
