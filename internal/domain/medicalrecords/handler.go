package medicalrecords

import (
	"net/http"

	"pet-adoption-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /api/medical-records.
func RegisterRoutes(r chi.Router, svc *Service, eh *respond.ErrorHandler) {
	r.Get("/", eh.Wrap(listHandler(svc)))
	r.Post("/", eh.Wrap(createHandler(svc)))
	r.Get("/{recordID}", eh.Wrap(getHandler(svc)))
	r.Patch("/{recordID}", eh.Wrap(updateHandler(svc)))
	r.Delete("/{recordID}", eh.Wrap(deleteHandler(svc)))
}

// RegisterPetRoutes monta la historia clínica bajo /api/pets.
func RegisterPetRoutes(r chi.Router, svc *Service, eh *respond.ErrorHandler) {
	r.Get("/{petID}/medical-records", eh.Wrap(listForPetHandler(svc)))
}

// listHandler godoc
// @Summary Listar registros médicos
// @Tags medical-records
// @Produce json
// @Param pet_id query string false "Filtra por mascota"
// @Success 200 {array} MedicalRecord
// @Failure 500 {object} respond.ErrorBody
// @Router /api/medical-records [get]
func listHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var (
			items []MedicalRecord
			err   error
		)
		if petID := r.URL.Query().Get("pet_id"); petID != "" {
			items, err = svc.ListByPet(r.Context(), petID)
		} else {
			items, err = svc.ListAll(r.Context())
		}
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, items)
		return nil
	}
}

// listForPetHandler godoc
// @Summary Historia clínica de una mascota
// @Tags medical-records
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} MedicalRecord
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/pets/{petID}/medical-records [get]
func listForPetHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		items, err := svc.ListForPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, items)
		return nil
	}
}

func getHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "recordID"))
		if err != nil {
			return err
		}
		if m == nil {
			return NotFoundError()
		}
		respond.Success(w, http.StatusOK, m)
		return nil
	}
}

// createHandler godoc
// @Summary Crear registro médico
// @Tags medical-records
// @Accept json
// @Produce json
// @Param payload body CreateInput true "date en formato YYYY-MM-DD"
// @Success 201 {object} MedicalRecord
// @Failure 400 {object} respond.ErrorBody "Validation error"
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/medical-records [post]
func createHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req CreateInput
		if err := respond.DecodeJSON(r, &req, false); err != nil {
			return err
		}
		m, err := svc.Create(r.Context(), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusCreated, m)
		return nil
	}
}

func updateHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req UpdateInput
		if err := respond.DecodePatch(r, &req); err != nil {
			return err
		}
		m, err := svc.Update(r.Context(), chi.URLParam(r, "recordID"), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, m)
		return nil
	}
}

func deleteHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "recordID")); err != nil {
			return err
		}
		respond.NoContent(w)
		return nil
	}
}
