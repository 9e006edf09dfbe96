package pets

import (
	"net/http"

	"pet-adoption-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta las rutas bajo el subrouter /api/pets.
func RegisterRoutes(r chi.Router, svc *Service, eh *respond.ErrorHandler) {
	r.Get("/", eh.Wrap(listPetsHandler(svc)))
	r.Post("/", eh.Wrap(createPetHandler(svc)))
	r.Get("/{petID}", eh.Wrap(getPetHandler(svc)))
	r.Patch("/{petID}", eh.Wrap(updatePetHandler(svc)))
	r.Delete("/{petID}", eh.Wrap(deletePetHandler(svc)))
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista mascotas ordenadas por created_at desc. Si vienen status y type, status se filtra en el store y type sobre ese resultado.
// @Tags pets
// @Produce json
// @Param status query string false "available | pending | adopted | not_available"
// @Param type query string false "dog | cat | bird | rabbit | hamster | other"
// @Success 200 {array} Pet
// @Failure 400 {object} respond.ErrorBody "status inválido"
// @Failure 500 {object} respond.ErrorBody
// @Router /api/pets [get]
func listPetsHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Status: Status(q.Get("status")),
			Type:   q.Get("type"),
		})
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, items)
		return nil
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/pets/{petID} [get]
func getPetHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			return err
		}
		if p == nil {
			return NotFoundError()
		}
		respond.Success(w, http.StatusOK, p)
		return nil
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos de la mascota; status por defecto available"
// @Success 201 {object} Pet
// @Failure 400 {object} respond.ErrorBody "Validation error"
// @Failure 500 {object} respond.ErrorBody
// @Router /api/pets [post]
func createPetHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req CreateInput
		if err := respond.DecodeJSON(r, &req, false); err != nil {
			return err
		}
		p, err := svc.Create(r.Context(), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusCreated, p)
		return nil
	}
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description PATCH parcial: solo cambian los campos enviados.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} Pet
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/pets/{petID} [patch]
func updatePetHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req UpdateInput
		if err := respond.DecodePatch(r, &req); err != nil {
			return err
		}
		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, p)
		return nil
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Idempotente. Las solicitudes e historia clínica de la mascota se conservan.
// @Tags pets
// @Param petID path string true "ID de la mascota"
// @Success 204
// @Failure 500 {object} respond.ErrorBody
// @Router /api/pets/{petID} [delete]
func deletePetHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			return err
		}
		respond.NoContent(w)
		return nil
	}
}
