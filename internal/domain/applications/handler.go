package applications

import (
	"net/http"
	"strings"

	"pet-adoption-api/internal/platform/respond"

	"github.com/go-chi/chi/v5"
)

const approvedMessage = "Application approved and pet status updated to adopted"

// RegisterRoutes monta /api/applications.
func RegisterRoutes(r chi.Router, svc *Service, eh *respond.ErrorHandler) {
	r.Get("/", eh.Wrap(listApplicationsHandler(svc)))
	r.Post("/", eh.Wrap(createApplicationHandler(svc)))
	r.Get("/{applicationID}", eh.Wrap(getApplicationHandler(svc)))
	r.Patch("/{applicationID}", eh.Wrap(updateApplicationHandler(svc)))
	r.Delete("/{applicationID}", eh.Wrap(deleteApplicationHandler(svc)))
	r.Post("/{applicationID}/approve", eh.Wrap(approveApplicationHandler(svc)))
}

// RegisterPetRoutes monta las solicitudes de una mascota bajo /api/pets.
func RegisterPetRoutes(r chi.Router, svc *Service, eh *respond.ErrorHandler) {
	r.Get("/{petID}/applications", eh.Wrap(listPetApplicationsHandler(svc)))
}

type approveRequest struct {
	// nil = true
	RejectOtherApplications *bool `json:"rejectOtherApplications"`
}

type approveMeta struct {
	RejectedApplications int `json:"rejected_applications"`
}

// listApplicationsHandler godoc
// @Summary Listar solicitudes de adopción
// @Description Filtra por status y/o pet_id. Con ambos, status se resuelve en el store y pet_id sobre ese resultado.
// @Tags applications
// @Produce json
// @Param status query string false "pending | approved | rejected | withdrawn"
// @Param pet_id query string false "ID de la mascota"
// @Success 200 {array} Application
// @Failure 400 {object} respond.ErrorBody "status inválido"
// @Failure 500 {object} respond.ErrorBody
// @Router /api/applications [get]
func listApplicationsHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Status: Status(q.Get("status")),
			PetID:  q.Get("pet_id"),
		})
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, items)
		return nil
	}
}

// listPetApplicationsHandler godoc
// @Summary Solicitudes de una mascota
// @Tags applications
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {array} Application
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/pets/{petID}/applications [get]
func listPetApplicationsHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		items, err := svc.ListForPet(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, items)
		return nil
	}
}

// getApplicationHandler godoc
// @Summary Obtener solicitud
// @Tags applications
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Success 200 {object} Application
// @Failure 404 {object} respond.ErrorBody "Application not found"
// @Router /api/applications/{applicationID} [get]
func getApplicationHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		a, err := svc.GetByID(r.Context(), chi.URLParam(r, "applicationID"))
		if err != nil {
			return err
		}
		if a == nil {
			return NotFoundError()
		}
		respond.Success(w, http.StatusOK, a)
		return nil
	}
}

// createApplicationHandler godoc
// @Summary Crear solicitud de adopción
// @Description La mascota debe existir y estar available. status por defecto pending.
// @Tags applications
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del solicitante"
// @Success 201 {object} Application
// @Failure 400 {object} respond.ErrorBody "Validation error / mascota no disponible"
// @Failure 404 {object} respond.ErrorBody "Pet not found"
// @Router /api/applications [post]
func createApplicationHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req CreateInput
		if err := respond.DecodeJSON(r, &req, false); err != nil {
			return err
		}
		a, err := svc.Create(r.Context(), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusCreated, a)
		return nil
	}
}

// updateApplicationHandler godoc
// @Summary Actualizar solicitud
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} Application
// @Failure 400 {object} respond.ErrorBody
// @Failure 404 {object} respond.ErrorBody "Application not found"
// @Router /api/applications/{applicationID} [patch]
func updateApplicationHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req UpdateInput
		if err := respond.DecodePatch(r, &req); err != nil {
			return err
		}
		a, err := svc.Update(r.Context(), chi.URLParam(r, "applicationID"), req)
		if err != nil {
			return err
		}
		respond.Success(w, http.StatusOK, a)
		return nil
	}
}

// deleteApplicationHandler godoc
// @Summary Borrar solicitud
// @Tags applications
// @Param applicationID path string true "ID de la solicitud"
// @Success 204
// @Failure 500 {object} respond.ErrorBody
// @Router /api/applications/{applicationID} [delete]
func deleteApplicationHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "applicationID")); err != nil {
			return err
		}
		respond.NoContent(w)
		return nil
	}
}

// approveApplicationHandler godoc
// @Summary Aprobar solicitud
// @Description Aprueba la solicitud, marca la mascota como adopted y (por defecto) rechaza las demás solicitudes pendientes de la mascota. Body opcional.
// @Tags applications
// @Accept json
// @Produce json
// @Param applicationID path string true "ID de la solicitud"
// @Param payload body approveRequest false "rejectOtherApplications (default true)"
// @Success 200 {object} Application
// @Failure 400 {object} respond.ErrorBody "ya aprobada / estado inválido"
// @Failure 404 {object} respond.ErrorBody "Application not found"
// @Failure 500 {object} respond.ErrorBody "Failed to update pet status"
// @Router /api/applications/{applicationID}/approve [post]
func approveApplicationHandler(svc *Service) respond.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) error {
		var req approveRequest
		if err := respond.DecodeJSON(r, &req, true); err != nil {
			return err
		}

		opts := DefaultApproveOptions()
		if req.RejectOtherApplications != nil {
			opts.RejectOtherApplications = *req.RejectOtherApplications
		}

		res, err := svc.Approve(r.Context(), chi.URLParam(r, "applicationID"), opts)
		if err != nil {
			return err
		}

		msg := approvedMessage
		if len(res.Warnings) > 0 {
			msg += ". Warning: " + strings.Join(res.Warnings, "; ")
		}
		respond.JSON(w, http.StatusOK, respond.Envelope{
			Status:   respond.StatusSuccess,
			Data:     res.Application,
			Message:  msg,
			Warnings: res.Warnings,
			Meta:     approveMeta{RejectedApplications: res.RejectedSiblings},
		})
		return nil
	}
}
