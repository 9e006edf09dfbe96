package applications

import "time"

// Status de una solicitud de adopción.
// @Enum pending, approved, rejected, withdrawn
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusWithdrawn Status = "withdrawn"
)

var Statuses = []Status{StatusPending, StatusApproved, StatusRejected, StatusWithdrawn}

type Application struct {
	ID    string `json:"id"`
	PetID string `json:"pet_id"`

	ApplicantName    string  `json:"applicant_name"`
	ApplicantEmail   string  `json:"applicant_email"`
	ApplicantPhone   *string `json:"applicant_phone"`
	ApplicantAddress *string `json:"applicant_address"`
	ApplicationText  *string `json:"application_text"`

	// pending -> approved (Approve) | rejected (otra solicitud aprobada).
	// withdrawn solo vía Update.
	Status Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ApproveOptions struct {
	// RejectOtherApplications rechaza las demás solicitudes pendientes de la
	// misma mascota. Por defecto true.
	RejectOtherApplications bool
}

func DefaultApproveOptions() ApproveOptions {
	return ApproveOptions{RejectOtherApplications: true}
}

// ApprovalResult es lo que devuelve Approve. Warnings solo aparece cuando el
// store no es transaccional y el rechazo de las hermanas falló después de
// aprobar.
type ApprovalResult struct {
	Application      Application
	RejectedSiblings int
	Warnings         []string
}
