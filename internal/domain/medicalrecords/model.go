package medicalrecords

import "time"

// MedicalRecord es una entrada de la historia clínica de una mascota.
// date va como texto YYYY-MM-DD y cost es texto libre.
type MedicalRecord struct {
	ID        string `json:"id"`
	PetID     string `json:"pet_id"`
	Date      string `json:"date"`
	Procedure string `json:"procedure"`
	VetName   string `json:"vet_name"`

	Notes *string `json:"notes"`
	Cost  *string `json:"cost"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
