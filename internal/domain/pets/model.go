package pets

import "time"

// Type define las especies aceptadas.
// @Enum dog, cat, bird, rabbit, hamster, other
type Type string

const (
	TypeDog     Type = "dog"
	TypeCat     Type = "cat"
	TypeBird    Type = "bird"
	TypeRabbit  Type = "rabbit"
	TypeHamster Type = "hamster"
	TypeOther   Type = "other"
)

// Status es el estado de adopción de la mascota.
// @Enum available, pending, adopted, not_available
type Status string

const (
	StatusAvailable    Status = "available"
	StatusPending      Status = "pending"
	StatusAdopted      Status = "adopted"
	StatusNotAvailable Status = "not_available"
)

var Statuses = []Status{StatusAvailable, StatusPending, StatusAdopted, StatusNotAvailable}

// Pet es la fila de la tabla pets; se serializa tal cual en la API.
type Pet struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type Type   `json:"type"` // dog, cat, bird, ...

	Breed       *string `json:"breed"`
	Age         *int    `json:"age"`
	Gender      *string `json:"gender"`
	Size        *string `json:"size"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`

	Status Status `json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
