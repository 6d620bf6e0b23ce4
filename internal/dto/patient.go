package dto

import (
	"github.com/google/uuid"

	"medvault/internal/model"
)

// PatientDTO is the patient wire record. The identifier travels as "id".
type PatientDTO struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstName" validate:"required,min=3"`
	LastName  string      `json:"lastName" validate:"required,min=3"`
	Dob       *model.Date `json:"dob"`
	Gender    string      `json:"gender" validate:"required"`
	Address   string      `json:"address"`
	Email     string      `json:"email" validate:"omitempty,email"`
	Phone     string      `json:"phone"`
}

// PatientListResponse wraps the patient listing.
type PatientListResponse struct {
	Content []PatientDTO `json:"content"`
}

var patientMessages = messages{
	"firstName.required": "first name is required",
	"firstName.min":      "first name must contain at least 3 characters",
	"lastName.required":  "last name is required",
	"lastName.min":       "last name must contain at least 3 characters",
	"gender.required":    "gender is required",
	"email.email":        "Enter valid Email",
}

// Validate returns field -> violation for every invalid field, or nil when p is valid.
func (p *PatientDTO) Validate() map[string]string {
	return check(p, patientMessages)
}
