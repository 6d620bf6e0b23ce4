package dto

import (
	"github.com/google/uuid"

	"medvault/internal/model"
)

// DoctorDTO is the doctor wire record used for requests and responses.
// DoctorID is ignored on register and overridden by the path on update.
type DoctorDTO struct {
	DoctorID       uuid.UUID   `json:"doctorId"`
	FirstName      string      `json:"firstName" validate:"notblank,min=5"`
	LastName       string      `json:"lastName"`
	Dob            *model.Date `json:"dob"`
	Gender         string      `json:"gender"`
	Email          string      `json:"email" validate:"required,email"`
	Phone          string      `json:"phone"`
	Address        string      `json:"address"`
	Qualification  string      `json:"qualification"`
	Specialization string      `json:"specialization"`
}

// DoctorListResponse wraps the doctor listing.
type DoctorListResponse struct {
	Doctors []DoctorDTO `json:"doctors"`
}

var doctorMessages = messages{
	"firstName.notblank": "first name must not be blank",
	"firstName.min":      "first name must be 5 characters",
	"email.required":     "email must not be blank",
	"email.email":        "Enter valid email",
}

// Validate returns field -> violation for every invalid field, or nil when d is valid.
func (d *DoctorDTO) Validate() map[string]string {
	return check(d, doctorMessages)
}
