package model

import "github.com/google/uuid"

// Patient is the stored representation of a patient record.
// An empty Email means the patient has no email on file.
type Patient struct {
	PatientID uuid.UUID
	FirstName string
	LastName  string
	Dob       *Date
	Gender    string
	Address   string
	Email     string
	Phone     string
}
