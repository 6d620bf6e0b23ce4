package model

import "github.com/google/uuid"

// Doctor is the stored representation of a doctor record.
// DoctorID is assigned by the store on insert and never changes afterwards.
type Doctor struct {
	DoctorID       uuid.UUID
	FirstName      string
	LastName       string
	Dob            *Date
	Gender         string
	Email          string
	Phone          string
	Address        string
	Qualification  string
	Specialization string
}
