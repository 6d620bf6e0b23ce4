package repository

import (
	"context"

	"github.com/google/uuid"

	"medvault/internal/model"
)

// PatientRepository defines data access for patients using SQL queries only.
// No business logic here, strictly persistence operations.
type PatientRepository interface {
	// Create inserts a new patient. The store assigns PatientID; the returned
	// record is the row as persisted.
	Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)

	// FindByID returns a patient by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Patient, error)

	// FindByEmail returns the patient registered with email.
	FindByEmail(ctx context.Context, email string) (*model.Patient, error)

	// List returns every patient in insertion order.
	List(ctx context.Context) ([]model.Patient, error)

	// Update overwrites every column of the row identified by patient.PatientID
	// and returns the row as persisted.
	Update(ctx context.Context, patient *model.Patient) (*model.Patient, error)

	// Delete removes a patient by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
