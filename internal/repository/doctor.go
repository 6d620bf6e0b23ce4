package repository

import (
	"context"

	"github.com/google/uuid"

	"medvault/internal/model"
)

// DoctorRepository defines data access for doctors using SQL queries only.
// No business logic here, strictly persistence operations.
type DoctorRepository interface {
	// Create inserts a new doctor. The store assigns DoctorID; the returned
	// record is the row as persisted.
	Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)

	// FindByID returns a doctor by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error)

	// FindByEmail returns the doctor registered with email.
	FindByEmail(ctx context.Context, email string) (*model.Doctor, error)

	// List returns every doctor in insertion order.
	List(ctx context.Context) ([]model.Doctor, error)

	// Update overwrites every column of the row identified by doctor.DoctorID
	// and returns the row as persisted.
	Update(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error)

	// Delete removes a doctor by ID. It returns nil if the row did not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
