package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"medvault/internal/model"
	"medvault/internal/repository"
)

// DoctorPostgres is a PostgreSQL implementation of repository.DoctorRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type DoctorPostgres struct {
	db *sql.DB
}

// NewDoctorPostgres creates a new DoctorPostgres repository.
func NewDoctorPostgres(db *sql.DB) *DoctorPostgres {
	return &DoctorPostgres{db: db}
}

var _ repository.DoctorRepository = (*DoctorPostgres)(nil)

const doctorColumns = `doctor_id, first_name, last_name, dob, gender, email, phone, address, qualification, specialization`

func scanDoctor(row interface{ Scan(...any) error }) (*model.Doctor, error) {
	var d model.Doctor
	if err := row.Scan(
		&d.DoctorID,
		&d.FirstName,
		&d.LastName,
		&d.Dob,
		&d.Gender,
		&d.Email,
		&d.Phone,
		&d.Address,
		&d.Qualification,
		&d.Specialization,
	); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create inserts a new doctor row and returns the stored record with its generated ID.
func (r *DoctorPostgres) Create(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	const q = `
		INSERT INTO doctors (first_name, last_name, dob, gender, email, phone, address, qualification, specialization)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + doctorColumns
	row := r.db.QueryRowContext(ctx, q,
		doctor.FirstName,
		doctor.LastName,
		doctor.Dob,
		doctor.Gender,
		doctor.Email,
		doctor.Phone,
		doctor.Address,
		doctor.Qualification,
		doctor.Specialization,
	)
	out, err := scanDoctor(row)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return out, nil
}

// FindByID fetches a single doctor by its ID.
func (r *DoctorPostgres) FindByID(ctx context.Context, id uuid.UUID) (*model.Doctor, error) {
	const q = `SELECT ` + doctorColumns + ` FROM doctors WHERE doctor_id = $1`
	return scanDoctor(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single doctor by email.
func (r *DoctorPostgres) FindByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	const q = `SELECT ` + doctorColumns + ` FROM doctors WHERE email = $1`
	return scanDoctor(r.db.QueryRowContext(ctx, q, email))
}

// List returns all doctors ordered by creation time.
func (r *DoctorPostgres) List(ctx context.Context) ([]model.Doctor, error) {
	const q = `SELECT ` + doctorColumns + ` FROM doctors ORDER BY created_at, doctor_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Doctor, 0)
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces every column of the doctor row. It returns sql.ErrNoRows
// when no row has doctor.DoctorID.
func (r *DoctorPostgres) Update(ctx context.Context, doctor *model.Doctor) (*model.Doctor, error) {
	const q = `
		UPDATE doctors
		SET first_name = $2, last_name = $3, dob = $4, gender = $5, email = $6,
		    phone = $7, address = $8, qualification = $9, specialization = $10
		WHERE doctor_id = $1
		RETURNING ` + doctorColumns
	row := r.db.QueryRowContext(ctx, q,
		doctor.DoctorID,
		doctor.FirstName,
		doctor.LastName,
		doctor.Dob,
		doctor.Gender,
		doctor.Email,
		doctor.Phone,
		doctor.Address,
		doctor.Qualification,
		doctor.Specialization,
	)
	out, err := scanDoctor(row)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return out, nil
}

// Delete removes a doctor by ID. It does not return an error if the row does not exist.
func (r *DoctorPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM doctors WHERE doctor_id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
