package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"medvault/internal/model"
	"medvault/internal/repository"
)

// PatientPostgres is a PostgreSQL implementation of repository.PatientRepository.
// An empty email is stored as NULL so that the unique constraint only applies
// to patients that have one.
type PatientPostgres struct {
	db *sql.DB
}

// NewPatientPostgres creates a new PatientPostgres repository.
func NewPatientPostgres(db *sql.DB) *PatientPostgres {
	return &PatientPostgres{db: db}
}

var _ repository.PatientRepository = (*PatientPostgres)(nil)

const patientColumns = `patient_id, first_name, last_name, dob, gender, address, COALESCE(email, '') AS email, phone`

func scanPatient(row interface{ Scan(...any) error }) (*model.Patient, error) {
	var p model.Patient
	if err := row.Scan(
		&p.PatientID,
		&p.FirstName,
		&p.LastName,
		&p.Dob,
		&p.Gender,
		&p.Address,
		&p.Email,
		&p.Phone,
	); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new patient row and returns the stored record with its generated ID.
func (r *PatientPostgres) Create(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	const q = `
		INSERT INTO patients (first_name, last_name, dob, gender, address, email, phone)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		RETURNING ` + patientColumns
	row := r.db.QueryRowContext(ctx, q,
		patient.FirstName,
		patient.LastName,
		patient.Dob,
		patient.Gender,
		patient.Address,
		patient.Email,
		patient.Phone,
	)
	out, err := scanPatient(row)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return out, nil
}

// FindByID fetches a single patient by its ID.
func (r *PatientPostgres) FindByID(ctx context.Context, id uuid.UUID) (*model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients WHERE patient_id = $1`
	return scanPatient(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single patient by email. An empty email never matches.
func (r *PatientPostgres) FindByEmail(ctx context.Context, email string) (*model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients WHERE email = $1`
	return scanPatient(r.db.QueryRowContext(ctx, q, email))
}

// List returns all patients ordered by creation time.
func (r *PatientPostgres) List(ctx context.Context) ([]model.Patient, error) {
	const q = `SELECT ` + patientColumns + ` FROM patients ORDER BY created_at, patient_id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Patient, 0)
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces every column of the patient row. It returns sql.ErrNoRows
// when no row has patient.PatientID.
func (r *PatientPostgres) Update(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	const q = `
		UPDATE patients
		SET first_name = $2, last_name = $3, dob = $4, gender = $5, address = $6,
		    email = NULLIF($7, ''), phone = $8
		WHERE patient_id = $1
		RETURNING ` + patientColumns
	row := r.db.QueryRowContext(ctx, q,
		patient.PatientID,
		patient.FirstName,
		patient.LastName,
		patient.Dob,
		patient.Gender,
		patient.Address,
		patient.Email,
		patient.Phone,
	)
	out, err := scanPatient(row)
	if err != nil {
		return nil, translateWriteErr(err)
	}
	return out, nil
}

// Delete removes a patient by ID. It does not return an error if the row does not exist.
func (r *PatientPostgres) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM patients WHERE patient_id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}
