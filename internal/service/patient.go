package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"medvault/internal/apperror"
	"medvault/internal/converter"
	"medvault/internal/dto"
	"medvault/internal/repository"
)

const patientResource = "Patient"

// PatientService defines the use cases for handling patients.
type PatientService interface {
	// Create registers a patient. A non-empty email must not belong to another patient.
	Create(ctx context.Context, in *dto.PatientDTO) (*dto.PatientDTO, error)

	// List returns every patient. An empty listing is reported as a conflict.
	List(ctx context.Context) (*dto.PatientListResponse, error)

	// Delete removes a patient and returns its last known state.
	Delete(ctx context.Context, id uuid.UUID) (*dto.PatientDTO, error)

	// Update replaces the whole patient identified by id.
	Update(ctx context.Context, in *dto.PatientDTO, id uuid.UUID) (*dto.PatientDTO, error)
}

type patientService struct {
	repo repository.PatientRepository
	log  logrus.FieldLogger
}

// NewPatientService constructs a new PatientService.
func NewPatientService(repo repository.PatientRepository, log logrus.FieldLogger) PatientService {
	return &patientService{repo: repo, log: withLogger(log)}
}

func (s *patientService) duplicateEmail(email string, cause error) error {
	return apperror.Conflictf("Patient with the Email %s already exists", email).Wrap(cause)
}

func (s *patientService) Create(ctx context.Context, in *dto.PatientDTO) (*dto.PatientDTO, error) {
	patient := converter.PatientFromDTO(in)
	patient.PatientID = uuid.Nil

	if patient.Email != "" {
		existing, err := s.repo.FindByEmail(ctx, patient.Email)
		switch {
		case err == nil && existing != nil:
			return nil, s.duplicateEmail(patient.Email, nil)
		case err != nil && !errors.Is(err, sql.ErrNoRows):
			s.log.Warnf("patient email lookup failed: %v", err)
			return nil, fmt.Errorf("find patient by email: %w", err)
		}
	}

	stored, err := s.repo.Create(ctx, patient)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, s.duplicateEmail(patient.Email, err)
		}
		s.log.Warnf("patient insert failed: %v", err)
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return converter.PatientToDTO(stored), nil
}

func (s *patientService) List(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warnf("patient listing failed: %v", err)
		return nil, fmt.Errorf("list patients: %w", err)
	}
	if len(patients) == 0 {
		return nil, apperror.Conflict("No patients found")
	}
	return &dto.PatientListResponse{Content: converter.PatientsToDTOs(patients)}, nil
}

func (s *patientService) Delete(ctx context.Context, id uuid.UUID) (*dto.PatientDTO, error) {
	patient, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(patientResource, "id", id).Wrap(err)
		}
		s.log.Warnf("patient lookup %s failed: %v", id, err)
		return nil, fmt.Errorf("find patient: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf("patient delete %s failed: %v", id, err)
		return nil, fmt.Errorf("delete patient: %w", err)
	}
	return converter.PatientToDTO(patient), nil
}

func (s *patientService) Update(ctx context.Context, in *dto.PatientDTO, id uuid.UUID) (*dto.PatientDTO, error) {
	patient := converter.PatientFromDTO(in)

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(patientResource, "id", id).Wrap(err)
		}
		s.log.Warnf("patient lookup %s failed: %v", id, err)
		return nil, fmt.Errorf("find patient: %w", err)
	}

	patient.PatientID = id
	stored, err := s.repo.Update(ctx, patient)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, s.duplicateEmail(patient.Email, err)
		case errors.Is(err, sql.ErrNoRows):
			return nil, apperror.NotFound(patientResource, "id", id).Wrap(err)
		}
		s.log.Warnf("patient update %s failed: %v", id, err)
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return converter.PatientToDTO(stored), nil
}
