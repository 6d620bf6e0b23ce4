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

const doctorResource = "Doctor"

// DoctorService defines the use cases for handling doctors.
type DoctorService interface {
	// Create registers a doctor. The email must not belong to another doctor.
	Create(ctx context.Context, in *dto.DoctorDTO) (*dto.DoctorDTO, error)

	// List returns every doctor. An empty listing is reported as a conflict.
	List(ctx context.Context) (*dto.DoctorListResponse, error)

	// Delete removes a doctor and returns its last known state.
	Delete(ctx context.Context, id uuid.UUID) (*dto.DoctorDTO, error)

	// Update replaces the whole doctor identified by id.
	Update(ctx context.Context, in *dto.DoctorDTO, id uuid.UUID) (*dto.DoctorDTO, error)
}

type doctorService struct {
	repo repository.DoctorRepository
	log  logrus.FieldLogger
}

// NewDoctorService constructs a new DoctorService.
func NewDoctorService(repo repository.DoctorRepository, log logrus.FieldLogger) DoctorService {
	return &doctorService{repo: repo, log: withLogger(log)}
}

func (s *doctorService) duplicateEmail(email string, cause error) error {
	return apperror.Conflictf("Doctor with the Email %s already Exists", email).Wrap(cause)
}

func (s *doctorService) Create(ctx context.Context, in *dto.DoctorDTO) (*dto.DoctorDTO, error) {
	doctor := converter.DoctorFromDTO(in)
	doctor.DoctorID = uuid.Nil

	existing, err := s.repo.FindByEmail(ctx, doctor.Email)
	switch {
	case err == nil && existing != nil:
		return nil, s.duplicateEmail(doctor.Email, nil)
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		s.log.Warnf("doctor email lookup failed: %v", err)
		return nil, fmt.Errorf("find doctor by email: %w", err)
	}

	stored, err := s.repo.Create(ctx, doctor)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, s.duplicateEmail(doctor.Email, err)
		}
		s.log.Warnf("doctor insert failed: %v", err)
		return nil, fmt.Errorf("create doctor: %w", err)
	}
	return converter.DoctorToDTO(stored), nil
}

func (s *doctorService) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		s.log.Warnf("doctor listing failed: %v", err)
		return nil, fmt.Errorf("list doctors: %w", err)
	}
	if len(doctors) == 0 {
		return nil, apperror.Conflict("No doctors found")
	}
	return &dto.DoctorListResponse{Doctors: converter.DoctorsToDTOs(doctors)}, nil
}

func (s *doctorService) Delete(ctx context.Context, id uuid.UUID) (*dto.DoctorDTO, error) {
	doctor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(doctorResource, "id", id).Wrap(err)
		}
		s.log.Warnf("doctor lookup %s failed: %v", id, err)
		return nil, fmt.Errorf("find doctor: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.log.Warnf("doctor delete %s failed: %v", id, err)
		return nil, fmt.Errorf("delete doctor: %w", err)
	}
	return converter.DoctorToDTO(doctor), nil
}

func (s *doctorService) Update(ctx context.Context, in *dto.DoctorDTO, id uuid.UUID) (*dto.DoctorDTO, error) {
	doctor := converter.DoctorFromDTO(in)

	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.NotFound(doctorResource, "id", id).Wrap(err)
		}
		s.log.Warnf("doctor lookup %s failed: %v", id, err)
		return nil, fmt.Errorf("find doctor: %w", err)
	}

	doctor.DoctorID = id
	stored, err := s.repo.Update(ctx, doctor)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, s.duplicateEmail(doctor.Email, err)
		case errors.Is(err, sql.ErrNoRows):
			// removed between the lookup and the write
			return nil, apperror.NotFound(doctorResource, "id", id).Wrap(err)
		}
		s.log.Warnf("doctor update %s failed: %v", id, err)
		return nil, fmt.Errorf("update doctor: %w", err)
	}
	return converter.DoctorToDTO(stored), nil
}
