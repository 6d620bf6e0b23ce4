package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"medvault/internal/dto"
)

type MockPatientService struct {
	mock.Mock
}

func (m *MockPatientService) Create(ctx context.Context, in *dto.PatientDTO) (*dto.PatientDTO, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientDTO), args.Error(1)
}

func (m *MockPatientService) List(ctx context.Context) (*dto.PatientListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientListResponse), args.Error(1)
}

func (m *MockPatientService) Delete(ctx context.Context, id uuid.UUID) (*dto.PatientDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientDTO), args.Error(1)
}

func (m *MockPatientService) Update(ctx context.Context, in *dto.PatientDTO, id uuid.UUID) (*dto.PatientDTO, error) {
	args := m.Called(ctx, in, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PatientDTO), args.Error(1)
}
