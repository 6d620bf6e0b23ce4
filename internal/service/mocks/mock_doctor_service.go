package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"medvault/internal/dto"
)

type MockDoctorService struct {
	mock.Mock
}

func (m *MockDoctorService) Create(ctx context.Context, in *dto.DoctorDTO) (*dto.DoctorDTO, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorDTO), args.Error(1)
}

func (m *MockDoctorService) List(ctx context.Context) (*dto.DoctorListResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorListResponse), args.Error(1)
}

func (m *MockDoctorService) Delete(ctx context.Context, id uuid.UUID) (*dto.DoctorDTO, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorDTO), args.Error(1)
}

func (m *MockDoctorService) Update(ctx context.Context, in *dto.DoctorDTO, id uuid.UUID) (*dto.DoctorDTO, error) {
	args := m.Called(ctx, in, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DoctorDTO), args.Error(1)
}
