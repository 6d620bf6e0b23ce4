package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"medvault/internal/apperror"
	"medvault/internal/dto"
	"medvault/internal/model"
	"medvault/internal/repository"
	repoMocks "medvault/internal/repository/mocks"
)

func TestPatientService_Create(t *testing.T) {
	ctx := context.Background()
	genID := uuid.New()

	tests := []struct {
		name       string
		in         *dto.PatientDTO
		setupMocks func(mRepo *repoMocks.MockPatientRepository)
		wantKind   apperror.Kind
		wantMsg    string
		wantCause  error
	}{
		{
			name: "happy path",
			in:   &dto.PatientDTO{FirstName: "Noor", LastName: "Haddad", Gender: "F", Email: "n@x.com"},
			setupMocks: func(mRepo *repoMocks.MockPatientRepository) {
				mRepo.On("FindByEmail", ctx, "n@x.com").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, mock.Anything).Return(&model.Patient{PatientID: genID, FirstName: "Noor"}, nil)
			},
		},
		{
			name: "no email skips lookup",
			in:   &dto.PatientDTO{FirstName: "Noor", LastName: "Haddad", Gender: "F"},
			setupMocks: func(mRepo *repoMocks.MockPatientRepository) {
				mRepo.On("Create", ctx, mock.Anything).Return(&model.Patient{PatientID: genID, FirstName: "Noor"}, nil)
			},
		},
		{
			name: "duplicate email",
			in:   &dto.PatientDTO{FirstName: "Noor", Email: "n@x.com"},
			setupMocks: func(mRepo *repoMocks.MockPatientRepository) {
				mRepo.On("FindByEmail", ctx, "n@x.com").Return(&model.Patient{PatientID: uuid.New()}, nil)
			},
			wantKind: apperror.KindConflict,
			wantMsg:  "Patient with the Email n@x.com already exists",
		},
		{
			name: "duplicate email rejected by store",
			in:   &dto.PatientDTO{FirstName: "Noor", Email: "n@x.com"},
			setupMocks: func(mRepo *repoMocks.MockPatientRepository) {
				mRepo.On("FindByEmail", ctx, "n@x.com").Return(nil, sql.ErrNoRows)
				mRepo.On("Create", ctx, mock.Anything).Return(nil, repository.ErrEmailTaken)
			},
			wantKind:  apperror.KindConflict,
			wantMsg:   "Patient with the Email n@x.com already exists",
			wantCause: repository.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockPatientRepository)
			svc := NewPatientService(mRepo, nil)
			tt.setupMocks(mRepo)

			out, err := svc.Create(ctx, tt.in)

			if tt.wantKind != 0 {
				assert.True(t, apperror.IsKind(err, tt.wantKind))
				assert.EqualError(t, err, tt.wantMsg)
				if tt.wantCause != nil {
					assert.ErrorIs(t, err, tt.wantCause)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, genID, out.ID)
			}

			mRepo.AssertExpectations(t)
		})
	}
}

func TestPatientService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("List", ctx).Return([]model.Patient{}, nil)

		_, err := NewPatientService(mRepo, nil).List(ctx)

		assert.True(t, apperror.IsKind(err, apperror.KindConflict))
		assert.EqualError(t, err, "No patients found")
	})

	t.Run("returns every record", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("List", ctx).Return([]model.Patient{{FirstName: "A"}, {FirstName: "B"}, {FirstName: "C"}}, nil)

		res, err := NewPatientService(mRepo, nil).List(ctx)

		require.NoError(t, err)
		assert.Len(t, res.Content, 3)
	})
}

func TestPatientService_Delete(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("returns pre-deletion state", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("FindByID", ctx, id).Return(&model.Patient{PatientID: id, FirstName: "Noor"}, nil)
		mRepo.On("Delete", ctx, id).Return(nil)

		out, err := NewPatientService(mRepo, nil).Delete(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, id, out.ID)
		mRepo.AssertExpectations(t)
	})

	t.Run("not found", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, err := NewPatientService(mRepo, nil).Delete(ctx, id)

		assert.EqualError(t, err, "Patient not found with id: "+id.String())
		assert.ErrorIs(t, err, sql.ErrNoRows)
		mRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("lookup error", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("FindByID", ctx, id).Return(nil, errors.New("timeout"))

		_, err := NewPatientService(mRepo, nil).Delete(ctx, id)

		assert.EqualError(t, err, "find patient: timeout")
	})
}

func TestPatientService_Update(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("forces path id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("FindByID", ctx, id).Return(&model.Patient{PatientID: id}, nil)
		mRepo.On("Update", ctx, mock.MatchedBy(func(p *model.Patient) bool {
			return p.PatientID == id
		})).Return(&model.Patient{PatientID: id, LastName: "Haddad-Ali"}, nil)

		out, err := NewPatientService(mRepo, nil).Update(ctx, &dto.PatientDTO{ID: uuid.New(), LastName: "Haddad-Ali"}, id)

		require.NoError(t, err)
		assert.Equal(t, id, out.ID)
		assert.Equal(t, "Haddad-Ali", out.LastName)
	})

	t.Run("unknown id", func(t *testing.T) {
		mRepo := new(repoMocks.MockPatientRepository)
		mRepo.On("FindByID", ctx, id).Return(nil, sql.ErrNoRows)

		_, err := NewPatientService(mRepo, nil).Update(ctx, &dto.PatientDTO{}, id)

		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
