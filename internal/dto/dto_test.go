package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorDTO_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   DoctorDTO
		want map[string]string
	}{
		{
			name: "valid",
			in:   DoctorDTO{FirstName: "Alice", Email: "a@x.com"},
			want: nil,
		},
		{
			name: "blank first name",
			in:   DoctorDTO{FirstName: "     ", Email: "a@x.com"},
			want: map[string]string{"firstName": "first name must not be blank"},
		},
		{
			name: "short first name",
			in:   DoctorDTO{FirstName: "Bob", Email: "b@x.com"},
			want: map[string]string{"firstName": "first name must be 5 characters"},
		},
		{
			name: "bad email",
			in:   DoctorDTO{FirstName: "Alice", Email: "not-an-email"},
			want: map[string]string{"email": "Enter valid email"},
		},
		{
			name: "missing email and name",
			in:   DoctorDTO{},
			want: map[string]string{
				"firstName": "first name must not be blank",
				"email":     "email must not be blank",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Validate())
		})
	}
}

func TestPatientDTO_Validate(t *testing.T) {
	tests := []struct {
		name string
		in   PatientDTO
		want map[string]string
	}{
		{
			name: "valid without email",
			in:   PatientDTO{FirstName: "Ann", LastName: "Lee", Gender: "F"},
			want: nil,
		},
		{
			name: "valid with email",
			in:   PatientDTO{FirstName: "Ann", LastName: "Lee", Gender: "F", Email: "ann@x.com"},
			want: nil,
		},
		{
			name: "all required missing",
			in:   PatientDTO{},
			want: map[string]string{
				"firstName": "first name is required",
				"lastName":  "last name is required",
				"gender":    "gender is required",
			},
		},
		{
			name: "short names and bad email",
			in:   PatientDTO{FirstName: "Al", LastName: "Li", Gender: "M", Email: "al@"},
			want: map[string]string{
				"firstName": "first name must contain at least 3 characters",
				"lastName":  "last name must contain at least 3 characters",
				"email":     "Enter valid Email",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Validate())
		})
	}
}

func TestDoctorDTO_UnmarshalOptionalID(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		body    string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "absent", body: `{"firstName":"Alice"}`, want: uuid.Nil},
		{name: "empty string", body: `{"doctorId":"","firstName":"Alice"}`, want: uuid.Nil},
		{name: "null", body: `{"doctorId":null,"firstName":"Alice"}`, want: uuid.Nil},
		{name: "set", body: `{"doctorId":"` + id.String() + `","firstName":"Alice"}`, want: id},
		{name: "not a uuid", body: `{"doctorId":"abc"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d DoctorDTO
			err := json.Unmarshal([]byte(tt.body), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.DoctorID)
			assert.Equal(t, "Alice", d.FirstName)
		})
	}
}

func TestPatientDTO_UnmarshalOptionalID(t *testing.T) {
	var p PatientDTO
	require.NoError(t, json.Unmarshal([]byte(`{"id":"","firstName":"Noor","dob":"1990-01-15"}`), &p))

	assert.Equal(t, uuid.Nil, p.ID)
	assert.Equal(t, "Noor", p.FirstName)
	require.NotNil(t, p.Dob)
	assert.Equal(t, "1990-01-15", p.Dob.String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"id":"00000000-0000-0000-0000-000000000000"`)
}
