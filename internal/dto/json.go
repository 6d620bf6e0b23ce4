package dto

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// optionalID parses an identifier sent in a request body. An empty string or
// null means the client did not supply one.
func optionalID(field, s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s must be a UUID: %w", field, err)
	}
	return id, nil
}

// UnmarshalJSON reads doctorId as optional so that "" decodes to uuid.Nil.
func (d *DoctorDTO) UnmarshalJSON(b []byte) error {
	type plain DoctorDTO
	aux := struct {
		*plain
		DoctorID string `json:"doctorId"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	id, err := optionalID("doctorId", aux.DoctorID)
	if err != nil {
		return err
	}
	d.DoctorID = id
	return nil
}

// UnmarshalJSON reads id as optional so that "" decodes to uuid.Nil.
func (p *PatientDTO) UnmarshalJSON(b []byte) error {
	type plain PatientDTO
	aux := struct {
		*plain
		ID string `json:"id"`
	}{plain: (*plain)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	id, err := optionalID("id", aux.ID)
	if err != nil {
		return err
	}
	p.ID = id
	return nil
}
