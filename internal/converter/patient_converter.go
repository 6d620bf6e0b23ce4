package converter

import (
	"medvault/internal/dto"
	"medvault/internal/model"
)

// PatientFromDTO converts a patient wire record into its stored shape.
func PatientFromDTO(d *dto.PatientDTO) *model.Patient {
	if d == nil {
		return nil
	}

	return &model.Patient{
		PatientID: d.ID,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Dob:       d.Dob,
		Gender:    d.Gender,
		Address:   d.Address,
		Email:     d.Email,
		Phone:     d.Phone,
	}
}

// PatientToDTO converts a stored patient into its wire record.
func PatientToDTO(m *model.Patient) *dto.PatientDTO {
	if m == nil {
		return nil
	}

	return &dto.PatientDTO{
		ID:        m.PatientID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Dob:       m.Dob,
		Gender:    m.Gender,
		Address:   m.Address,
		Email:     m.Email,
		Phone:     m.Phone,
	}
}

// PatientsToDTOs converts stored patients to wire records, keeping their order.
func PatientsToDTOs(patients []model.Patient) []dto.PatientDTO {
	out := make([]dto.PatientDTO, len(patients))
	for i := range patients {
		out[i] = *PatientToDTO(&patients[i])
	}
	return out
}
