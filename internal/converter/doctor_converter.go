package converter

import (
	"medvault/internal/dto"
	"medvault/internal/model"
)

// DoctorFromDTO converts a doctor wire record into its stored shape.
func DoctorFromDTO(d *dto.DoctorDTO) *model.Doctor {
	if d == nil {
		return nil
	}

	return &model.Doctor{
		DoctorID:       d.DoctorID,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Dob:            d.Dob,
		Gender:         d.Gender,
		Email:          d.Email,
		Phone:          d.Phone,
		Address:        d.Address,
		Qualification:  d.Qualification,
		Specialization: d.Specialization,
	}
}

// DoctorToDTO converts a stored doctor into its wire record.
func DoctorToDTO(m *model.Doctor) *dto.DoctorDTO {
	if m == nil {
		return nil
	}

	return &dto.DoctorDTO{
		DoctorID:       m.DoctorID,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Dob:            m.Dob,
		Gender:         m.Gender,
		Email:          m.Email,
		Phone:          m.Phone,
		Address:        m.Address,
		Qualification:  m.Qualification,
		Specialization: m.Specialization,
	}
}

// DoctorsToDTOs converts stored doctors to wire records, keeping their order.
func DoctorsToDTOs(doctors []model.Doctor) []dto.DoctorDTO {
	out := make([]dto.DoctorDTO, len(doctors))
	for i := range doctors {
		out[i] = *DoctorToDTO(&doctors[i])
	}
	return out
}
