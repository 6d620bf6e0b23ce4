package handler

import (
	"github.com/gofiber/fiber/v2"

	"medvault/internal/dto"
	"medvault/internal/service"
)

// RegisterPatient creates a patient.
//
// @Summary  Register a patient
// @Tags     patients
// @Accept   json
// @Produce  json
// @Param    patient body dto.PatientDTO true "Patient"
// @Success  201 {object} dto.PatientDTO
// @Failure  400 {object} map[string]string
// @Failure  404 {object} errorPayload
// @Router   /api/patient/register [post]
func RegisterPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.PatientDTO
		if err := parseBody(c, &in); err != nil {
			return err
		}
		out, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(out)
	}
}

// ListPatients returns every patient.
//
// @Summary  List patients
// @Tags     patients
// @Produce  json
// @Success  200 {object} dto.PatientListResponse
// @Failure  404 {object} errorPayload
// @Router   /api/patients [get]
func ListPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// DeletePatient removes a patient and echoes it back.
//
// @Summary  Delete a patient
// @Tags     patients
// @Produce  json
// @Param    patientId path string true "Patient ID"
// @Success  200 {object} dto.PatientDTO
// @Failure  404 {object} errorPayload
// @Router   /api/patients/{patientId} [delete]
func DeletePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "patientId")
		if err != nil {
			return err
		}
		out, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}

// UpdatePatient replaces a patient.
//
// @Summary  Update a patient
// @Tags     patients
// @Accept   json
// @Produce  json
// @Param    patientId path string true "Patient ID"
// @Param    patient body dto.PatientDTO true "Patient"
// @Success  200 {object} dto.PatientDTO
// @Failure  400 {object} map[string]string
// @Failure  404 {object} errorPayload
// @Router   /api/patient/{patientId} [put]
func UpdatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "patientId")
		if err != nil {
			return err
		}
		var in dto.PatientDTO
		if err := parseBody(c, &in); err != nil {
			return err
		}
		out, err := svc.Update(c.UserContext(), &in, id)
		if err != nil {
			return err
		}
		return c.JSON(out)
	}
}
