package handler

import (
	"github.com/gofiber/fiber/v2"

	"medvault/internal/dto"
	"medvault/internal/service"
)

// RegisterDoctor creates a doctor.
//
// @Summary  Register a doctor
// @Tags     doctors
// @Accept   json
// @Produce  json
// @Param    doctor body dto.DoctorDTO true "Doctor"
// @Success  201 {object} dto.DoctorDTO
// @Failure  400 {object} map[string]string
// @Failure  404 {object} errorPayload
// @Router   /api/doctor/register [post]
func RegisterDoctor(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in dto.DoctorDTO
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

// ListDoctors returns every doctor.
//
// @Summary  List doctors
// @Tags     doctors
// @Produce  json
// @Success  200 {object} dto.DoctorListResponse
// @Failure  404 {object} errorPayload
// @Router   /api/doctors [get]
func ListDoctors(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(res)
	}
}

// DeleteDoctor removes a doctor and echoes it back.
//
// @Summary  Delete a doctor
// @Tags     doctors
// @Produce  json
// @Param    doctorId path string true "Doctor ID"
// @Success  200 {object} dto.DoctorDTO
// @Failure  404 {object} errorPayload
// @Router   /api/doctor/{doctorId} [delete]
func DeleteDoctor(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "doctorId")
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

// UpdateDoctor replaces a doctor. The path id wins over any doctorId in the body.
//
// @Summary  Update a doctor
// @Tags     doctors
// @Accept   json
// @Produce  json
// @Param    doctorId path string true "Doctor ID"
// @Param    doctor body dto.DoctorDTO true "Doctor"
// @Success  200 {object} dto.DoctorDTO
// @Failure  400 {object} map[string]string
// @Failure  404 {object} errorPayload
// @Router   /api/doctor/{doctorId} [put]
func UpdateDoctor(svc service.DoctorService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := pathID(c, "doctorId")
		if err != nil {
			return err
		}
		var in dto.DoctorDTO
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
