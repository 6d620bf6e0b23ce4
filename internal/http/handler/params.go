package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"medvault/internal/apperror"
)

var errMalformedBody = fiber.NewError(fiber.StatusBadRequest, "malformed request body")

// pathID parses the named route parameter as a UUID.
func pathID(c *fiber.Ctx, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		return uuid.Nil, apperror.Validation(map[string]string{"id": "invalid id format"})
	}
	return id, nil
}

// validatable is implemented by the wire records.
type validatable interface {
	Validate() map[string]string
}

// parseBody decodes the JSON body into v and runs its field validation.
func parseBody(c *fiber.Ctx, v validatable) error {
	if err := c.BodyParser(v); err != nil {
		return errMalformedBody
	}
	if fields := v.Validate(); fields != nil {
		return apperror.Validation(fields)
	}
	return nil
}
