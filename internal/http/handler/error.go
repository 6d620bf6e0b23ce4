package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"medvault/internal/apperror"
	"medvault/internal/http/middleware"
)

// errorPayload is the response body for every non-validation failure.
type errorPayload struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a {message, success:false} response. message must be safe
// to show to clients.
func writeError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(errorPayload{Message: message, Success: false})
}

// ErrorHandler returns a Fiber global error handler that turns handler errors
// into responses:
//   - validation failures: 400 with a field -> message object
//   - conflicts and missing records: 404 with the error message
//   - *fiber.Error: its own code and message
//   - anything else: 500, logged with the request id
func ErrorHandler(log logrus.FieldLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := apperror.As(err); ok {
			switch appErr.Kind {
			case apperror.KindValidation:
				return c.Status(fiber.StatusBadRequest).JSON(appErr.Fields)
			case apperror.KindConflict, apperror.KindNotFound:
				return writeError(c, fiber.StatusNotFound, appErr.Message)
			}
		}

		var fe *fiber.Error
		if errors.As(err, &fe) {
			return writeError(c, fe.Code, fe.Message)
		}

		log.WithFields(logrus.Fields{
			"request_id": requestIDFromCtx(c),
			"method":     c.Method(),
			"path":       c.Path(),
		}).WithError(err).Error("request failed")
		return writeError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
