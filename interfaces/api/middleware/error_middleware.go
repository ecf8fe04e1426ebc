package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskhub/pkg/logger"
	"taskhub/pkg/utils"
)

// ErrorHandler is the app-level net for errors that escape handlers
// (routing errors, panics surfaced by fiber, handler returns).
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := utils.ErrCodeInternalError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
			switch code {
			case fiber.StatusBadRequest:
				errCode = utils.ErrCodeBadRequest
			case fiber.StatusNotFound:
				errCode = utils.ErrCodeNotFound
			case fiber.StatusUnprocessableEntity:
				errCode = utils.ErrCodeValidation
			}
		}

		logger.ErrorContext(c.UserContext(), "Unhandled error", "status", code, "error", err)

		return utils.ErrorResponse(c, code, errCode, message, nil)
	}
}
