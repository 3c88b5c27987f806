package utils

import (
	goerrors "errors"

	"github.com/gofiber/fiber/v2"
	"github.com/precipitation-dashboard/internal/pkg/errors"
)

// ErrorResponse is the JSON body for every failed request. Error holds a
// single message string, or the list of validation messages when the
// request parameters were rejected.
type ErrorResponse struct {
	Error interface{} `json:"error"`
}

// SendError translates an error into its HTTP response. Unknown error
// values are reported as a generic 500 so internals never leak.
func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if goerrors.As(err, &appErr) {
		body := ErrorResponse{Error: appErr.Message}
		if len(appErr.Errors) > 0 {
			body.Error = appErr.Errors
		}
		return c.Status(appErr.StatusCode).JSON(body)
	}

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
	})
}
