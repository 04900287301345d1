package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"wellness_backend/internals/configs"
)

// Services wrap these with fmt.Errorf("%w: ...") so controllers can map them.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// ToFiberError maps service errors to HTTP errors. Unknown errors are 500s
// whose message is not leaked.
func ToFiberError(err error) error {
	if err == nil {
		return nil
	}
	var fe *fiber.Error
	switch {
	case errors.As(err, &fe):
		return fe
	case errors.Is(err, ErrValidation):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "internal server error")
	}
}

// ErrorHandler is the fiber app error handler: every error leaves in the
// ErrorResponse envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	fe, ok := ToFiberError(err).(*fiber.Error)
	if !ok || fe.Code >= fiber.StatusInternalServerError {
		configs.Log.WithError(err).
			WithField("request_id", c.Locals("reqid")).
			WithField("path", c.Path()).
			Error("request failed")
	}
	if !ok {
		return JsonError(c, fiber.StatusInternalServerError, "")
	}
	return JsonError(c, fe.Code, fe.Message)
}

// IsUniqueViolation reports a Postgres unique constraint failure (23505).
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "sqlstate 23505")
}
