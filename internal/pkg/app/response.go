package app

import (
	"github.com/gofiber/fiber/v2"

	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Success(ctx *fiber.Ctx, status int, data any) error {
	return ctx.Status(status).JSON(SuccessResponse{Status: StatusSuccess, Data: data})
}

func Fail(ctx *fiber.Ctx, status int, message string) error {
	return ctx.Status(status).JSON(ErrorResponse{Status: StatusError, Message: message})
}

// ErrorHandler turns errors returned by handlers into the error envelope.
func ErrorHandler(ctx *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if pkgErrors.As(err, &fiberErr) {
		return Fail(ctx, fiberErr.Code, fiberErr.Message)
	}

	return Fail(ctx, pkgErrors.HTTPStatus(err), pkgErrors.Message(err))
}
