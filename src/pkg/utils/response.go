package utils

import (
	"errors"

	httpError "ride-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
)

type HTTPResponse struct {
	Message string      `json:"message"`
	Code    int         `json:"code"`
	Data    interface{} `json:"data,omitempty"`
}

type HTTPErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// Response writes a success envelope with the given status code.
func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(HTTPResponse{
		Message: message,
		Code:    code,
		Data:    data,
	})
}

// ResponseError maps an error to its HTTP classification. Anything that is
// not a *httpError.CommonError is treated as an internal server error.
func ResponseError(err error, ctx *fiber.Ctx) error {
	var commonErr *httpError.CommonError
	if !errors.As(err, &commonErr) {
		commonErr = httpError.NewInternalServerError()
		commonErr.Message = err.Error()
	}
	return ctx.Status(commonErr.Code).JSON(HTTPErrorResponse{
		Message: commonErr.Message,
		Code:    commonErr.Code,
	})
}
