package httpError

import "github.com/gofiber/fiber/v2"

// CommonError carries an HTTP status classification next to the message so
// the delivery layer can serialize failures without re-inspecting causes.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{
		Code:    fiber.StatusBadRequest,
		Message: "bad request",
	}
}

func NewNotFound() *CommonError {
	return &CommonError{
		Code:    fiber.StatusNotFound,
		Message: "not found",
	}
}

func NewConflict() *CommonError {
	return &CommonError{
		Code:    fiber.StatusConflict,
		Message: "conflict",
	}
}

func NewInternalServerError() *CommonError {
	return &CommonError{
		Code:    fiber.StatusInternalServerError,
		Message: "internal server error",
	}
}
