package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	httpError "ride-service/src/pkg/http-error"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseErrorClassification(t *testing.T) {
	app := fiber.New()
	app.Get("/known", func(ctx *fiber.Ctx) error {
		errObj := httpError.NewNotFound()
		errObj.Message = "ride with id 42 not found"
		return ResponseError(errObj, ctx)
	})
	app.Get("/unknown", func(ctx *fiber.Ctx) error {
		return ResponseError(errors.New("connection reset"), ctx)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/known", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body HTTPErrorResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "ride with id 42 not found", body.Message)
	assert.Equal(t, fiber.StatusNotFound, body.Code)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/unknown", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestConvertString(t *testing.T) {
	assert.Equal(t, "", ConvertString(nil))
	assert.Equal(t, "plain", ConvertString("plain"))
	assert.Equal(t, "boom", ConvertString(errors.New("boom")))
	assert.Equal(t, `{"a":1}`, ConvertString(map[string]int{"a": 1}))
}
