package middleware

import (
	"fmt"
	"time"

	"ride-service/src/pkg/log"

	"github.com/gofiber/fiber/v2"
)

// NewLogger logs every request with its status and latency.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		logger.Info(
			"http",
			fmt.Sprintf("%s %s -> %d (%v)", ctx.Method(), ctx.Path(), ctx.Response().StatusCode(), time.Since(start)),
			"request",
			ctx.IP(),
		)
		return err
	}
}
