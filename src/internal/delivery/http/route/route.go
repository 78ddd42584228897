package route

import (
	"ride-service/src/internal/delivery/http"

	"github.com/gofiber/fiber/v2"
)

type RouteConfig struct {
	App            *fiber.App
	RideController *http.RideController
}

func (c *RouteConfig) Setup() {
	c.App.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})

	rides := c.App.Group("/api/rides")
	rides.Post("/request", c.RideController.RequestRide)
	rides.Post("/accept", c.RideController.AcceptRide)
	rides.Post("/complete", c.RideController.CompleteRide)
	rides.Get("/:ride_id", c.RideController.GetRideDetail)
}
