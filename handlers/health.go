package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/edumanage-api/database"
	"github.com/sahilchouksey/edumanage-api/utils/response"
)

// Ping is the public liveness check. It reports whether the process is up
// and whether the database answers.
func Ping(store database.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		status := "ok"
		if err := store.HealthCheck(); err != nil {
			status = "degraded"
		}
		return response.Success(c, fiber.Map{
			"message": "pong",
			"status":  status,
		})
	}
}
