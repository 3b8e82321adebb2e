package routes

import "github.com/gofiber/fiber/v2"

func Health(boards BoardProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
			"cache":  boards.Status(),
		})
	}
}
