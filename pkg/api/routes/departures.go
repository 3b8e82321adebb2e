package routes

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/travigo/stopboard/pkg/ctdf"
)

// BoardProvider is whatever decides which board a request gets: the resilience cache for
// live data, or the demo source.
type BoardProvider interface {
	Board(ctx context.Context) (*ctdf.Board, bool)
	Status() string
}

func DeparturesRouter(router fiber.Router, boards BoardProvider) {
	router.Get("/departures", getDepartures(boards))
}

func getDepartures(boards BoardProvider) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")

		board, ok := boards.Board(c.UserContext())
		if !ok {
			c.Status(fiber.StatusBadGateway)
		}

		return c.JSON(board)
	}
}
