package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/travigo/stopboard/pkg/api/routes"
)

// NewApp builds the front door. publicDir, when set, is served for every path not
// claimed by a route.
func NewApp(boards routes.BoardProvider, publicDir string) *fiber.App {
	webApp := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	webApp.Use(NewLogger())

	webApp.Get("/version", routes.APIVersion)
	webApp.Get("/health", routes.Health(boards))
	webApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	routes.DeparturesRouter(webApp.Group("/api"), boards)

	if publicDir != "" {
		webApp.Static("/", publicDir)
	}

	return webApp
}

func SetupServer(listen string, boards routes.BoardProvider, publicDir string) error {
	return NewApp(boards, publicDir).Listen(listen)
}
