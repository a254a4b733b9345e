package app

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"
	slogfiber "github.com/samber/slog-fiber"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// Routes is handed to every delivery. Handlers that need a caller identity
// put Auth in front of themselves; Admin is already guarded.
type Routes struct {
	Public fiber.Router
	Auth   fiber.Handler
	Admin  fiber.Router
}

// Delivery is a feature HTTP surface mounted on the API router.
type Delivery interface {
	HealthChecker

	AddHandlers(routes Routes)
}

type FiberApp struct {
	app    *fiber.App
	config WebConfig
}

func NewFiberApp(config WebConfig, auth fiber.Handler, logger *slog.Logger, deliveries ...Delivery) *FiberApp {
	app := fiber.New(fiber.Config{
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(slogfiber.New(logger))

	app.Get("/manage/health", func(ctx *fiber.Ctx) error {
		for _, delivery := range deliveries {
			if err := delivery.HealthCheck(ctx.UserContext()); err != nil {
				logger.Error("health check failed", slog.String("error", err.Error()))
				return Fail(ctx, fiber.StatusServiceUnavailable, err.Error())
			}
		}
		return ctx.SendStatus(fiber.StatusOK)
	})

	routes := Routes{
		Public: app,
		Auth:   auth,
		Admin:  app.Group("/admin", auth, AdminOnly()),
	}

	for _, delivery := range deliveries {
		delivery.AddHandlers(routes)
	}

	return &FiberApp{app: app, config: config}
}

func (a *FiberApp) Start() error {
	return a.app.Listen(a.config.Host + ":" + a.config.Port)
}

func (a *FiberApp) Shutdown(ctx context.Context) error {
	return a.app.ShutdownWithContext(ctx)
}

// Test exposes the underlying router to HTTP tests.
func (a *FiberApp) Test(req *http.Request) (*http.Response, error) {
	return a.app.Test(req, -1)
}
