package delivery

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-rental-orders/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
	now     func() time.Time
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(routes app.Routes) {
	routes.Public.Get("/cars", d.list)
	routes.Public.Get("/cars/:id<int>", d.get)

	routes.Admin.Post("/cars", d.create)
	routes.Admin.Post("/cars/:id<int>", d.update)
	routes.Admin.Delete("/cars/:id<int>", d.delete)
}

func (d *Delivery) list(ctx *fiber.Ctx) error {
	var query ListQuery
	if err := ctx.QueryParser(&query); err != nil {
		return pkgErrors.NewValidationError("The query parameters are malformed.")
	}
	if err := app.Validate(query); err != nil {
		return err
	}

	params := usecase.ListParams{Search: query.Search}
	switch {
	case query.Available && query.Unavailable:
		return pkgErrors.NewValidationError("The available and unavailable filters cannot be combined.")
	case query.Available:
		params.Availability = usecase.OnlyAvailable
	case query.Unavailable:
		params.Availability = usecase.OnlyUnavailable
	}

	today := models.DateOf(d.now())
	params.Window = models.Window{Start: today, End: today}
	if query.StartDate != "" {
		params.Window.Start, _ = models.ParseDate(query.StartDate)
	}
	if query.EndDate != "" {
		params.Window.End, _ = models.ParseDate(query.EndDate)
	}

	cars, err := d.useCase.List(ctx.UserContext(), params)
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, cars)
}

func (d *Delivery) get(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return pkgErrors.ErrCarNotFound
	}

	car, err := d.useCase.Get(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, car)
}

func (d *Delivery) create(ctx *fiber.Ctx) error {
	var dto CarDTO
	if err := app.ParseBody(ctx, &dto); err != nil {
		return err
	}

	car, err := d.useCase.Create(ctx.UserContext(), dto.params())
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusCreated, car)
}

func (d *Delivery) update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return pkgErrors.ErrCarNotFound
	}

	var dto CarDTO
	if err := app.ParseBody(ctx, &dto); err != nil {
		return err
	}

	car, err := d.useCase.Update(ctx.UserContext(), id, dto.params())
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, car)
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return pkgErrors.ErrCarNotFound
	}

	if err := d.useCase.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, nil)
}
