package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type Delivery struct {
	useCase UseCase
	logger  *slog.Logger
}

func New(useCase UseCase, logger *slog.Logger) *Delivery {
	return &Delivery{
		useCase: useCase,
		logger:  logger,
	}
}

func (d *Delivery) HealthCheck(ctx context.Context) error {
	return d.useCase.HealthCheck(ctx)
}

func (d *Delivery) AddHandlers(routes app.Routes) {
	routes.Admin.Post("/customers/:id<int>", d.update)
	routes.Admin.Delete("/customers/:id<int>", d.delete)
}

// update answers 201 like the other mutating rental endpoints.
func (d *Delivery) update(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return pkgErrors.ErrCustomerNotFound
	}

	var dto ProfileDTO
	if err := app.ParseBody(ctx, &dto); err != nil {
		return err
	}

	customer, err := d.useCase.Update(ctx.UserContext(), id, dto.params())
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusCreated, customer)
}

func (d *Delivery) delete(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil {
		return pkgErrors.ErrCustomerNotFound
	}

	if err := d.useCase.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, nil)
}
