package delivery

import (
	"context"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/SlavaShagalov/car-rental-orders/internal/orders/usecase"
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
	routes.Public.Post("/order", routes.Auth, d.order)
	routes.Public.Post("/return-car", routes.Auth, d.returnCar)
	routes.Public.Get("/order-history", routes.Auth, d.history)
}

func (d *Delivery) order(ctx *fiber.Ctx) error {
	renter, ok := app.RenterFrom(ctx.UserContext())
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	var dto OrderDTO
	if err := app.ParseBody(ctx, &dto); err != nil {
		return err
	}

	startDate, endDate, err := dto.dates()
	if err != nil {
		return err
	}

	rental, err := d.useCase.StartRental(ctx.UserContext(), usecase.StartRentalParams{
		RenterID:  renter.ID,
		CarID:     dto.CarID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return err
	}

	d.logger.Info("rental started",
		slog.Int("rental_id", rental.ID),
		slog.Int("renter_id", renter.ID),
		slog.Int("car_id", dto.CarID),
	)

	return app.Success(ctx, fiber.StatusCreated, rental)
}

func (d *Delivery) returnCar(ctx *fiber.Ctx) error {
	renter, ok := app.RenterFrom(ctx.UserContext())
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	var dto ReturnCarDTO
	if err := app.ParseBody(ctx, &dto); err != nil {
		return err
	}

	rental, err := d.useCase.ReturnCar(ctx.UserContext(), usecase.ReturnCarParams{
		RenterID:    renter.ID,
		PlateNumber: dto.PlateNumber,
	})
	if err != nil {
		return err
	}

	d.logger.Info("car returned",
		slog.Int("rental_id", rental.ID),
		slog.Int("renter_id", renter.ID),
	)

	return app.Success(ctx, fiber.StatusCreated, rental)
}

func (d *Delivery) history(ctx *fiber.Ctx) error {
	renter, ok := app.RenterFrom(ctx.UserContext())
	if !ok {
		return pkgErrors.ErrUnauthorized
	}

	var query HistoryQuery
	if err := ctx.QueryParser(&query); err != nil {
		return pkgErrors.NewValidationError("The query parameters are malformed.")
	}

	scope := usecase.RentalsOf(renter.ID)
	if renter.IsAdmin() {
		scope = usecase.AllRentals()
	}

	page, err := d.useCase.History(ctx.UserContext(), usecase.HistoryParams{
		Scope:        scope,
		Search:       query.Search,
		SortField:    query.SortField,
		SortOrder:    query.SortOrder,
		ItemsPerPage: query.ItemsPerPage,
		Page:         query.Page,
	})
	if err != nil {
		return err
	}

	return app.Success(ctx, fiber.StatusOK, page)
}
