package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
	blocks models.AvailabilityRule
}

type Option func(u *UseCase)

// WithAvailabilityRule must match the rule used by the reservation engine.
func WithAvailabilityRule(rule models.AvailabilityRule) Option {
	return func(u *UseCase) {
		u.blocks = rule
	}
}

func New(repo Repository, logger *slog.Logger, opts ...Option) *UseCase {
	u := &UseCase{
		repo:   repo,
		logger: logger,
		blocks: models.ContainedIn,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) List(ctx context.Context, params ListParams) ([]models.Car, error) {
	if params.Availability != AnyAvailability && params.Window.End.Before(params.Window.Start.Time) {
		return nil, pkgErrors.NewValidationError("The end date must be a date after or equal to start date.")
	}

	cars, err := u.repo.ListCars(ctx, strings.TrimSpace(params.Search))
	if err != nil {
		return nil, err
	}

	if params.Availability == AnyAvailability || len(cars) == 0 {
		return cars, nil
	}

	ids := make([]int, 0, len(cars))
	for _, car := range cars {
		ids = append(ids, car.ID)
	}

	rentals, err := u.repo.ListOngoingRentals(ctx, ids)
	if err != nil {
		return nil, err
	}

	blocked := make(map[int]bool, len(rentals))
	for _, rental := range rentals {
		if rental.CarID != nil && u.blocks(rental.Window(), params.Window) {
			blocked[*rental.CarID] = true
		}
	}

	wantBlocked := params.Availability == OnlyUnavailable
	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if blocked[car.ID] == wantBlocked {
			filtered = append(filtered, car)
		}
	}

	return filtered, nil
}

func (u *UseCase) Get(ctx context.Context, id int) (models.Car, error) {
	return u.repo.GetCar(ctx, id)
}

func (u *UseCase) Create(ctx context.Context, params CarParams) (models.Car, error) {
	car, err := u.repo.CreateCar(ctx, params.car(0))
	if err != nil {
		return models.Car{}, err
	}

	u.logger.Info("car created", slog.Int("car_id", car.ID), slog.String("plate_number", car.PlateNumber))

	return car, nil
}

func (u *UseCase) Update(ctx context.Context, id int, params CarParams) (models.Car, error) {
	car, err := u.repo.UpdateCar(ctx, params.car(id))
	if err != nil {
		return models.Car{}, err
	}

	u.logger.Info("car updated", slog.Int("car_id", car.ID))

	return car, nil
}

func (u *UseCase) Delete(ctx context.Context, id int) error {
	if err := u.repo.DeleteCar(ctx, id); err != nil {
		return err
	}

	u.logger.Info("car deleted", slog.Int("car_id", id))

	return nil
}

func (p CarParams) car(id int) models.Car {
	return models.Car{
		ID:          id,
		Brand:       strings.TrimSpace(p.Brand),
		Model:       strings.TrimSpace(p.Model),
		PlateNumber: strings.TrimSpace(p.PlateNumber),
		RentalRate:  p.RentalRate,
		Image:       p.Image,
	}
}
