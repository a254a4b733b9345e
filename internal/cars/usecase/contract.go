package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

//go:generate mockgen -source=contract.go -destination=../mocks/usecase.go -package=mocks

type Availability int

const (
	AnyAvailability Availability = iota
	OnlyAvailable
	OnlyUnavailable
)

type ListParams struct {
	Search       string
	Availability Availability
	// Window is checked against ongoing rentals when Availability is set.
	Window models.Window
}

type CarParams struct {
	Brand       string
	Model       string
	PlateNumber string
	RentalRate  int64
	Image       *string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	ListCars(ctx context.Context, search string) ([]models.Car, error)
	// ListOngoingRentals returns every ongoing rental of the given cars.
	ListOngoingRentals(ctx context.Context, carIDs []int) ([]models.Rental, error)
	GetCar(ctx context.Context, id int) (models.Car, error)
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	UpdateCar(ctx context.Context, car models.Car) (models.Car, error)
	DeleteCar(ctx context.Context, id int) error
}
