package delivery

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/orders/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
)

//go:generate mockgen -source=contract.go -destination=../mocks/delivery.go -package=mocks

type UseCase interface {
	app.HealthChecker

	StartRental(ctx context.Context, params usecase.StartRentalParams) (models.Rental, error)
	ReturnCar(ctx context.Context, params usecase.ReturnCarParams) (models.Rental, error)
	History(ctx context.Context, params usecase.HistoryParams) (usecase.HistoryPage, error)
}
