package delivery

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
)

//go:generate mockgen -source=contract.go -destination=../mocks/delivery.go -package=mocks

type UseCase interface {
	app.HealthChecker

	List(ctx context.Context, params usecase.ListParams) ([]models.Car, error)
	Get(ctx context.Context, id int) (models.Car, error)
	Create(ctx context.Context, params usecase.CarParams) (models.Car, error)
	Update(ctx context.Context, id int, params usecase.CarParams) (models.Car, error)
	Delete(ctx context.Context, id int) error
}
