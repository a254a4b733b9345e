package delivery

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/customers/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
)

//go:generate mockgen -source=contract.go -destination=../mocks/delivery.go -package=mocks

type UseCase interface {
	app.HealthChecker

	Update(ctx context.Context, id int, params usecase.ProfileParams) (models.Customer, error)
	Delete(ctx context.Context, id int) error
}
