package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

//go:generate mockgen -source=contract.go -destination=../mocks/usecase.go -package=mocks

type ProfileParams struct {
	Name          string
	Address       string
	PhoneNumber   string
	LicenseNumber string
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	UpdateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error)
	DeleteCustomer(ctx context.Context, id int) error
}
