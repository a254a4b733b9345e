package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

type UseCase struct {
	repo   Repository
	logger *slog.Logger
}

func New(repo Repository, logger *slog.Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

// Update overwrites every profile field of the customer.
func (u *UseCase) Update(ctx context.Context, id int, params ProfileParams) (models.Customer, error) {
	customer, err := u.repo.UpdateCustomer(ctx, models.Customer{
		ID:            id,
		Name:          strings.TrimSpace(params.Name),
		Address:       strings.TrimSpace(params.Address),
		PhoneNumber:   strings.TrimSpace(params.PhoneNumber),
		LicenseNumber: strings.TrimSpace(params.LicenseNumber),
	})
	if err != nil {
		return models.Customer{}, err
	}

	u.logger.Info("customer updated", slog.Int("customer_id", customer.ID))

	return customer, nil
}

func (u *UseCase) Delete(ctx context.Context, id int) error {
	if err := u.repo.DeleteCustomer(ctx, id); err != nil {
		return err
	}

	u.logger.Info("customer deleted", slog.Int("customer_id", id))

	return nil
}
