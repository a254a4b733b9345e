package repository

import (
	"context"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type SqlxRepository struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewSqlxRepository(db *sqlx.DB, logger *slog.Logger) *SqlxRepository {
	return &SqlxRepository{
		db:     db,
		logger: logger,
	}
}

func (r *SqlxRepository) HealthCheck(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// SaveEvent stores event once; redelivered events are ignored.
func (r *SqlxRepository) SaveEvent(ctx context.Context, event models.RentalEvent) error {
	const saveCmd = `
	INSERT INTO rental_events (id, type, rental_id, user_id, car_id, status, total_price, occurred_at)
	VALUES (:id, :type, :rental_id, :user_id, :car_id, :status, :total_price, :occurred_at)
	ON CONFLICT (id) DO NOTHING;`

	_, err := r.db.NamedExecContext(ctx, saveCmd, event)
	if err != nil {
		r.logger.Error(err.Error())
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return nil
}
