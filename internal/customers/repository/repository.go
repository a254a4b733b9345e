package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-orders/pkg/sqlxutils"
)

const customerColumns = `id, user_id, name, address, phone_number, license_number, created_at, updated_at`

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

func (r *SqlxRepository) UpdateCustomer(ctx context.Context, customer models.Customer) (models.Customer, error) {
	const updateCmd = `
	UPDATE customers
	SET name = $1, address = $2, phone_number = $3, license_number = $4, updated_at = now()
	WHERE id = $5
	RETURNING ` + customerColumns + `;`

	var updated models.Customer
	err := sqlxutils.Get(ctx, r.db, &updated, updateCmd,
		customer.Name, customer.Address, customer.PhoneNumber, customer.LicenseNumber, customer.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Customer{}, pkgErrors.ErrCustomerNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Customer{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return updated, nil
}

func (r *SqlxRepository) DeleteCustomer(ctx context.Context, id int) error {
	const deleteCmd = `DELETE FROM customers WHERE id = $1;`

	res, err := r.db.ExecContext(ctx, deleteCmd, id)
	if err != nil {
		r.logger.Error(err.Error())
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error(err.Error())
		return errors.Wrap(pkgErrors.ErrDb, err.Error())
	}
	if affected == 0 {
		return pkgErrors.ErrCustomerNotFound
	}

	return nil
}
