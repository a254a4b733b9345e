package repository

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

var customerRowColumns = []string{
	"id", "user_id", "name", "address", "phone_number", "license_number", "created_at", "updated_at",
}

func newRepo(t *testing.T) (*SqlxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSqlxRepository(sqlx.NewDb(db, "sqlmock"), logger), mock
}

func TestUpdateCustomer(t *testing.T) {
	customer := models.Customer{
		ID: 5, Name: "Budi", Address: "Jl. Merdeka 1", PhoneNumber: "0812345678", LicenseNumber: "SIM123",
	}

	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepo(t)
		now := time.Now()
		mock.ExpectQuery(`UPDATE customers SET (.+) WHERE id = \$5 RETURNING`).
			WithArgs("Budi", "Jl. Merdeka 1", "0812345678", "SIM123", 5).
			WillReturnRows(sqlmock.NewRows(customerRowColumns).
				AddRow(5, 3, "Budi", "Jl. Merdeka 1", "0812345678", "SIM123", now, now))

		updated, err := repo.UpdateCustomer(context.Background(), customer)
		require.NoError(t, err)
		assert.Equal(t, 5, updated.ID)
		require.NotNil(t, updated.UserID)
		assert.Equal(t, 3, *updated.UserID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`UPDATE customers`).WillReturnError(sql.ErrNoRows)

		_, err := repo.UpdateCustomer(context.Background(), customer)
		assert.Equal(t, pkgErrors.ErrCustomerNotFound, err)
	})

	t.Run("db error", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectQuery(`UPDATE customers`).WillReturnError(errors.New("connection refused"))

		_, err := repo.UpdateCustomer(context.Background(), customer)
		assert.True(t, errors.Is(err, pkgErrors.ErrDb))
	})
}

func TestDeleteCustomer(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteCustomer(context.Background(), 5))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newRepo(t)
		mock.ExpectExec(`DELETE FROM customers WHERE id = \$1`).
			WithArgs(5).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.Equal(t, pkgErrors.ErrCustomerNotFound, repo.DeleteCustomer(context.Background(), 5))
	})
}
