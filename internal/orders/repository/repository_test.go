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
	"github.com/SlavaShagalov/car-rental-orders/internal/orders/usecase"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

var rentalRowColumns = []string{
	"id", "user_id", "car_id", "start_date", "end_date", "fixed_rental_rate",
	"return_date", "total_days", "total_price", "status", "created_at", "updated_at",
}

var carRowColumns = []string{"id", "brand", "model", "plate_number", "rental_rate", "image", "created_at", "updated_at"}

func newRepo(t *testing.T) (*SqlxRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewSqlxRepository(sqlx.NewDb(db, "sqlmock"), logger), mock
}

func TestAtomic_StartRental(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	now := time.Now()
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 5)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM cars WHERE id = \$1 FOR UPDATE`).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(carRowColumns).AddRow(7, "Toyota", "Avanza", "B 1 AA", 100000, nil, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE orders.car_id = \$1 AND orders.status = \$2`).
		WithArgs(7, "ongoing").
		WillReturnRows(sqlmock.NewRows(rentalRowColumns))
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(3, 7, "2024-01-01", "2024-01-05", int64(100000), "ongoing").
		WillReturnRows(sqlmock.NewRows(rentalRowColumns).
			AddRow(11, 3, 7, start.Time, end.Time, 100000, nil, nil, nil, "ongoing", now, now))
	mock.ExpectCommit()

	var saved models.Rental
	err := repo.Atomic(ctx, func(tx usecase.Tx) error {
		car, err := tx.GetCarForUpdate(ctx, 7)
		if err != nil {
			return err
		}
		ongoing, err := tx.ListOngoingRentals(ctx, car.ID)
		if err != nil {
			return err
		}
		assert.Empty(t, ongoing)

		renterID, rate := 3, car.RentalRate
		saved, err = tx.SaveRental(ctx, models.Rental{
			UserID:          &renterID,
			CarID:           &car.ID,
			StartDate:       start,
			EndDate:         end,
			FixedRentalRate: &rate,
			Status:          models.RentalOngoing,
		})
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, 11, saved.ID)
	assert.Equal(t, start, saved.StartDate)
	assert.Equal(t, end, saved.EndDate)
	assert.Nil(t, saved.ReturnDate)
	assert.Nil(t, saved.TotalDays)
	assert.Nil(t, saved.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomic_RollbackOnError(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM cars WHERE id = \$1 FOR UPDATE`).
		WithArgs(42).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	err := repo.Atomic(ctx, func(tx usecase.Tx) error {
		_, err := tx.GetCarForUpdate(ctx, 42)
		return err
	})
	assert.ErrorIs(t, err, pkgErrors.ErrCarNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomic_CompleteRental(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	now := time.Now()
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 5)
	returned := models.NewDate(2024, time.January, 3)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE orders.user_id = \$1 AND orders.car_id = \$2 AND orders.status = \$3 (.+) FOR UPDATE`).
		WithArgs(3, 7, "ongoing").
		WillReturnRows(sqlmock.NewRows(rentalRowColumns).
			AddRow(11, 3, 7, start.Time, end.Time, 100000, nil, nil, nil, "ongoing", now, now))
	mock.ExpectQuery(`UPDATE orders SET (.+) WHERE id = \$10`).
		WithArgs(3, 7, "2024-01-01", "2024-01-05", int64(100000), "2024-01-03", 3, int64(300000), "completed", 11).
		WillReturnRows(sqlmock.NewRows(rentalRowColumns).
			AddRow(11, 3, 7, start.Time, end.Time, 100000, returned.Time, 3, 300000, "completed", now, now))
	mock.ExpectCommit()

	var saved models.Rental
	err := repo.Atomic(ctx, func(tx usecase.Tx) error {
		rental, err := tx.FindOngoingRental(ctx, 3, 7)
		if err != nil {
			return err
		}

		days, price := 3, int64(300000)
		rental.ReturnDate = &returned
		rental.TotalDays = &days
		rental.TotalPrice = &price
		rental.Status = models.RentalCompleted

		saved, err = tx.SaveRental(ctx, rental)
		return err
	})
	require.NoError(t, err)

	assert.Equal(t, models.RentalCompleted, saved.Status)
	require.NotNil(t, saved.ReturnDate)
	assert.Equal(t, returned, *saved.ReturnDate)
	assert.Equal(t, 3, *saved.TotalDays)
	assert.Equal(t, int64(300000), *saved.TotalPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOngoingRental_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM orders`).
		WithArgs(3, 7, "ongoing").
		WillReturnRows(sqlmock.NewRows(rentalRowColumns))
	mock.ExpectRollback()

	err := repo.Atomic(ctx, func(tx usecase.Tx) error {
		_, err := tx.FindOngoingRental(ctx, 3, 7)
		return err
	})
	assert.ErrorIs(t, err, pkgErrors.ErrRentalNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindCarByPlate(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM cars WHERE plate_number = \$1`).
			WithArgs("B 1 AA").
			WillReturnRows(sqlmock.NewRows(carRowColumns).AddRow(7, "Toyota", "Avanza", "B 1 AA", 100000, "cars/avanza.png", now, now))

		car, err := repo.FindCarByPlate(ctx, "B 1 AA")
		require.NoError(t, err)
		assert.Equal(t, 7, car.ID)
		assert.Equal(t, int64(100000), car.RentalRate)
		require.NotNil(t, car.Image)
		assert.Equal(t, "cars/avanza.png", *car.Image)
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM cars WHERE plate_number = \$1`).
			WithArgs("Z 9 ZZ").
			WillReturnRows(sqlmock.NewRows(carRowColumns))

		_, err := repo.FindCarByPlate(ctx, "Z 9 ZZ")
		assert.ErrorIs(t, err, pkgErrors.ErrCarPlateNotFound)
	})

	t.Run("db failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM cars WHERE plate_number = \$1`).
			WithArgs("B 1 AA").
			WillReturnError(errors.New("connection refused"))

		_, err := repo.FindCarByPlate(ctx, "B 1 AA")
		assert.ErrorIs(t, err, pkgErrors.ErrDb)
		assert.Contains(t, err.Error(), "connection refused")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	now := time.Now()
	start := models.NewDate(2024, time.January, 1)
	end := models.NewDate(2024, time.January, 5)

	mock.ExpectQuery(`SELECT count\(\*\) FROM orders (.+) WHERE orders.user_id = \$1 AND \(cars.brand ILIKE \$2 (.+)\)`).
		WithArgs(3, "%toy%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT (.+), cars.brand, cars.model, customers.name FROM orders (.+) ORDER BY cars.brand DESC, orders.id LIMIT \$3 OFFSET \$4`).
		WithArgs(3, "%toy%", 5, 5).
		WillReturnRows(sqlmock.NewRows(append(rentalRowColumns, "brand", "model", "name")).
			AddRow(11, 3, 7, start.Time, end.Time, 100000, nil, nil, nil, "ongoing", now, now, "Toyota", "Avanza", "Budi"))

	items, total, err := repo.History(ctx, usecase.HistoryParams{
		Scope:        usecase.RentalsOf(3),
		Search:       "toy",
		SortField:    "brand",
		SortOrder:    "desc",
		ItemsPerPage: 5,
		Page:         2,
	})
	require.NoError(t, err)

	assert.Equal(t, 12, total)
	require.Len(t, items, 1)
	assert.Equal(t, 11, items[0].ID)
	assert.Equal(t, "Toyota", *items[0].Brand)
	assert.Equal(t, "Budi", *items[0].CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHistory_AllRentals(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT count\(\*\) FROM orders LEFT JOIN cars (.+) LEFT JOIN customers (.+);`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`ORDER BY orders.total_price ASC, orders.id LIMIT \$1 OFFSET \$2`).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(append(rentalRowColumns, "brand", "model", "name")))

	items, total, err := repo.History(ctx, usecase.HistoryParams{
		Scope:        usecase.AllRentals(),
		SortField:    "total_price",
		SortOrder:    "asc",
		ItemsPerPage: 10,
		Page:         1,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListOverdueRentals(t *testing.T) {
	repo, mock := newRepo(t)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM orders WHERE orders.status = \$1 AND orders.end_date < \$2`).
		WithArgs("ongoing", "2024-02-01").
		WillReturnRows(sqlmock.NewRows(rentalRowColumns).
			AddRow(11, 3, 7, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100000, nil, nil, nil, "ongoing", now, now))

	rentals, err := repo.ListOverdueRentals(ctx, models.NewDate(2024, time.February, 1))
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, "2024-01-05", rentals[0].EndDate.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}
