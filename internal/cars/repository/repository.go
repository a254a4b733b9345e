package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-orders/pkg/sqlxutils"
)

const uniqueViolation = "23505"

const carColumns = `id, brand, model, plate_number, rental_rate, image, created_at, updated_at`

const rentalColumns = `id, user_id, car_id, start_date, end_date, fixed_rental_rate, return_date,
	total_days, total_price, status, created_at, updated_at`

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

func (r *SqlxRepository) ListCars(ctx context.Context, search string) ([]models.Car, error) {
	const listCmd = `SELECT ` + carColumns + ` FROM cars ORDER BY id;`
	const searchCmd = `SELECT ` + carColumns + `
	FROM cars
	WHERE brand ILIKE $1 OR model ILIKE $1
	ORDER BY id;`

	cars := make([]models.Car, 0)
	var err error
	if search == "" {
		err = sqlxutils.Select(ctx, r.db, &cars, listCmd)
	} else {
		err = sqlxutils.Select(ctx, r.db, &cars, searchCmd, "%"+search+"%")
	}
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return cars, nil
}

func (r *SqlxRepository) ListOngoingRentals(ctx context.Context, carIDs []int) ([]models.Rental, error) {
	const listOngoingCmd = `SELECT ` + rentalColumns + `
	FROM orders
	WHERE car_id = ANY($1) AND status = $2;`

	rentals := make([]models.Rental, 0)
	err := sqlxutils.Select(ctx, r.db, &rentals, listOngoingCmd, pq.Array(carIDs), models.RentalOngoing)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return rentals, nil
}

func (r *SqlxRepository) GetCar(ctx context.Context, id int) (models.Car, error) {
	const getCmd = `SELECT ` + carColumns + ` FROM cars WHERE id = $1;`

	var car models.Car
	err := sqlxutils.Get(ctx, r.db, &car, getCmd, id)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, pkgErrors.ErrCarNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Car{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return car, nil
}

func (r *SqlxRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	const createCmd = `
	INSERT INTO cars (brand, model, plate_number, rental_rate, image)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + carColumns + `;`

	var created models.Car
	err := sqlxutils.Get(ctx, r.db, &created, createCmd, car.Brand, car.Model, car.PlateNumber, car.RentalRate, car.Image)
	if err != nil {
		return models.Car{}, r.writeError(err)
	}

	return created, nil
}

func (r *SqlxRepository) UpdateCar(ctx context.Context, car models.Car) (models.Car, error) {
	const updateCmd = `
	UPDATE cars
	SET brand = $1, model = $2, plate_number = $3, rental_rate = $4, image = $5, updated_at = now()
	WHERE id = $6
	RETURNING ` + carColumns + `;`

	var updated models.Car
	err := sqlxutils.Get(ctx, r.db, &updated, updateCmd,
		car.Brand, car.Model, car.PlateNumber, car.RentalRate, car.Image, car.ID)
	if err != nil {
		return models.Car{}, r.writeError(err)
	}

	return updated, nil
}

func (r *SqlxRepository) DeleteCar(ctx context.Context, id int) error {
	const deleteCmd = `DELETE FROM cars WHERE id = $1;`

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
		return pkgErrors.ErrCarNotFound
	}

	return nil
}

func (r *SqlxRepository) writeError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return pkgErrors.ErrCarNotFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return pkgErrors.ErrPlateAlreadyExists
	}

	r.logger.Error(err.Error())
	return errors.Wrap(pkgErrors.ErrDb, err.Error())
}
