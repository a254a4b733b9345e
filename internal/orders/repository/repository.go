package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/orders/usecase"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
	"github.com/SlavaShagalov/car-rental-orders/pkg/sqlxutils"
)

const rentalColumns = `orders.id, orders.user_id, orders.car_id, orders.start_date, orders.end_date,
	orders.fixed_rental_rate, orders.return_date, orders.total_days, orders.total_price, orders.status,
	orders.created_at, orders.updated_at`

const carColumns = `id, brand, model, plate_number, rental_rate, image, created_at, updated_at`

var sortColumns = map[string]string{
	"brand": "cars.brand",
	"model": "cars.model",
	"name":  "customers.name",
}

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

func (r *SqlxRepository) Atomic(ctx context.Context, fn func(tx usecase.Tx) error) error {
	return sqlxutils.RunTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&txRepository{tx: tx, logger: r.logger})
	})
}

func (r *SqlxRepository) FindCarByPlate(ctx context.Context, plateNumber string) (models.Car, error) {
	const findByPlateCmd = `SELECT ` + carColumns + ` FROM cars WHERE plate_number = $1;`

	var car models.Car
	err := sqlxutils.Get(ctx, r.db, &car, findByPlateCmd, plateNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, pkgErrors.ErrCarPlateNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Car{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return car, nil
}

func (r *SqlxRepository) ListOverdueRentals(ctx context.Context, today models.Date) ([]models.Rental, error) {
	const listOverdueCmd = `SELECT ` + rentalColumns + `
	FROM orders
	WHERE orders.status = $1 AND orders.end_date < $2
	ORDER BY orders.end_date, orders.id;`

	rentals := make([]models.Rental, 0)
	err := sqlxutils.Select(ctx, r.db, &rentals, listOverdueCmd, models.RentalOngoing, today)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return rentals, nil
}

func (r *SqlxRepository) History(ctx context.Context, params usecase.HistoryParams) ([]models.RentalHistoryItem, int, error) {
	from := `
	FROM orders
	LEFT JOIN cars ON orders.car_id = cars.id
	LEFT JOIN customers ON orders.user_id = customers.user_id`

	var conditions []string
	var args []any

	if params.Scope.RenterID != nil {
		args = append(args, *params.Scope.RenterID)
		conditions = append(conditions, fmt.Sprintf("orders.user_id = $%d", len(args)))
	}

	if params.Search != "" {
		args = append(args, "%"+params.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(cars.brand ILIKE $%d OR cars.model ILIKE $%d OR CAST(orders.total_price AS TEXT) LIKE $%d)", n, n, n))
	}

	where := ""
	if len(conditions) > 0 {
		where = "\n\tWHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	err := sqlxutils.Get(ctx, r.db, &total, `SELECT count(*)`+from+where+`;`, args...)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	order := "orders.id"
	if params.SortField != "" {
		column, ok := sortColumns[params.SortField]
		if !ok {
			column = "orders." + params.SortField
		}
		order = column + " " + strings.ToUpper(params.SortOrder) + ", orders.id"
	}

	args = append(args, params.ItemsPerPage, (params.Page-1)*params.ItemsPerPage)
	query := `SELECT ` + rentalColumns + `, cars.brand, cars.model, customers.name` + from + where +
		fmt.Sprintf("\n\tORDER BY %s\n\tLIMIT $%d OFFSET $%d;", order, len(args)-1, len(args))

	items := make([]models.RentalHistoryItem, 0)
	err = sqlxutils.Select(ctx, r.db, &items, query, args...)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, 0, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return items, total, nil
}

type txRepository struct {
	tx     *sqlx.Tx
	logger *slog.Logger
}

func (r *txRepository) GetCarForUpdate(ctx context.Context, carID int) (models.Car, error) {
	const getForUpdateCmd = `SELECT ` + carColumns + ` FROM cars WHERE id = $1 FOR UPDATE;`

	var car models.Car
	err := sqlxutils.Get(ctx, r.tx, &car, getForUpdateCmd, carID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Car{}, pkgErrors.ErrCarNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Car{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return car, nil
}

func (r *txRepository) ListOngoingRentals(ctx context.Context, carID int) ([]models.Rental, error) {
	const listOngoingCmd = `SELECT ` + rentalColumns + `
	FROM orders
	WHERE orders.car_id = $1 AND orders.status = $2
	ORDER BY orders.start_date, orders.id;`

	rentals := make([]models.Rental, 0)
	err := sqlxutils.Select(ctx, r.tx, &rentals, listOngoingCmd, carID, models.RentalOngoing)
	if err != nil {
		r.logger.Error(err.Error())
		return nil, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return rentals, nil
}

func (r *txRepository) FindOngoingRental(ctx context.Context, renterID, carID int) (models.Rental, error) {
	const findOngoingCmd = `SELECT ` + rentalColumns + `
	FROM orders
	WHERE orders.user_id = $1 AND orders.car_id = $2 AND orders.status = $3
	ORDER BY orders.id
	LIMIT 1
	FOR UPDATE;`

	var rental models.Rental
	err := sqlxutils.Get(ctx, r.tx, &rental, findOngoingCmd, renterID, carID, models.RentalOngoing)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rental{}, pkgErrors.ErrRentalNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Rental{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return rental, nil
}

func (r *txRepository) SaveRental(ctx context.Context, rental models.Rental) (models.Rental, error) {
	const insertCmd = `
	INSERT INTO orders (user_id, car_id, start_date, end_date, fixed_rental_rate, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + rentalColumns + `;`

	const updateCmd = `
	UPDATE orders
	SET user_id = $1, car_id = $2, start_date = $3, end_date = $4, fixed_rental_rate = $5,
	    return_date = $6, total_days = $7, total_price = $8, status = $9, updated_at = now()
	WHERE id = $10
	RETURNING ` + rentalColumns + `;`

	var saved models.Rental
	var err error
	if rental.ID == 0 {
		err = sqlxutils.Get(ctx, r.tx, &saved, insertCmd,
			rental.UserID, rental.CarID, rental.StartDate, rental.EndDate, rental.FixedRentalRate, rental.Status)
	} else {
		err = sqlxutils.Get(ctx, r.tx, &saved, updateCmd,
			rental.UserID, rental.CarID, rental.StartDate, rental.EndDate, rental.FixedRentalRate,
			rental.ReturnDate, rental.TotalDays, rental.TotalPrice, rental.Status, rental.ID)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return models.Rental{}, pkgErrors.ErrRentalNotFound
	} else if err != nil {
		r.logger.Error(err.Error())
		return models.Rental{}, errors.Wrap(pkgErrors.ErrDb, err.Error())
	}

	return saved, nil
}
