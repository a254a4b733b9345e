package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

const (
	defaultItemsPerPage   = 10
	maxItemsPerPage       = 100
	defaultPublishTimeout = 3 * time.Second
)

var sortFields = map[string]struct{}{
	"id": {}, "user_id": {}, "car_id": {}, "start_date": {}, "end_date": {},
	"fixed_rental_rate": {}, "return_date": {}, "total_days": {}, "total_price": {},
	"status": {}, "created_at": {}, "updated_at": {}, "brand": {}, "model": {}, "name": {},
}

type UseCase struct {
	repo      Repository
	publisher EventPublisher
	logger    *slog.Logger
	blocks    models.AvailabilityRule
	now       func() time.Time

	publishTimeout time.Duration
}

type Option func(u *UseCase)

func WithClock(now func() time.Time) Option {
	return func(u *UseCase) {
		u.now = now
	}
}

// WithAvailabilityRule replaces the rule deciding whether an ongoing rental
// blocks a requested window.
func WithAvailabilityRule(rule models.AvailabilityRule) Option {
	return func(u *UseCase) {
		u.blocks = rule
	}
}

// WithPublishTimeout bounds how long a committed operation waits for its
// lifecycle event to be published.
func WithPublishTimeout(timeout time.Duration) Option {
	return func(u *UseCase) {
		u.publishTimeout = timeout
	}
}

// New creates the reservation engine. publisher may be nil.
func New(repo Repository, publisher EventPublisher, logger *slog.Logger, opts ...Option) *UseCase {
	u := &UseCase{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		blocks:    models.ContainedIn,
		now:       time.Now,

		publishTimeout: defaultPublishTimeout,
	}

	for _, opt := range opts {
		opt(u)
	}

	return u
}

func (u *UseCase) HealthCheck(ctx context.Context) error {
	return u.repo.HealthCheck(ctx)
}

func (u *UseCase) StartRental(ctx context.Context, params StartRentalParams) (models.Rental, error) {
	if err := params.validate(); err != nil {
		return models.Rental{}, err
	}

	requested := models.Window{Start: params.StartDate, End: params.EndDate}

	var rental models.Rental
	err := u.repo.Atomic(ctx, func(tx Tx) error {
		car, err := tx.GetCarForUpdate(ctx, params.CarID)
		if err != nil {
			return err
		}

		ongoing, err := tx.ListOngoingRentals(ctx, car.ID)
		if err != nil {
			return err
		}

		for _, existing := range ongoing {
			if u.blocks(existing.Window(), requested) {
				u.logger.Debug("car is reserved",
					slog.Int("car_id", car.ID),
					slog.Int("rental_id", existing.ID),
					slog.String("requested", requested.Start.String()+".."+requested.End.String()),
				)
				return pkgErrors.ErrCarNotAvailable
			}
		}

		renterID, carID, rate := params.RenterID, car.ID, car.RentalRate
		rental, err = tx.SaveRental(ctx, models.Rental{
			UserID:          &renterID,
			CarID:           &carID,
			StartDate:       params.StartDate,
			EndDate:         params.EndDate,
			FixedRentalRate: &rate,
			Status:          models.RentalOngoing,
		})
		return err
	})
	if err != nil {
		return models.Rental{}, err
	}

	u.publish(ctx, models.EventRentalStarted, rental)

	return rental, nil
}

func (u *UseCase) ReturnCar(ctx context.Context, params ReturnCarParams) (models.Rental, error) {
	params.PlateNumber = strings.TrimSpace(params.PlateNumber)
	if params.PlateNumber == "" {
		return models.Rental{}, pkgErrors.NewValidationError("The plate number field is required.")
	}

	car, err := u.repo.FindCarByPlate(ctx, params.PlateNumber)
	if err != nil {
		return models.Rental{}, err
	}

	var rental models.Rental
	err = u.repo.Atomic(ctx, func(tx Tx) error {
		ongoing, err := tx.FindOngoingRental(ctx, params.RenterID, car.ID)
		if err != nil {
			return err
		}

		var rate int64
		if ongoing.FixedRentalRate != nil {
			rate = *ongoing.FixedRentalRate
		}

		returnDate := models.DateOf(u.now())
		totalDays := TotalDays(ongoing.StartDate, returnDate)
		totalPrice := TotalPrice(totalDays, rate)

		ongoing.ReturnDate = &returnDate
		ongoing.TotalDays = &totalDays
		ongoing.TotalPrice = &totalPrice
		ongoing.Status = models.RentalCompleted

		rental, err = tx.SaveRental(ctx, ongoing)
		return err
	})
	if err != nil {
		return models.Rental{}, err
	}

	u.publish(ctx, models.EventRentalCompleted, rental)

	return rental, nil
}

func (u *UseCase) History(ctx context.Context, params HistoryParams) (HistoryPage, error) {
	if err := params.normalize(); err != nil {
		return HistoryPage{}, err
	}

	items, total, err := u.repo.History(ctx, params)
	if err != nil {
		return HistoryPage{}, err
	}

	return HistoryPage{
		Items:        items,
		Total:        total,
		Page:         params.Page,
		ItemsPerPage: params.ItemsPerPage,
	}, nil
}

// NotifyOverdue publishes an overdue event for every ongoing rental whose end
// date has passed and returns how many were found.
func (u *UseCase) NotifyOverdue(ctx context.Context) (int, error) {
	rentals, err := u.repo.ListOverdueRentals(ctx, models.DateOf(u.now()))
	if err != nil {
		return 0, err
	}

	for _, rental := range rentals {
		u.publish(ctx, models.EventRentalOverdue, rental)
	}

	return len(rentals), nil
}

func (u *UseCase) publish(ctx context.Context, typ models.RentalEventType, rental models.Rental) {
	if u.publisher == nil {
		return
	}

	// the rental is already committed, so the event outlives the request
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.publishTimeout)
	defer cancel()

	err := u.publisher.Publish(ctx, models.NewRentalEvent(typ, rental, u.now()))
	if err != nil {
		u.logger.Error("publish rental event",
			slog.String("type", string(typ)),
			slog.Int("rental_id", rental.ID),
			slog.String("error", err.Error()),
		)
	}
}

func (p StartRentalParams) validate() error {
	var messages []string
	if p.CarID <= 0 {
		messages = append(messages, "The car id field is required.")
	}
	if p.StartDate.IsZero() {
		messages = append(messages, "The start date field is required.")
	}
	if p.EndDate.IsZero() {
		messages = append(messages, "The end date field is required.")
	}

	if len(messages) > 0 {
		return pkgErrors.NewValidationError(messages...)
	}
	return nil
}

func (p *HistoryParams) normalize() error {
	var messages []string

	if p.SortField != "" {
		if _, ok := sortFields[p.SortField]; !ok {
			messages = append(messages, "The selected sort field is invalid.")
		}
	}

	p.SortOrder = strings.ToLower(p.SortOrder)
	switch p.SortOrder {
	case "":
		p.SortOrder = "asc"
	case "asc", "desc":
	default:
		messages = append(messages, "The selected sort order is invalid.")
	}

	if p.ItemsPerPage <= 0 {
		p.ItemsPerPage = defaultItemsPerPage
	} else if p.ItemsPerPage > maxItemsPerPage {
		p.ItemsPerPage = maxItemsPerPage
	}

	if p.Page <= 0 {
		p.Page = 1
	}

	if len(messages) > 0 {
		return pkgErrors.NewValidationError(messages...)
	}
	return nil
}
