package usecase

import (
	"context"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
)

//go:generate mockgen -source=contract.go -destination=../mocks/usecase.go -package=mocks

type StartRentalParams struct {
	RenterID  int
	CarID     int
	StartDate models.Date
	EndDate   models.Date
}

type ReturnCarParams struct {
	RenterID    int
	PlateNumber string
}

// Scope restricts the rentals a history query may see. A nil RenterID means
// every renter.
type Scope struct {
	RenterID *int
}

func AllRentals() Scope {
	return Scope{}
}

func RentalsOf(renterID int) Scope {
	return Scope{RenterID: &renterID}
}

type HistoryParams struct {
	Scope        Scope
	Search       string
	SortField    string
	SortOrder    string
	ItemsPerPage int
	Page         int
}

type HistoryPage struct {
	Items        []models.RentalHistoryItem `json:"items"`
	Total        int                        `json:"total"`
	Page         int                        `json:"page"`
	ItemsPerPage int                        `json:"itemsPerPage"`
}

// Tx is the set of store operations available inside one transaction.
type Tx interface {
	// GetCarForUpdate loads the car and locks its row until the transaction ends.
	GetCarForUpdate(ctx context.Context, carID int) (models.Car, error)
	ListOngoingRentals(ctx context.Context, carID int) ([]models.Rental, error)
	// FindOngoingRental loads and locks the renter's ongoing rental of the car.
	FindOngoingRental(ctx context.Context, renterID, carID int) (models.Rental, error)
	// SaveRental inserts a rental with a zero ID and updates it otherwise.
	SaveRental(ctx context.Context, rental models.Rental) (models.Rental, error)
}

type Repository interface {
	HealthCheck(ctx context.Context) error

	Atomic(ctx context.Context, fn func(tx Tx) error) error
	FindCarByPlate(ctx context.Context, plateNumber string) (models.Car, error)
	ListOverdueRentals(ctx context.Context, today models.Date) ([]models.Rental, error)
	History(ctx context.Context, params HistoryParams) ([]models.RentalHistoryItem, int, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event models.RentalEvent) error
}
