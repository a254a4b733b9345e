package models

import "time"

type RentalStatus string

const (
	RentalOngoing   RentalStatus = "ongoing"
	RentalCompleted RentalStatus = "completed"
)

// Rental is a car lent to a renter for a date window. Completion fields stay
// nil until the car is returned.
type Rental struct {
	ID              int          `json:"id" db:"id"`
	UserID          *int         `json:"user_id" db:"user_id"`
	CarID           *int         `json:"car_id" db:"car_id"`
	StartDate       Date         `json:"start_date" db:"start_date"`
	EndDate         Date         `json:"end_date" db:"end_date"`
	FixedRentalRate *int64       `json:"fixed_rental_rate" db:"fixed_rental_rate"`
	ReturnDate      *Date        `json:"return_date" db:"return_date"`
	TotalDays       *int         `json:"total_days" db:"total_days"`
	TotalPrice      *int64       `json:"total_price" db:"total_price"`
	Status          RentalStatus `json:"status" db:"status"`
	CreatedAt       time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at" db:"updated_at"`
}

func (r Rental) Window() Window {
	return Window{Start: r.StartDate, End: r.EndDate}
}

func (r Rental) Ongoing() bool {
	return r.Status == RentalOngoing
}

// RentalHistoryItem is a rental joined with the car and customer it refers to.
type RentalHistoryItem struct {
	Rental
	Brand        *string `json:"brand" db:"brand"`
	Model        *string `json:"model" db:"model"`
	CustomerName *string `json:"name" db:"name"`
}

// AvailabilityRule reports whether an existing ongoing rental blocks the
// requested window.
type AvailabilityRule func(existing, requested Window) bool

// ContainedIn blocks the request only when the existing window lies entirely
// inside it. Partial overlaps are accepted.
func ContainedIn(existing, requested Window) bool {
	return !existing.Start.Before(requested.Start.Time) && !existing.End.After(requested.End.Time)
}

// Overlaps blocks the request whenever both windows share at least one day.
func Overlaps(existing, requested Window) bool {
	return !existing.Start.After(requested.End.Time) && !existing.End.Before(requested.Start.Time)
}
