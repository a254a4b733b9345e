package models

import "time"

type Car struct {
	ID          int       `json:"id" db:"id"`
	Brand       string    `json:"brand" db:"brand"`
	Model       string    `json:"model" db:"model"`
	PlateNumber string    `json:"plate_number" db:"plate_number"`
	RentalRate  int64     `json:"rental_rate" db:"rental_rate"`
	Image       *string   `json:"image" db:"image"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
