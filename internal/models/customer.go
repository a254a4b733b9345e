package models

import "time"

// Customer is the renter profile attached to a user account.
type Customer struct {
	ID            int       `json:"id" db:"id"`
	UserID        *int      `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	Address       string    `json:"address" db:"address"`
	PhoneNumber   string    `json:"phone_number" db:"phone_number"`
	LicenseNumber string    `json:"license_number" db:"license_number"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
