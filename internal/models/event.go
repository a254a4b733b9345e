package models

import "time"

type RentalEventType string

const (
	EventRentalStarted   RentalEventType = "rental.started"
	EventRentalCompleted RentalEventType = "rental.completed"
	EventRentalOverdue   RentalEventType = "rental.overdue"
)

type RentalEvent struct {
	ID         string          `json:"id" db:"id"`
	Type       RentalEventType `json:"type" db:"type"`
	RentalID   int             `json:"rental_id" db:"rental_id"`
	UserID     *int            `json:"user_id" db:"user_id"`
	CarID      *int            `json:"car_id" db:"car_id"`
	Status     RentalStatus    `json:"status" db:"status"`
	TotalPrice *int64          `json:"total_price" db:"total_price"`
	OccurredAt time.Time       `json:"occurred_at" db:"occurred_at"`
}

func NewRentalEvent(typ RentalEventType, rental Rental, at time.Time) RentalEvent {
	return RentalEvent{
		Type:       typ,
		RentalID:   rental.ID,
		UserID:     rental.UserID,
		CarID:      rental.CarID,
		Status:     rental.Status,
		TotalPrice: rental.TotalPrice,
		OccurredAt: at,
	}
}
