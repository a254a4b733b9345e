package usecase

import "github.com/SlavaShagalov/car-rental-orders/internal/models"

// TotalDays counts calendar days from start to returned inclusively, so a
// same-day return is billed as one day. A return dated before the start is
// counted by distance.
func TotalDays(start, returned models.Date) int {
	days := start.DaysUntil(returned)
	if days < 0 {
		days = -days
	}
	return days + 1
}

func TotalPrice(days int, rate int64) int64 {
	return int64(days) * rate
}
