package delivery

import (
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type OrderDTO struct {
	CarID     int    `json:"car_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// dates parses the validated window. 0001-01-01 is the zero Date and is
// rejected as an invalid date rather than read as a missing one.
func (dto OrderDTO) dates() (models.Date, models.Date, error) {
	startDate, _ := models.ParseDate(dto.StartDate)
	endDate, _ := models.ParseDate(dto.EndDate)

	var messages []string
	if startDate.IsZero() {
		messages = append(messages, "The start date is not a valid date.")
	}
	if endDate.IsZero() {
		messages = append(messages, "The end date is not a valid date.")
	}
	if len(messages) > 0 {
		return models.Date{}, models.Date{}, pkgErrors.NewValidationError(messages...)
	}

	return startDate, endDate, nil
}

type ReturnCarDTO struct {
	PlateNumber string `json:"plate_number" validate:"required"`
}

type HistoryQuery struct {
	Search       string `query:"search"`
	SortField    string `query:"sortField"`
	SortOrder    string `query:"sortOrder"`
	ItemsPerPage int    `query:"itemsPerPage"`
	Page         int    `query:"page"`
}
