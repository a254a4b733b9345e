package delivery

import "github.com/SlavaShagalov/car-rental-orders/internal/cars/usecase"

type CarDTO struct {
	Brand       string  `json:"brand" validate:"required,max=255"`
	Model       string  `json:"model" validate:"required,max=255"`
	PlateNumber string  `json:"plate_number" validate:"required,max=255"`
	RentalRate  int64   `json:"rental_rate" validate:"required,gt=0"`
	Image       *string `json:"image" validate:"omitempty,max=255"`
}

func (dto CarDTO) params() usecase.CarParams {
	return usecase.CarParams{
		Brand:       dto.Brand,
		Model:       dto.Model,
		PlateNumber: dto.PlateNumber,
		RentalRate:  dto.RentalRate,
		Image:       dto.Image,
	}
}

type ListQuery struct {
	Search      string `query:"search" json:"search"`
	Available   bool   `query:"available" json:"available"`
	Unavailable bool   `query:"unavailable" json:"unavailable"`
	StartDate   string `query:"start_date" json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string `query:"end_date" json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}
