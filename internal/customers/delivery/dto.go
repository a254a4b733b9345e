package delivery

import "github.com/SlavaShagalov/car-rental-orders/internal/customers/usecase"

type ProfileDTO struct {
	Name          string `json:"name" validate:"required,max=255"`
	Address       string `json:"address" validate:"required,max=255"`
	PhoneNumber   string `json:"phone_number" validate:"required,max=15"`
	LicenseNumber string `json:"license_number" validate:"required,max=12"`
}

func (dto ProfileDTO) params() usecase.ProfileParams {
	return usecase.ProfileParams{
		Name:          dto.Name,
		Address:       dto.Address,
		PhoneNumber:   dto.PhoneNumber,
		LicenseNumber: dto.LicenseNumber,
	}
}
