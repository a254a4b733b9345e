package delivery_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SlavaShagalov/car-rental-orders/internal/cars/delivery"
	"github.com/SlavaShagalov/car-rental-orders/internal/cars/mocks"
	"github.com/SlavaShagalov/car-rental-orders/internal/cars/usecase"
	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	"github.com/SlavaShagalov/car-rental-orders/internal/pkg/app"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

const jwtSecret = "test-secret"

var (
	admin    = &models.Renter{ID: 1, Role: models.RoleAdmin}
	customer = &models.Renter{ID: 3, Role: models.RoleCustomer}
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T) (*app.FiberApp, *mocks.MockUseCase) {
	ctrl := gomock.NewController(t)
	useCase := mocks.NewMockUseCase(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	server := app.NewFiberApp(app.WebConfig{}, app.NewAuth(jwtSecret, logger), logger, delivery.New(useCase, logger))
	return server, useCase
}

func do(t *testing.T, server *app.FiberApp, method, target, body string, renter *models.Renter) (int, envelope) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if renter != nil {
		token, err := app.SignToken(jwtSecret, *renter, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := server.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestListCars(t *testing.T) {
	t.Run("public without filters", func(t *testing.T) {
		server, useCase := newServer(t)
		today := models.DateOf(time.Now())
		useCase.EXPECT().List(gomock.Any(), usecase.ListParams{
			Search: "toyota",
			Window: models.Window{Start: today, End: today},
		}).Return([]models.Car{{ID: 1, Brand: "Toyota"}}, nil)

		status, body := do(t, server, http.MethodGet, "/cars?search=toyota", "", nil)
		require.Equal(t, http.StatusOK, status)

		var cars []models.Car
		require.NoError(t, json.Unmarshal(body.Data, &cars))
		assert.Len(t, cars, 1)
	})

	t.Run("available in window", func(t *testing.T) {
		server, useCase := newServer(t)
		useCase.EXPECT().List(gomock.Any(), usecase.ListParams{
			Availability: usecase.OnlyAvailable,
			Window: models.Window{
				Start: models.NewDate(2024, time.January, 1),
				End:   models.NewDate(2024, time.January, 10),
			},
		}).Return([]models.Car{}, nil)

		status, _ := do(t, server, http.MethodGet, "/cars?available=true&start_date=2024-01-01&end_date=2024-01-10", "", nil)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("conflicting filters", func(t *testing.T) {
		server, _ := newServer(t)

		status, body := do(t, server, http.MethodGet, "/cars?available=true&unavailable=true", "", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "The available and unavailable filters cannot be combined.", body.Message)
	})

	t.Run("invalid date", func(t *testing.T) {
		server, _ := newServer(t)

		status, body := do(t, server, http.MethodGet, "/cars?start_date=01-01-2024", "", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "The start date is not a valid date.", body.Message)
	})
}

func TestGetCar(t *testing.T) {
	server, useCase := newServer(t)
	useCase.EXPECT().Get(gomock.Any(), 9).Return(models.Car{}, pkgErrors.ErrCarNotFound)

	status, body := do(t, server, http.MethodGet, "/cars/9", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "car does not exist", body.Message)
}

func TestAdminCars(t *testing.T) {
	const carBody = `{"brand":"Toyota","model":"Avanza","plate_number":"B 1 AA","rental_rate":100000}`

	t.Run("requires authentication", func(t *testing.T) {
		server, _ := newServer(t)

		status, _ := do(t, server, http.MethodPost, "/admin/cars", carBody, nil)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("requires admin role", func(t *testing.T) {
		server, _ := newServer(t)

		status, body := do(t, server, http.MethodPost, "/admin/cars", carBody, customer)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "insufficient permissions", body.Message)
	})

	t.Run("create", func(t *testing.T) {
		server, useCase := newServer(t)
		useCase.EXPECT().Create(gomock.Any(), usecase.CarParams{
			Brand: "Toyota", Model: "Avanza", PlateNumber: "B 1 AA", RentalRate: 100000,
		}).Return(models.Car{ID: 1, Brand: "Toyota", Model: "Avanza", PlateNumber: "B 1 AA", RentalRate: 100000}, nil)

		status, body := do(t, server, http.MethodPost, "/admin/cars", carBody, admin)
		require.Equal(t, http.StatusCreated, status)

		var car models.Car
		require.NoError(t, json.Unmarshal(body.Data, &car))
		assert.Equal(t, 1, car.ID)
		assert.Nil(t, car.Image)
	})

	t.Run("create validation", func(t *testing.T) {
		server, _ := newServer(t)

		status, body := do(t, server, http.MethodPost, "/admin/cars", `{"brand":"Toyota","rental_rate":-5}`, admin)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t,
			"The model field is required. The plate number field is required. The rental rate must be greater than 0.",
			body.Message)
	})

	t.Run("duplicate plate", func(t *testing.T) {
		server, useCase := newServer(t)
		useCase.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.Car{}, pkgErrors.ErrPlateAlreadyExists)

		status, body := do(t, server, http.MethodPost, "/admin/cars", carBody, admin)
		assert.Equal(t, http.StatusConflict, status)
		assert.Equal(t, "plate number already registered", body.Message)
	})

	t.Run("update", func(t *testing.T) {
		server, useCase := newServer(t)
		useCase.EXPECT().Update(gomock.Any(), 4, gomock.Any()).Return(models.Car{ID: 4}, nil)

		status, _ := do(t, server, http.MethodPost, "/admin/cars/4", carBody, admin)
		assert.Equal(t, http.StatusOK, status)
	})

	t.Run("delete", func(t *testing.T) {
		server, useCase := newServer(t)
		useCase.EXPECT().Delete(gomock.Any(), 4).Return(nil)

		status, body := do(t, server, http.MethodDelete, "/admin/cars/4", "", admin)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "success", body.Status)
		assert.Contains(t, []string{"", "null"}, string(body.Data))
	})
}
