package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"github.com/SlavaShagalov/car-rental-orders/internal/models"
	pkgErrors "github.com/SlavaShagalov/car-rental-orders/internal/pkg/errors"
)

type ctxKey string

const renterKey ctxKey = "renter"

// NewAuth creates a middleware that verifies the bearer token and stores the
// caller identity in the request context.
func NewAuth(jwtSecret string, logger *slog.Logger) fiber.Handler {
	keyFunc := func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	}

	return func(ctx *fiber.Ctx) error {
		header := ctx.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return pkgErrors.ErrUnauthorized
		}

		renter, err := extractRenter(strings.TrimPrefix(header, "Bearer "), keyFunc)
		if err != nil {
			logger.Debug("reject token", slog.String("error", err.Error()))
			return pkgErrors.ErrUnauthorized
		}

		ctx.SetUserContext(WithRenter(ctx.UserContext(), renter))

		return ctx.Next()
	}
}

// AdminOnly rejects callers without the admin role. It must run after NewAuth.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		renter, ok := RenterFrom(ctx.UserContext())
		if !ok {
			return pkgErrors.ErrUnauthorized
		}
		if !renter.IsAdmin() {
			return pkgErrors.ErrForbidden
		}
		return ctx.Next()
	}
}

func WithRenter(ctx context.Context, renter models.Renter) context.Context {
	return context.WithValue(ctx, renterKey, renter)
}

func RenterFrom(ctx context.Context) (models.Renter, bool) {
	renter, ok := ctx.Value(renterKey).(models.Renter)
	return renter, ok
}

func extractRenter(token string, keyFunc jwt.Keyfunc) (models.Renter, error) {
	parsedToken, err := jwt.Parse(token, keyFunc)
	if err != nil {
		return models.Renter{}, errors.Wrap(err, "parse jwt")
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return models.Renter{}, errors.New("invalid type of token claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return models.Renter{}, errors.New("missing 'sub' in claims")
	}

	role, _ := claims["role"].(string)
	if role == "" {
		role = string(models.RoleCustomer)
	}

	return models.Renter{ID: int(sub), Role: models.Role(role)}, nil
}

// SignToken issues an HS256 token for renter. Token issuance belongs to the
// identity provider; this is used by tooling and tests.
func SignToken(jwtSecret string, renter models.Renter, claims jwt.MapClaims) (string, error) {
	mapClaims := jwt.MapClaims{
		"sub":  renter.ID,
		"role": string(renter.Role),
	}
	for key, value := range claims {
		mapClaims[key] = value
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims).SignedString([]byte(jwtSecret))
}
