package http

import (
	"errors"
	"net/http"
	"strings"

	"shipment/internal/core/application/boundary"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerKey = "caller"

// Claims are the bearer token claims the service reads: the account id in
// sub and the role the account acts in.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IdentityConfig configures the Identity middleware.
type IdentityConfig struct {
	Secret []byte
	// Skipper defines a function to skip the middleware.
	Skipper func(c echo.Context) bool
}

// APIOnly skips every path outside the versioned API.
func APIOnly(c echo.Context) bool {
	return !strings.HasPrefix(c.Request().URL.Path, "/api/")
}

// Identity decodes the HS256 bearer token and stores the caller on the
// context. Tokens are issued elsewhere; this only checks the signature and
// expiry.
func Identity(cfg IdentityConfig) echo.MiddlewareFunc {
	if cfg.Skipper == nil {
		cfg.Skipper = APIOnly
	}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	keyFunc := func(*jwt.Token) (any, error) { return cfg.Secret, nil }

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
			if !ok || raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims := &Claims{}
			if _, err := parser.ParseWithClaims(raw, claims, keyFunc); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").SetInternal(err)
			}
			if claims.Subject == "" || claims.Role == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token").
					SetInternal(errors.New("token has no sub or role claim"))
			}

			c.Set(callerKey, boundary.Caller{ID: claims.Subject, Role: claims.Role})
			return next(c)
		}
	}
}

func callerFrom(c echo.Context) boundary.Caller {
	caller, _ := c.Get(callerKey).(boundary.Caller)
	return caller
}
