package http

import (
	"context"
	"net/http"

	_ "shipment/internal/adapters/in/http/docs" // registers the swagger spec

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	JWTSecret []byte
	// Failures records action calls rejected before reaching the boundary:
	// schema violations and recovered panics. Nil disables that.
	Failures FailureRecorder
}

// NewEcho builds the HTTP server: API routes behind identity and OpenAPI
// validation, plus /health, /metrics and /swagger.
func NewEcho(ctx context.Context, si ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc, cfg.Failures)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: recordPanic(cfg.Failures),
	}))
	e.Use(Identity(IdentityConfig{Secret: cfg.JWTSecret, Skipper: APIOnly}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlersWithBaseURL(e, si, "")
	return e, nil
}

// recordPanic logs a recovered panic and, for action routes, audits it as an
// upstream failure. The error goes on to ErrorHandler.
func recordPanic(failures FailureRecorder) middleware.LogErrorFunc {
	return func(c echo.Context, err error, stack []byte) error {
		c.Logger().Errorf("[PANIC RECOVER] %v %s", err, stack)
		if op, ok := operationFrom(c); ok && failures != nil {
			failures.Refuse(c.Request().Context(), op, callerFrom(c), map[string]string{"path": c.Request().URL.Path}, err)
		}
		return err
	}
}
