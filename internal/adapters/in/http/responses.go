package http

import (
	"errors"
	"net/http"

	"shipment/internal/core/application/boundary"

	"github.com/labstack/echo/v4"
)

// StatusCode maps a result to its HTTP status. StoreConflict is reported like
// InvalidTransition: the caller lost a race and should re-read the order.
func StatusCode(r boundary.Result, success int) int {
	if r.Success {
		return success
	}
	switch r.Kind {
	case boundary.NotFound:
		return http.StatusNotFound
	case boundary.Forbidden:
		return http.StatusForbidden
	case boundary.InvalidTransition,
		boundary.PreconditionFailed,
		boundary.StoreConflict,
		boundary.InvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respond(c echo.Context, r boundary.Result, success int) error {
	return c.JSON(StatusCode(r, success), r)
}

// respondQuery writes the projection on success or a failed Result.
func respondQuery(c echo.Context, data any, err error) error {
	if err != nil {
		return respond(c, boundary.Fail(err), http.StatusOK)
	}
	return c.JSON(http.StatusOK, data)
}

// ErrorHandler renders echo errors (unknown routes, bad path parameters,
// missing tokens) in the same shape as failed results.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	} else {
		c.Logger().Error(err)
	}

	var kind boundary.ErrorKind
	switch code {
	case http.StatusBadRequest:
		kind = boundary.InvalidInput
	case http.StatusNotFound:
		kind = boundary.NotFound
	case http.StatusForbidden:
		kind = boundary.Forbidden
	case http.StatusUnauthorized:
	default:
		if code >= http.StatusInternalServerError {
			kind = boundary.UpstreamFailure
		} else {
			kind = boundary.InvalidInput
		}
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, boundary.Result{Kind: kind, Message: message})
}
