package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "shipment/internal/adapters/in/http"
	"shipment/internal/core/application/boundary"
	"shipment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"forbidden", errs.NewForbiddenError("Pickup", "not a rider"), http.StatusForbidden},
		{"invalid transition", errs.NewInvalidTransitionError("Pickup", "OrderPlaced"), http.StatusBadRequest},
		{"precondition failed", errs.NewPreconditionFailedError("delivery proof", "is missing"), http.StatusBadRequest},
		{"store conflict", errs.NewConflictError("order", "x"), http.StatusBadRequest},
		{"invalid input", errs.NewValueIsRequiredError("reason"), http.StatusBadRequest},
		{"upstream failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httpin.StatusCode(boundary.Fail(tt.err), http.StatusOK))
		})
	}

	t.Run("success uses the given code", func(t *testing.T) {
		assert.Equal(t, http.StatusCreated, httpin.StatusCode(boundary.Result{Success: true}, http.StatusCreated))
	})
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind boundary.ErrorKind
	}{
		{"unknown route", echo.ErrNotFound, http.StatusNotFound, boundary.NotFound},
		{"bad parameter", echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter orderId"), http.StatusBadRequest, boundary.InvalidInput},
		{"unauthorized", echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token"), http.StatusUnauthorized, boundary.NoError},
		{"method not allowed", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, boundary.InvalidInput},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, boundary.UpstreamFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil), rec)

			httpin.ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			var got boundary.Result
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.Equal(t, tt.wantKind, got.Kind)
			assert.NotEmpty(t, got.Message)
		})
	}
}
