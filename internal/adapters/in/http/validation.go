package http

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"shipment/internal/core/application/boundary"
	"shipment/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed openapi.yaml
var openAPISpec []byte

// LoadOpenAPI parses and validates the embedded API description.
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	doc, err := openapi3.NewLoader().LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// FailureRecorder audits calls to an action that fail before the action runs.
// *boundary.Actions implements it.
type FailureRecorder interface {
	Refuse(ctx context.Context, method string, caller boundary.Caller, input any, err error) boundary.Result
}

const operationKey = "operation"

// operationFrom returns the audited action a request is routed to, if any.
func operationFrom(c echo.Context) (string, bool) {
	op, ok := c.Get(operationKey).(string)
	return op, ok
}

// RequestValidator rejects API requests that do not match doc. Multipart
// bodies carry images and are left to the handlers; their parameters are
// still checked. Rejected calls to an action are recorded through failures,
// which may be nil.
func RequestValidator(doc *openapi3.T, failures FailureRecorder) (echo.MiddlewareFunc, error) {
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, err
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if APIOnly(c) {
				return next(c)
			}
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			if errors.Is(err, routers.ErrPathNotFound) || errors.Is(err, routers.ErrMethodNotAllowed) {
				return next(c)
			}
			if err != nil {
				return err
			}
			if op := route.Operation.OperationID; boundary.IsAction(op) {
				c.Set(operationKey, op)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
				Options: &openapi3filter.Options{
					AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
					ExcludeRequestBody: strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm),
					MultiError:         true,
				},
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				err = errs.NewValueIsInvalidErrorWithCause("request", err)
				result := boundary.Fail(err)
				if op, ok := operationFrom(c); ok && failures != nil {
					result = failures.Refuse(req.Context(), op, callerFrom(c), pathParams, err)
				}
				return c.JSON(http.StatusBadRequest, result)
			}
			return next(c)
		}
	}, nil
}
