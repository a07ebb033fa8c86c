package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListOrdersParams defines parameters for ListOrders.
type ListOrdersParams struct {
	Status string `form:"status" json:"status"`
}

// ListRefundRequestsParams defines parameters for ListRefundRequests.
type ListRefundRequestsParams struct {
	Status *string `form:"status,omitempty" json:"status,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (POST /api/v1/orders)
	PlaceOrder(ctx echo.Context) error
	// (GET /api/v1/orders/by-number/{orderNumber})
	GetOrderByNumber(ctx echo.Context, orderNumber string) error
	// (POST /api/v1/orders/{orderId}/transitions)
	ApplyTransition(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /api/v1/orders/{orderId}/history)
	GetStatusHistory(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /api/v1/orders/{orderId}/delivery-proof)
	GetDeliveryProof(ctx echo.Context, orderID openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/refund-requests)
	RequestRefund(ctx echo.Context, orderID openapi_types.UUID) error
	// (GET /api/v1/refund-requests)
	ListRefundRequests(ctx echo.Context, params ListRefundRequestsParams) error
	// (POST /api/v1/refund-requests/{requestId}/approve)
	ApproveRefund(ctx echo.Context, requestID openapi_types.UUID) error
	// (POST /api/v1/refund-requests/{requestId}/reject)
	RejectRefund(ctx echo.Context, requestID openapi_types.UUID) error
	// (GET /api/v1/riders/{riderId}/history)
	GetRiderHistory(ctx echo.Context, riderID openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams
	err := runtime.BindQueryParameter("form", true, true, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) PlaceOrder(ctx echo.Context) error {
	return w.Handler.PlaceOrder(ctx)
}

func (w *ServerInterfaceWrapper) GetOrderByNumber(ctx echo.Context) error {
	var orderNumber string
	err := runtime.BindStyledParameterWithOptions("simple", "orderNumber", ctx.Param("orderNumber"), &orderNumber,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderNumber: %s", err))
	}
	return w.Handler.GetOrderByNumber(ctx, orderNumber)
}

func (w *ServerInterfaceWrapper) ApplyTransition(ctx echo.Context) error {
	id, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ApplyTransition(ctx, id)
}

func (w *ServerInterfaceWrapper) GetStatusHistory(ctx echo.Context) error {
	id, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetStatusHistory(ctx, id)
}

func (w *ServerInterfaceWrapper) GetDeliveryProof(ctx echo.Context) error {
	id, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetDeliveryProof(ctx, id)
}

func (w *ServerInterfaceWrapper) RequestRefund(ctx echo.Context) error {
	id, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.RequestRefund(ctx, id)
}

func (w *ServerInterfaceWrapper) ListRefundRequests(ctx echo.Context) error {
	var params ListRefundRequestsParams
	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}
	return w.Handler.ListRefundRequests(ctx, params)
}

func (w *ServerInterfaceWrapper) ApproveRefund(ctx echo.Context) error {
	id, err := bindUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.ApproveRefund(ctx, id)
}

func (w *ServerInterfaceWrapper) RejectRefund(ctx echo.Context) error {
	id, err := bindUUID(ctx, "requestId")
	if err != nil {
		return err
	}
	return w.Handler.RejectRefund(ctx, id)
}

func (w *ServerInterfaceWrapper) GetRiderHistory(ctx echo.Context) error {
	id, err := bindUUID(ctx, "riderId")
	if err != nil {
		return err
	}
	return w.Handler.GetRiderHistory(ctx, id)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL adds each server route to the router under
// baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	w := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/orders", w.ListOrders)
	router.POST(baseURL+"/api/v1/orders", w.PlaceOrder)
	router.GET(baseURL+"/api/v1/orders/by-number/:orderNumber", w.GetOrderByNumber)
	router.POST(baseURL+"/api/v1/orders/:orderId/transitions", w.ApplyTransition)
	router.GET(baseURL+"/api/v1/orders/:orderId/history", w.GetStatusHistory)
	router.GET(baseURL+"/api/v1/orders/:orderId/delivery-proof", w.GetDeliveryProof)
	router.POST(baseURL+"/api/v1/orders/:orderId/refund-requests", w.RequestRefund)
	router.GET(baseURL+"/api/v1/refund-requests", w.ListRefundRequests)
	router.POST(baseURL+"/api/v1/refund-requests/:requestId/approve", w.ApproveRefund)
	router.POST(baseURL+"/api/v1/refund-requests/:requestId/reject", w.RejectRefund)
	router.GET(baseURL+"/api/v1/riders/:riderId/history", w.GetRiderHistory)
}
