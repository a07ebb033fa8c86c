// Package http is the REST surface of the service.
package http

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"

	"shipment/internal/core/application/boundary"
	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/kernel"
	"shipment/internal/core/domain/model/order"
	"shipment/internal/core/domain/model/refund"
	"shipment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	OrderDetailsReader interface {
		Handle(ctx context.Context, query queries.GetOrderDetailsQuery) (queries.OrderDetails, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersByStatusQuery) ([]queries.OrderDetails, error)
	}
	StatusHistoryReader interface {
		Handle(ctx context.Context, query queries.GetStatusHistoryQuery) ([]queries.StatusHistoryEntry, error)
	}
	DeliveryProofReader interface {
		Handle(ctx context.Context, query queries.GetDeliveryProofQuery) (queries.DeliveryProof, error)
	}
	RiderHistoryReader interface {
		Handle(ctx context.Context, query queries.GetRiderHistoryQuery) ([]queries.OrderDetails, error)
	}
	RefundRequestLister interface {
		Handle(ctx context.Context, query queries.ListRefundRequestsQuery) ([]queries.RefundRequestDetails, error)
	}
)

// Queries groups the read-side handlers served over HTTP.
type Queries struct {
	OrderDetails  OrderDetailsReader
	ListOrders    OrderLister
	StatusHistory StatusHistoryReader
	DeliveryProof DeliveryProofReader
	RiderHistory  RiderHistoryReader
	Refunds       RefundRequestLister
}

// Server implements ServerInterface. Writes go through the action boundary,
// reads straight to the query handlers.
type Server struct {
	actions *boundary.Actions
	queries Queries
}

func NewServer(actions *boundary.Actions, q Queries) *Server {
	return &Server{actions: actions, queries: q}
}

var _ ServerInterface = (*Server)(nil)

type placeOrderBody struct {
	ProductID     string `json:"product_id"`
	SellerID      string `json:"seller_id"`
	Quantity      int    `json:"quantity"`
	TotalAmount   string `json:"total_amount"`
	PaymentMethod string `json:"payment_method"`
	ShipTo        string `json:"ship_to"`
}

// PlaceOrder godoc
//
//	@Summary	Place an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		body	body		placeOrderBody	true	"Order"
//	@Success	201		{object}	boundary.Result
//	@Failure	400		{object}	boundary.Result
//	@Failure	403		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders [post]
func (s *Server) PlaceOrder(c echo.Context) error {
	var body placeOrderBody
	if err := c.Bind(&body); err != nil {
		return s.refuse(c, boundary.MethodPlaceOrder, body, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	r := s.actions.PlaceOrder(c.Request().Context(), boundary.PlaceOrderInput{
		Caller:        callerFrom(c),
		ProductID:     body.ProductID,
		SellerID:      body.SellerID,
		Quantity:      body.Quantity,
		TotalAmount:   body.TotalAmount,
		PaymentMethod: body.PaymentMethod,
		ShipTo:        body.ShipTo,
	})
	return respond(c, r, http.StatusCreated)
}

type transitionBody struct {
	Action string `json:"action" form:"action"`
}

// ApplyTransition godoc
//
//	@Summary		Apply a lifecycle action to an order
//	@Description	Multipart requests may carry the delivery proof image in the delivery_proof field.
//	@Tags			orders
//	@Accept			json,mpfd
//	@Produce		json
//	@Param			orderId			path		string	true	"Order id"	format(uuid)
//	@Param			action			formData	string	true	"Action"
//	@Param			delivery_proof	formData	file	false	"Delivery proof image"
//	@Success		200				{object}	boundary.Result
//	@Failure		400				{object}	boundary.Result
//	@Failure		403				{object}	boundary.Result
//	@Failure		404				{object}	boundary.Result
//	@Security		BearerAuth
//	@Router			/api/v1/orders/{orderId}/transitions [post]
func (s *Server) ApplyTransition(c echo.Context, orderID openapi_types.UUID) error {
	in := boundary.ApplyTransitionInput{Caller: callerFrom(c), OrderID: orderID.String()}

	var body transitionBody
	if err := c.Bind(&body); err != nil {
		return s.refuse(c, boundary.MethodApplyTransition, in, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	in.Action = body.Action

	proof, closeProof, err := formUpload(c, "delivery_proof")
	if err != nil {
		return s.refuse(c, boundary.MethodApplyTransition, in, err)
	}
	defer closeProof()
	in.Proof = proof

	return respond(c, s.actions.ApplyTransition(c.Request().Context(), in), http.StatusOK)
}

type refundBody struct {
	Reason        string `form:"reason"`
	Solution      string `form:"solution"`
	ReturnMethod  string `form:"return_method"`
	PaymentMethod string `form:"payment_method"`
}

// RequestRefund godoc
//
//	@Summary	Request a refund or replacement for a delivered order
//	@Tags		refunds
//	@Accept		mpfd
//	@Produce	json
//	@Param		orderId			path		string	true	"Order id"	format(uuid)
//	@Param		reason			formData	string	true	"Reason"
//	@Param		solution		formData	string	true	"Refund or Replace"
//	@Param		return_method	formData	string	true	"Pick Up or Drop-off"
//	@Param		payment_method	formData	string	false	"Required unless solution is Replace"
//	@Param		image			formData	file	false	"Photo of the goods"
//	@Success	200				{object}	boundary.Result
//	@Failure	400				{object}	boundary.Result
//	@Failure	403				{object}	boundary.Result
//	@Failure	404				{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders/{orderId}/refund-requests [post]
func (s *Server) RequestRefund(c echo.Context, orderID openapi_types.UUID) error {
	in := boundary.RequestRefundInput{Caller: callerFrom(c), OrderID: orderID.String()}

	var body refundBody
	if err := c.Bind(&body); err != nil {
		return s.refuse(c, boundary.MethodRequestRefund, in, errs.NewValueIsInvalidErrorWithCause("body", err))
	}
	in.Reason = body.Reason
	in.Solution = body.Solution
	in.ReturnMethod = body.ReturnMethod
	in.PaymentMethod = body.PaymentMethod

	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		return s.refuse(c, boundary.MethodRequestRefund, in, err)
	}
	defer closeImage()
	in.Image = image

	return respond(c, s.actions.RequestRefund(c.Request().Context(), in), http.StatusOK)
}

// ApproveRefund godoc
//
//	@Summary	Approve a pending refund request
//	@Tags		refunds
//	@Produce	json
//	@Param		requestId	path		string	true	"Refund request id"	format(uuid)
//	@Success	200			{object}	boundary.Result
//	@Failure	400			{object}	boundary.Result
//	@Failure	403			{object}	boundary.Result
//	@Failure	404			{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/refund-requests/{requestId}/approve [post]
func (s *Server) ApproveRefund(c echo.Context, requestID openapi_types.UUID) error {
	r := s.actions.ApproveRefund(c.Request().Context(), boundary.DecideRefundInput{
		Caller:    callerFrom(c),
		RequestID: requestID.String(),
	})
	return respond(c, r, http.StatusOK)
}

// RejectRefund godoc
//
//	@Summary	Reject a pending refund request
//	@Tags		refunds
//	@Produce	json
//	@Param		requestId	path		string	true	"Refund request id"	format(uuid)
//	@Success	200			{object}	boundary.Result
//	@Failure	400			{object}	boundary.Result
//	@Failure	403			{object}	boundary.Result
//	@Failure	404			{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/refund-requests/{requestId}/reject [post]
func (s *Server) RejectRefund(c echo.Context, requestID openapi_types.UUID) error {
	r := s.actions.RejectRefund(c.Request().Context(), boundary.DecideRefundInput{
		Caller:    callerFrom(c),
		RequestID: requestID.String(),
	})
	return respond(c, r, http.StatusOK)
}

// ListOrders godoc
//
//	@Summary	List the caller's orders in one status
//	@Tags		orders
//	@Produce	json
//	@Param		status	query		string	true	"Status identifier or label"
//	@Success	200		{array}		queries.OrderDetails
//	@Failure	400		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders [get]
func (s *Server) ListOrders(c echo.Context, params ListOrdersParams) error {
	by, err := callerFrom(c).Actor()
	if err != nil {
		return respondQuery(c, nil, err)
	}
	status, err := order.StatusFromString(params.Status)
	if err != nil {
		return respondQuery(c, nil, err)
	}
	query, err := queries.NewListOrdersByStatusQuery(status, by)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	found, err := s.queries.ListOrders.Handle(c.Request().Context(), query)
	return respondQuery(c, found, err)
}

// GetOrderByNumber godoc
//
//	@Summary	Get an order by its order number
//	@Tags		orders
//	@Produce	json
//	@Param		orderNumber	path		string	true	"Order number"
//	@Success	200			{object}	queries.OrderDetails
//	@Failure	404			{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders/by-number/{orderNumber} [get]
func (s *Server) GetOrderByNumber(c echo.Context, orderNumber string) error {
	query, err := queries.NewGetOrderDetailsQuery(orderNumber)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	details, err := s.queries.OrderDetails.Handle(c.Request().Context(), query)
	return respondQuery(c, details, err)
}

// GetStatusHistory godoc
//
//	@Summary	Get the status history of an order, oldest first
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	format(uuid)
//	@Success	200		{array}		queries.StatusHistoryEntry
//	@Failure	404		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders/{orderId}/history [get]
func (s *Server) GetStatusHistory(c echo.Context, orderID openapi_types.UUID) error {
	id, err := kernel.UUIDFromString(orderID.String())
	if err != nil {
		return respondQuery(c, nil, err)
	}
	query, err := queries.NewGetStatusHistoryQuery(id)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	history, err := s.queries.StatusHistory.Handle(c.Request().Context(), query)
	return respondQuery(c, history, err)
}

// GetDeliveryProof godoc
//
//	@Summary	Get a short-lived download link for the delivery proof
//	@Tags		orders
//	@Produce	json
//	@Param		orderId	path		string	true	"Order id"	format(uuid)
//	@Success	200		{object}	queries.DeliveryProof
//	@Failure	403		{object}	boundary.Result
//	@Failure	404		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/orders/{orderId}/delivery-proof [get]
func (s *Server) GetDeliveryProof(c echo.Context, orderID openapi_types.UUID) error {
	by, err := callerFrom(c).Actor()
	if err != nil {
		return respondQuery(c, nil, err)
	}
	id, err := kernel.UUIDFromString(orderID.String())
	if err != nil {
		return respondQuery(c, nil, err)
	}
	query, err := queries.NewGetDeliveryProofQuery(id, by)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	proof, err := s.queries.DeliveryProof.Handle(c.Request().Context(), query)
	return respondQuery(c, proof, err)
}

// ListRefundRequests godoc
//
//	@Summary	List the refund and replace requests visible to the caller, newest first
//	@Tags		refunds
//	@Produce	json
//	@Param		status	query		string	false	"Pending, Approved or Rejected"
//	@Success	200		{array}		queries.RefundRequestDetails
//	@Failure	400		{object}	boundary.Result
//	@Failure	403		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/refund-requests [get]
func (s *Server) ListRefundRequests(c echo.Context, params ListRefundRequestsParams) error {
	by, err := callerFrom(c).Actor()
	if err != nil {
		return respondQuery(c, nil, err)
	}
	status := refund.UnknownStatus
	if params.Status != nil {
		if status, err = refund.StatusFromString(*params.Status); err != nil {
			return respondQuery(c, nil, err)
		}
	}
	query, err := queries.NewListRefundRequestsQuery(status, by)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	found, err := s.queries.Refunds.Handle(c.Request().Context(), query)
	return respondQuery(c, found, err)
}

// GetRiderHistory godoc
//
//	@Summary	List the delivered and cancelled orders of a rider
//	@Tags		riders
//	@Produce	json
//	@Param		riderId	path		string	true	"Rider account id"	format(uuid)
//	@Success	200		{array}		queries.OrderDetails
//	@Failure	403		{object}	boundary.Result
//	@Security	BearerAuth
//	@Router		/api/v1/riders/{riderId}/history [get]
func (s *Server) GetRiderHistory(c echo.Context, riderID openapi_types.UUID) error {
	by, err := callerFrom(c).Actor()
	if err != nil {
		return respondQuery(c, nil, err)
	}
	id, err := kernel.UUIDFromString(riderID.String())
	if err != nil {
		return respondQuery(c, nil, err)
	}
	query, err := queries.NewGetRiderHistoryQuery(id, by)
	if err != nil {
		return respondQuery(c, nil, err)
	}

	found, err := s.queries.RiderHistory.Handle(c.Request().Context(), query)
	return respondQuery(c, found, err)
}

// refuse audits a call that failed before reaching its action and writes the
// failed Result.
func (s *Server) refuse(c echo.Context, method string, input any, err error) error {
	return respond(c, s.actions.Refuse(c.Request().Context(), method, callerFrom(c), input, err), http.StatusOK)
}

// formUpload opens the named multipart file. It returns a nil upload when the
// request is not multipart or the field is absent; a malformed multipart body
// is invalid input.
func formUpload(c echo.Context, field string) (*boundary.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(field)
	switch {
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, noop, nil
	case err != nil:
		return nil, noop, errs.NewValueIsInvalidErrorWithCause(field, err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, noop, err
	}
	return &boundary.Upload{
		Filename:    fh.Filename,
		ContentType: contentType(fh),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, nil
}

func contentType(fh *multipart.FileHeader) string {
	return fh.Header.Get(echo.HeaderContentType)
}
