package boundary

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"shipment/internal/core/application/usecases/commands"
	"shipment/internal/core/ports"
	"shipment/internal/pkg/metrics"
)

type (
	PlaceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.OrderView, error)
	}
	ApplyTransitionHandler interface {
		Handle(ctx context.Context, cmd commands.ApplyTransitionCommand) (commands.OrderView, error)
	}
	RequestRefundHandler interface {
		Handle(ctx context.Context, cmd commands.RequestRefundCommand) (commands.RefundOutcome, error)
	}
	ApproveRefundHandler interface {
		Handle(ctx context.Context, cmd commands.ApproveRefundCommand) (commands.RefundOutcome, error)
	}
	RejectRefundHandler interface {
		Handle(ctx context.Context, cmd commands.RejectRefundCommand) (commands.RefundOutcome, error)
	}
)

// Audited method names. They match the operation ids of the HTTP API.
const (
	MethodPlaceOrder      = "placeOrder"
	MethodApplyTransition = "applyTransition"
	MethodRequestRefund   = "requestRefund"
	MethodApproveRefund   = "approveRefund"
	MethodRejectRefund    = "rejectRefund"
)

// IsAction reports whether method names one of the audited actions.
func IsAction(method string) bool {
	switch method {
	case MethodPlaceOrder, MethodApplyTransition, MethodRequestRefund, MethodApproveRefund, MethodRejectRefund:
		return true
	default:
		return false
	}
}

// Handlers groups the write-side handlers behind the boundary.
type Handlers struct {
	PlaceOrder      PlaceOrderHandler
	ApplyTransition ApplyTransitionHandler
	RequestRefund   RequestRefundHandler
	ApproveRefund   ApproveRefundHandler
	RejectRefund    RejectRefundHandler
}

// Actions is the write surface of the core. No method returns an error:
// failures come back as a Result carrying their kind.
type Actions struct {
	handlers Handlers
	audit    ports.AuditLog
	logger   *slog.Logger
	now      func() time.Time
}

func NewActions(handlers Handlers, audit ports.AuditLog, logger *slog.Logger) *Actions {
	if logger == nil {
		logger = slog.Default()
	}
	return &Actions{
		handlers: handlers,
		audit:    audit,
		logger:   logger.With("component", "Actions"),
		now:      time.Now,
	}
}

func (a *Actions) PlaceOrder(ctx context.Context, in PlaceOrderInput) Result {
	return a.run(ctx, MethodPlaceOrder, in.Caller, in, func() Result {
		cmd, err := in.command()
		if err != nil {
			return Fail(err)
		}
		view, err := a.handlers.PlaceOrder.Handle(ctx, cmd)
		if err != nil {
			return Fail(err)
		}
		return Ok(view)
	})
}

func (a *Actions) ApplyTransition(ctx context.Context, in ApplyTransitionInput) Result {
	return a.run(ctx, MethodApplyTransition, in.Caller, in, func() Result {
		cmd, err := in.command()
		if err != nil {
			return Fail(err)
		}
		view, err := a.handlers.ApplyTransition.Handle(ctx, cmd)
		if err != nil {
			return Fail(err)
		}
		return Ok(view)
	})
}

func (a *Actions) RequestRefund(ctx context.Context, in RequestRefundInput) Result {
	return a.run(ctx, MethodRequestRefund, in.Caller, in, func() Result {
		cmd, err := in.command()
		if err != nil {
			return Fail(err)
		}
		outcome, err := a.handlers.RequestRefund.Handle(ctx, cmd)
		if err != nil {
			return Fail(err)
		}
		return OkRefund(outcome)
	})
}

func (a *Actions) ApproveRefund(ctx context.Context, in DecideRefundInput) Result {
	return a.run(ctx, MethodApproveRefund, in.Caller, in, func() Result {
		id, by, err := in.parse()
		if err != nil {
			return Fail(err)
		}
		cmd, err := commands.NewApproveRefundCommand(id, by)
		if err != nil {
			return Fail(err)
		}
		outcome, err := a.handlers.ApproveRefund.Handle(ctx, cmd)
		if err != nil {
			return Fail(err)
		}
		return OkRefund(outcome)
	})
}

func (a *Actions) RejectRefund(ctx context.Context, in DecideRefundInput) Result {
	return a.run(ctx, MethodRejectRefund, in.Caller, in, func() Result {
		id, by, err := in.parse()
		if err != nil {
			return Fail(err)
		}
		cmd, err := commands.NewRejectRefundCommand(id, by)
		if err != nil {
			return Fail(err)
		}
		outcome, err := a.handlers.RejectRefund.Handle(ctx, cmd)
		if err != nil {
			return Fail(err)
		}
		return OkRefund(outcome)
	})
}

// Refuse records a call to method that failed before it reached the action,
// such as a body that could not be decoded, and returns the failed Result.
func (a *Actions) Refuse(ctx context.Context, method string, caller Caller, input any, err error) Result {
	return a.run(ctx, method, caller, input, func() Result {
		return Fail(err)
	})
}

// run times the action, logs upstream failures and records the call in the
// audit log. Audit failures are logged and otherwise ignored.
func (a *Actions) run(ctx context.Context, method string, caller Caller, input any, action func() Result) Result {
	started := a.now()
	result := action()
	metrics.ActionDuration.WithLabelValues(method).Observe(a.now().Sub(started).Seconds())
	metrics.ActionsTotal.WithLabelValues(method, result.Outcome()).Inc()

	if result.Kind == UpstreamFailure {
		a.logger.ErrorContext(ctx, "action failed", "method", method, "actor", caller.ID, "error", result.Err())
	}

	if a.audit == nil {
		return result
	}
	request, err := json.Marshal(input)
	if err != nil {
		a.logger.WarnContext(ctx, "failed to encode audit request", "method", method, "error", err)
	}
	response, err := json.Marshal(result)
	if err != nil {
		a.logger.WarnContext(ctx, "failed to encode audit response", "method", method, "error", err)
	}
	if err = a.audit.Record(ctx, ports.AuditEntry{
		Method:    method,
		ActorID:   caller.ID,
		ActorRole: caller.Role,
		Request:   request,
		Response:  response,
		Outcome:   result.Outcome(),
		At:        started,
	}); err != nil {
		a.logger.WarnContext(ctx, "failed to record audit entry", "method", method, "error", err)
	}
	return result
}
