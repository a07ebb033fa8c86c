package queries

import (
	"context"
	"log/slog"

	"shipment/internal/pkg/errs"
	"shipment/internal/pkg/metrics"

	"gorm.io/gorm"
)

// OrderDetailsCache is a read-through cache keyed by order number. Entries are
// dropped when the order's status changes.
type OrderDetailsCache interface {
	// Get reports found=false on a miss. generation identifies the order's
	// cache state at lookup time and is handed back to Set.
	Get(ctx context.Context, number string) (details OrderDetails, generation int64, found bool, err error)
	// Set stores details only if the order has not changed since the Get that
	// returned generation.
	Set(ctx context.Context, details OrderDetails, generation int64) error
}

// GetOrderDetailsQueryHandler serves order details from the cache when it can
// and from the orders table otherwise. Cache failures are logged and never
// fail the query; a failed lookup also skips the fill.
type GetOrderDetailsQueryHandler struct {
	db     *gorm.DB
	cache  OrderDetailsCache
	logger *slog.Logger
}

// NewGetOrderDetailsQueryHandler accepts a nil cache, in which case every
// lookup goes to the database.
func NewGetOrderDetailsQueryHandler(db *gorm.DB, cache OrderDetailsCache, logger *slog.Logger) GetOrderDetailsQueryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return GetOrderDetailsQueryHandler{
		db:     db,
		cache:  cache,
		logger: logger.With("component", "GetOrderDetailsQueryHandler"),
	}
}

func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var (
		fill       bool
		generation int64
	)
	if h.cache != nil {
		details, gen, found, err := h.cache.Get(ctx, query.Number())
		switch {
		case err != nil:
			metrics.OrderCacheLookupsTotal.WithLabelValues("error").Inc()
			h.logger.WarnContext(ctx, "order cache lookup failed", "order_number", query.Number(), "error", err)
		case found:
			metrics.OrderCacheLookupsTotal.WithLabelValues("hit").Inc()
			return details, nil
		default:
			metrics.OrderCacheLookupsTotal.WithLabelValues("miss").Inc()
			fill, generation = true, gen
		}
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE order_number = ?
	`, query.Number()).Rows()
	if err != nil {
		return OrderDetails{}, err
	}

	found, err := scanOrderDetails(rows)
	if err != nil {
		return OrderDetails{}, err
	}
	if len(found) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.Number())
	}

	details := found[0]
	if fill {
		if err = h.cache.Set(ctx, details, generation); err != nil {
			h.logger.WarnContext(ctx, "failed to cache order details", "order_number", details.Number, "error", err)
		}
	}
	return details, nil
}
