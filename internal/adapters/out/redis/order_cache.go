// Package redis caches order details projections and drops them when an
// order's status changes.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"shipment/internal/core/application/usecases/queries"
	"shipment/internal/core/domain/model/order"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix        = "shipment:order:"
	generationPrefix = "shipment:order:gen:"
	DefaultTTL       = 10 * time.Minute
)

// setIfGeneration writes the entry only while the order's generation still
// matches the one the reader saw before going to the database.
var setIfGeneration = redis.NewScript(`
local current = redis.call('GET', KEYS[2]) or '0'
if current ~= ARGV[1] then
	return 0
end
redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
return 1
`)

// OrderDetailsCache implements queries.OrderDetailsCache. It is also a
// ports.StatusChangePublisher: publishing a change evicts the order and bumps
// its generation, so a fill that raced the change is refused.
type OrderDetailsCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewOrderDetailsCache(client redis.Cmdable, ttl time.Duration) *OrderDetailsCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &OrderDetailsCache{client: client, ttl: ttl}
}

func key(number string) string {
	return keyPrefix + number
}

func generationKey(number string) string {
	return generationPrefix + number
}

func (c *OrderDetailsCache) Get(ctx context.Context, number string) (queries.OrderDetails, int64, bool, error) {
	values, err := c.client.MGet(ctx, key(number), generationKey(number)).Result()
	if err != nil {
		return queries.OrderDetails{}, 0, false, err
	}

	var generation int64
	if raw, ok := values[1].(string); ok {
		if generation, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return queries.OrderDetails{}, 0, false, fmt.Errorf("decode generation of order %s: %w", number, err)
		}
	}

	raw, ok := values[0].(string)
	if !ok {
		return queries.OrderDetails{}, generation, false, nil
	}
	var details queries.OrderDetails
	if err = json.Unmarshal([]byte(raw), &details); err != nil {
		return queries.OrderDetails{}, generation, false, fmt.Errorf("decode cached order %s: %w", number, err)
	}
	return details, generation, true, nil
}

// Set stores details unless the order changed after the Get that returned
// generation. A refused write is not an error.
func (c *OrderDetailsCache) Set(ctx context.Context, details queries.OrderDetails, generation int64) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return setIfGeneration.Run(ctx, c.client,
		[]string{key(details.Number), generationKey(details.Number)},
		strconv.FormatInt(generation, 10), raw, c.ttl.Milliseconds(),
	).Err()
}

// Invalidate evicts the orders and bumps their generations. The generation
// key lives for one TTL, which outlasts any read in flight.
func (c *OrderDetailsCache) Invalidate(ctx context.Context, numbers ...string) error {
	if len(numbers) == 0 {
		return nil
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, n := range numbers {
			pipe.Incr(ctx, generationKey(n))
			pipe.PExpire(ctx, generationKey(n), c.ttl)
			pipe.Del(ctx, key(n))
		}
		return nil
	})
	return err
}
func (c *OrderDetailsCache) Publish(ctx context.Context, changes ...order.StatusChange) error {
	numbers := make([]string, 0, len(changes))
	seen := make(map[string]struct{}, len(changes))
	for _, ch := range changes {
		if _, ok := seen[ch.OrderNumber]; ok || ch.OrderNumber == "" {
			continue
		}
		seen[ch.OrderNumber] = struct{}{}
		numbers = append(numbers, ch.OrderNumber)
	}
	return c.Invalidate(ctx, numbers...)
}
