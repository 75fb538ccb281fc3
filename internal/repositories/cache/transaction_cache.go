package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	portsrepo "github.com/hanjoon-dev/account_manager_app/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// detailTTL bounds staleness if an invalidation is lost.
const detailTTL = 10 * time.Minute

// RedisTransactionCache fronts transaction detail lookups with Redis.
type RedisTransactionCache struct {
	client *redis.Client
}

func NewRedisTransactionCache(client *redis.Client) *RedisTransactionCache {
	return &RedisTransactionCache{client: client}
}

var _ portsrepo.TransactionCache = (*RedisTransactionCache)(nil)

func detailKey(transactionID string) string {
	return "txn:detail:" + transactionID
}

// GetTransactionDetail returns the cached detail, or (nil, nil) on a miss.
func (c *RedisTransactionCache) GetTransactionDetail(ctx context.Context, transactionID string) (*portsrepo.TransactionDetail, error) {
	payload, err := c.client.Get(ctx, detailKey(transactionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read transaction cache for %s: %w", transactionID, err)
	}

	var detail portsrepo.TransactionDetail
	if err := json.Unmarshal(payload, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode cached transaction %s: %w", transactionID, err)
	}
	return &detail, nil
}

// SetTransactionDetail stores the detail with a TTL.
func (c *RedisTransactionCache) SetTransactionDetail(ctx context.Context, detail portsrepo.TransactionDetail) error {
	payload, err := json.Marshal(detail)
	if err != nil {
		return fmt.Errorf("failed to encode transaction %s for cache: %w", detail.TransactionID, err)
	}
	if err := c.client.Set(ctx, detailKey(detail.TransactionID), payload, detailTTL).Err(); err != nil {
		return fmt.Errorf("failed to write transaction cache for %s: %w", detail.TransactionID, err)
	}
	return nil
}

// InvalidateTransactionDetail drops the cached detail after a status change.
func (c *RedisTransactionCache) InvalidateTransactionDetail(ctx context.Context, transactionID string) error {
	if err := c.client.Del(ctx, detailKey(transactionID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate transaction cache for %s: %w", transactionID, err)
	}
	return nil
}

// NoopTransactionCache is used when no Redis address is configured; every
// lookup misses and writes are discarded.
type NoopTransactionCache struct{}

func NewNoopTransactionCache() NoopTransactionCache {
	return NoopTransactionCache{}
}

var _ portsrepo.TransactionCache = NoopTransactionCache{}

func (NoopTransactionCache) GetTransactionDetail(ctx context.Context, transactionID string) (*portsrepo.TransactionDetail, error) {
	return nil, nil
}

func (NoopTransactionCache) SetTransactionDetail(ctx context.Context, detail portsrepo.TransactionDetail) error {
	return nil
}

func (NoopTransactionCache) InvalidateTransactionDetail(ctx context.Context, transactionID string) error {
	return nil
}
