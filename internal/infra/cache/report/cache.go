package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

const keyPrefix = "dogplanner:report:occupancy"

// Cache кэш отчётов по занятости в Redis.
// Ключ строится из организации и окна отчёта.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewCache создает кэш отчётов с заданным временем жизни записи
func NewCache(client *redis.Client, ttl time.Duration, logger Logger) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает отчёт из кэша или ErrCacheMiss
func (c *Cache) Get(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, error) {
	raw, err := c.client.Get(ctx, key(orgID, start, end)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - org_id=%d: %v", ErrCache, orgID, err)
	}

	var cached cachedReport
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("%w: Get - decode: %v", ErrCodec, err)
	}

	return cached.toDomain(), nil
}

// Set сохраняет отчёт в кэш
func (c *Cache) Set(ctx context.Context, start, end types.Date, stats *domain.ReportStats) error {
	raw, err := json.Marshal(fromDomainReport(stats))
	if err != nil {
		return fmt.Errorf("%w: Set - encode: %v", ErrCodec, err)
	}

	if err := c.client.Set(ctx, key(stats.OrgID, start, end), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - org_id=%d: %v", ErrCache, stats.OrgID, err)
	}

	return nil
}

// InvalidateOrg удаляет все закэшированные отчёты организации
func (c *Cache) InvalidateOrg(ctx context.Context, orgID int64) error {
	pattern := fmt.Sprintf("%s:%d:*", keyPrefix, orgID)

	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: InvalidateOrg - scan org_id=%d: %v", ErrCache, orgID, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: InvalidateOrg - delete org_id=%d: %v", ErrCache, orgID, err)
	}

	c.logger.Warn("InvalidateOrg: dropped %d cached reports for org_id=%d", len(keys), orgID)
	return nil
}

func key(orgID int64, start, end types.Date) string {
	return fmt.Sprintf("%s:%d:%s:%s", keyPrefix, orgID, start, end)
}
