package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Gyan0205/hospital-management/cmd/internal/domain/entity"
	"github.com/redis/go-redis/v9"
)

// AvailabilityCache keeps each doctor's display-ordered availability listing
// in redis. Booking never reads from it.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	return &AvailabilityCache{client: client, ttl: ttl}
}

// Connect parses a redis:// URL and checks the server is reachable.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func Key(doctorID int) string {
	return fmt.Sprintf("availability:doctor:%d", doctorID)
}

// Get reports a miss as (nil, false, nil).
func (a *AvailabilityCache) Get(ctx context.Context, doctorID int) ([]*entity.DoctorAvailability, bool, error) {
	raw, err := a.client.Get(ctx, Key(doctorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var rows []*entity.DoctorAvailability
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (a *AvailabilityCache) Set(ctx context.Context, doctorID int, rows []*entity.DoctorAvailability) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return a.client.Set(ctx, Key(doctorID), raw, a.ttl).Err()
}

func (a *AvailabilityCache) Invalidate(ctx context.Context, doctorID int) error {
	return a.client.Del(ctx, Key(doctorID)).Err()
}
