package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

func TestKey(t *testing.T) {
	if got := Key(42); got != "availability:doctor:42" {
		t.Errorf("unexpected key %q", got)
	}
}

func TestConnect_BadURL(t *testing.T) {
	if _, err := Connect(context.Background(), "not a url"); err == nil {
		t.Error("expected parse error")
	}
}

// A cache pointed at a closed port must surface errors rather than report hits.
func TestAvailabilityCache_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewAvailabilityCache(client, time.Minute)
	ctx := context.Background()

	rows, hit, err := c.Get(ctx, 1)
	if err == nil || hit || rows != nil {
		t.Errorf("expected error and miss, got %v %v %v", rows, hit, err)
	}
	if err := c.Invalidate(ctx, 1); err == nil {
		t.Error("expected invalidate to fail")
	}
}
