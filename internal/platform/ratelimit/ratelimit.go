// Package ratelimit builds the request limiter used by the HTTP server.
package ratelimit

import (
	"fmt"

	"github.com/SscSPs/patient_decisions_app/internal/platform/redis"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

const keyPrefix = "pd_ratelimit"

// New parses formatted (for example "300-M") and returns a limiter backed by
// Redis when client is non-nil, otherwise by process memory.
func New(formatted string, client *redis.Client) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	options := limiter.StoreOptions{
		Prefix:          keyPrefix,
		CleanUpInterval: limiter.DefaultCleanUpInterval,
		MaxRetry:        limiter.DefaultMaxRetry,
	}
	if client == nil {
		return limiter.New(memory.NewStoreWithOptions(options), rate), nil
	}

	store, err := redisstore.NewStoreWithOptions(client.Client, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}
	return limiter.New(store, rate), nil
}
