package handlers

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limiterhttp "github.com/ulule/limiter/v3/drivers/middleware/stdlib"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const trackLimiterPrefix = "s2c:track"

// NewRateLimiter limits requests per client IP. rate uses the "<limit>-<period>"
// format, e.g. "60-M". Counters live in redis when a client is given so that
// every instance shares them.
func NewRateLimiter(rate string, client *redis.Client) (Middleware, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	var store limiter.Store
	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: trackLimiterPrefix})
		if err != nil {
			return nil, fmt.Errorf("unable to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          trackLimiterPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	return limiterhttp.NewMiddleware(limiter.New(store, parsed, limiter.WithTrustForwardHeader(true))).Handler, nil
}
