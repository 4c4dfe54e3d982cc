package broker

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/setsunaxe7/pokemart-fulfillment/config"
)

func withDefaults(retryConfig config.RetryConfig) config.RetryConfig {
	if retryConfig.MaxAttempts <= 0 {
		retryConfig.MaxAttempts = 5
	}
	if retryConfig.BaseDelay <= 0 {
		retryConfig.BaseDelay = 100 * time.Millisecond
	}
	if retryConfig.MaxDelay <= 0 {
		retryConfig.MaxDelay = 10 * time.Second
	}
	return retryConfig
}

// calculateBackoff computes the delay for the next retry attempt using exponential backoff.
// The delay is 2^attempt * BaseDelay, capped at MaxDelay, with +/-15% jitter when enabled.
func calculateBackoff(retryConfig config.RetryConfig, attempt int) time.Duration {
	delay := time.Duration(math.Pow(2, float64(attempt))) * retryConfig.BaseDelay

	if delay > retryConfig.MaxDelay {
		delay = retryConfig.MaxDelay
	}

	if retryConfig.Jitter {
		jitter := time.Duration(rand.Float64() * float64(delay) * 0.3)
		delay = delay + jitter - time.Duration(float64(delay)*0.15)
	}

	return delay
}
