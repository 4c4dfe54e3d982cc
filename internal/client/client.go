package client

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// newHTTPClient builds a resty client with a per-request timeout. retryCount > 0 retries
// transport errors and 5xx responses; callers with non-idempotent bodies pass 0.
func newHTTPClient(timeout time.Duration, retryCount int) *resty.Client {
	c := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if retryCount > 0 {
		c.SetRetryCount(retryCount).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= 500
			})
	}
	return c
}
