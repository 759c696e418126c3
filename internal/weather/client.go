package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// BackoffConfig controls exponential backoff behaviour for transport-level
// failures. The gateway's retry-once-on-empty policy is separate: an empty
// 200 response is not a transport failure.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

var (
	errRateLimited  = errors.New("rate limited")
	errServerError  = errors.New("server error")
	errUnexpected   = errors.New("unexpected status code")
	errCircuitOpen  = errors.New("circuit breaker open")
	errNoHTTPClient = errors.New("http client not configured")
)

// Client is the resilient HTTP client shared by the gateway's queries. It
// layers outbound rate limiting, a circuit breaker, and bounded exponential
// backoff over the provider API.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	circuit    *gobreaker.CircuitBreaker
	backoff    BackoffConfig
}

// NewClient builds a Client around httpClient. rps bounds the sustained
// outbound request rate; burst the momentary one.
func NewClient(httpClient *http.Client, rps float64, burst int) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weather-provider",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		circuit:    cb,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
	}
}

// GetJSON fetches url and decodes the response body into out.
func (c *Client) GetJSON(ctx context.Context, url string, out any) error {
	if c.httpClient == nil {
		return errNoHTTPClient
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait canceled: %w", err)
	}

	var attempt int
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		result, err := c.circuit.Execute(func() (interface{}, error) {
			resp, execErr := c.httpClient.Do(req)
			if execErr != nil {
				return nil, execErr
			}

			if resp.StatusCode == http.StatusTooManyRequests {
				resp.Body.Close()
				return nil, errRateLimited
			}
			if resp.StatusCode >= 500 {
				resp.Body.Close()
				return nil, errServerError
			}
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				resp.Body.Close()
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}

			return resp, nil
		})

		if err == nil {
			resp := result.(*http.Response)
			defer resp.Body.Close()
			if decErr := json.NewDecoder(resp.Body).Decode(out); decErr != nil {
				return fmt.Errorf("decode provider response: %w", decErr)
			}
			return nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		if attempt >= c.backoff.MaxRetries {
			return err
		}

		delay := c.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if c.backoff.MaxInterval > 0 && delay > c.backoff.MaxInterval {
			delay = c.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		attempt++
	}
}
