package statsapi

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

func resolveLocation(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	if loc := providers.ResolveTimezone(name); loc != nil {
		return loc
	}
	return time.UTC
}

// resolveLimiter returns nil when pacing is disabled.
func resolveLimiter(perSecond float64) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

func resolveConcurrency(max int) int {
	if max <= 0 {
		return -1
	}
	return max
}
