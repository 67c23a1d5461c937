package handlers

import (
	"context"
	"errors"
	"fmt"
	nethttp "net/http"

	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
)

// statusForError maps a page build failure to the status and message a
// client sees. Upstream details stay in the logs.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, context.Canceled):
		return nethttp.StatusServiceUnavailable, "request canceled"
	case errors.Is(err, context.DeadlineExceeded):
		return nethttp.StatusGatewayTimeout, "upstream timeout"
	}
	if statusErr, ok := providers.AsStatusError(err); ok {
		if statusErr.StatusCode == nethttp.StatusNotFound {
			return nethttp.StatusNotFound, "not found upstream"
		}
		return nethttp.StatusBadGateway, fmt.Sprintf("upstream returned status %d", statusErr.StatusCode)
	}
	if _, ok := providers.AsTransportError(err); ok {
		return nethttp.StatusBadGateway, "upstream unavailable"
	}
	if providers.IsDecodeError(err) {
		return nethttp.StatusBadGateway, "upstream returned malformed data"
	}
	return nethttp.StatusInternalServerError, "internal error"
}
