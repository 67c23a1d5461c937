package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/mlb-stats-service/internal/logging"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
)

// Response is one decoded upstream body. URL is the final URL after redirects.
type Response struct {
	Kind Kind
	URL  string
	Body json.RawMessage
}

// Result pairs a response with its per-request error.
type Result struct {
	Response
	Err error
}

// FetcherConfig controls fan-out behaviour.
type FetcherConfig struct {
	HTTPClient        *http.Client
	MaxConcurrency    int
	RequestsPerSecond float64
	TraceURLs         bool
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
}

// Fetcher issues a bundle of GETs concurrently over one shared client.
type Fetcher struct {
	client   httpDoer
	limiter  *rate.Limiter
	limit    int
	trace    bool
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewFetcher constructs a Fetcher.
func NewFetcher(cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		client:   resolveHTTPClient(cfg.HTTPClient),
		limiter:  resolveLimiter(cfg.RequestsPerSecond),
		limit:    resolveConcurrency(cfg.MaxConcurrency),
		trace:    cfg.TraceURLs,
		logger:   cfg.Logger,
		recorder: cfg.Metrics,
		now:      time.Now,
	}
}

// Fetch issues every request and waits for all of them. Responses come back
// in request order. The first failure cancels the requests still in flight,
// and the returned error joins every per-request failure.
func (f *Fetcher) Fetch(ctx context.Context, reqs []Request) ([]Response, error) {
	out := make([]Response, len(reqs))
	errs := make([]error, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			resp, err := f.fetchOne(gctx, r)
			if err != nil {
				errs[i] = err
				return err
			}
			out[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err == nil {
		return out, nil
	}

	return nil, joinFailures(ctx, errs)
}

// FetchEach issues every request and returns one Result per request, in
// request order. A failed request does not cancel its siblings.
func (f *Fetcher) FetchEach(ctx context.Context, reqs []Request) []Result {
	out := make([]Result, len(reqs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.limit)
	for i, r := range reqs {
		i, r := i, r
		g.Go(func() error {
			resp, err := f.fetchOne(gctx, r)
			if err != nil {
				resp = Response{Kind: r.Kind, URL: r.URL}
			}
			out[i] = Result{Response: resp, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// joinFailures drops the cancellations Fetch caused itself unless the caller's
// context was cancelled too.
func joinFailures(ctx context.Context, errs []error) error {
	callerDone := ctx.Err() != nil
	var kept []error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if !callerDone && errors.Is(err, context.Canceled) {
			continue
		}
		kept = append(kept, err)
	}
	return errors.Join(kept...)
}

func (f *Fetcher) fetchOne(ctx context.Context, r Request) (Response, error) {
	endpoint := r.Kind.String()

	if f.limiter != nil {
		waitStart := f.now()
		if err := f.limiter.Wait(ctx); err != nil {
			return Response{}, &providers.TransportError{URL: r.URL, Err: err}
		}
		f.recorder.RecordThrottle(endpoint, f.now().Sub(waitStart))
	}

	if f.trace {
		providers.LogWithProvider(ctx, f.logger, slog.LevelInfo, providerName, "statsapi request",
			slog.String(logging.FieldEndpoint, endpoint),
			slog.String(logging.FieldURL, r.URL),
		)
	}

	start := f.now()
	resp, err := f.do(ctx, r)
	elapsed := f.now().Sub(start)
	f.recorder.RecordFetch(endpoint, elapsed, err)

	if f.trace {
		args := []any{
			slog.String(logging.FieldEndpoint, endpoint),
			slog.String(logging.FieldURL, resp.URL),
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
		}
		providers.LogWithProvider(ctx, f.logger, slog.LevelInfo, providerName, "statsapi response", args...)
	}
	return resp, err
}

func (f *Fetcher) do(ctx context.Context, r Request) (Response, error) {
	out := Response{Kind: r.Kind, URL: r.URL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return out, &providers.TransportError{URL: r.URL, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return out, &providers.TransportError{URL: r.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.Request != nil && resp.Request.URL != nil {
		out.URL = resp.Request.URL.String()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return out, &providers.StatusError{
			URL:        out.URL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if ctx.Err() != nil {
			return out, &providers.TransportError{URL: out.URL, Err: ctx.Err()}
		}
		return out, &providers.DecodeError{URL: out.URL, Err: err}
	}
	out.Body = body
	return out, nil
}
