package statsapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
	"github.com/preston-bernstein/mlb-stats-service/internal/timeutil"
)

var _ providers.PageProvider = (*Client)(nil)

// Config controls how the client reaches the Stats API and shapes its output.
type Config struct {
	BaseURL           string
	HTTPClient        *http.Client
	Timezone          string
	MaxConcurrency    int
	RequestsPerSecond float64
	TraceURLs         bool
	KeepOriginalKeys  bool
	Reference         *reference.Tables
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
}

// Client builds pages from the MLB Stats API. Every call is one fresh fan-out;
// nothing is cached between calls.
type Client struct {
	urls         URLBuilder
	fetcher      *Fetcher
	loc          *time.Location
	ref          *reference.Tables
	keepOriginal bool
	logger       *slog.Logger
	now          func() time.Time
}

// NewClient constructs a Stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	ref := cfg.Reference
	if ref == nil {
		ref = reference.Default()
	}
	return &Client{
		urls: URLBuilder{BaseURL: normalizeBaseURL(cfg.BaseURL)},
		fetcher: NewFetcher(FetcherConfig{
			HTTPClient:        cfg.HTTPClient,
			MaxConcurrency:    cfg.MaxConcurrency,
			RequestsPerSecond: cfg.RequestsPerSecond,
			TraceURLs:         cfg.TraceURLs,
			Logger:            cfg.Logger,
			Metrics:           cfg.Metrics,
		}),
		loc:          resolveLocation(cfg.Timezone),
		ref:          ref,
		keepOriginal: cfg.KeepOriginalKeys,
		logger:       cfg.Logger,
		now:          time.Now,
	}
}

// Schedule fetches the games selected by q. An empty query means today.
func (c *Client) Schedule(ctx context.Context, q domain.ScheduleQuery) (*table.Table, error) {
	resp, err := c.fetchSingle(ctx, c.urls.Schedule(c.scheduleQuery(q)))
	if err != nil {
		return nil, fmt.Errorf("statsapi: schedule: %w", err)
	}
	out, err := ParseSchedule(resp.Body, c.loc, c.ref)
	if err != nil {
		return nil, fmt.Errorf("statsapi: schedule: %w", &providers.DecodeError{URL: resp.URL, Err: err})
	}
	return out, nil
}

// ScheduleURL returns the schedule URL without fetching it.
func (c *Client) ScheduleURL(q domain.ScheduleQuery) string {
	return c.urls.Schedule(c.scheduleQuery(q)).URL
}

// SeasonStandings fetches regular-season standings. A zero season means the
// current one.
func (c *Client) SeasonStandings(ctx context.Context, season int) (*table.Table, error) {
	resp, err := c.fetchSingle(ctx, c.urls.Standings(c.season(season)))
	if err != nil {
		return nil, fmt.Errorf("statsapi: standings: %w", err)
	}
	out, err := ParseStandings(resp.Body, c.ref)
	if err != nil {
		return nil, fmt.Errorf("statsapi: standings: %w", &providers.DecodeError{URL: resp.URL, Err: err})
	}
	return out, nil
}

// StandingsURL returns the standings URL without fetching it.
func (c *Client) StandingsURL(season int) string {
	return c.urls.Standings(c.season(season)).URL
}

// LeagueStats fetches league-wide player stats for a season.
func (c *Client) LeagueStats(ctx context.Context, season int) (domain.StatGroupSet, error) {
	resp, err := c.fetchSingle(ctx, c.urls.LeagueStats(c.season(season)))
	if err != nil {
		return domain.StatGroupSet{}, fmt.Errorf("statsapi: league stats: %w", err)
	}
	buckets, err := ParseStats(KindLeagueStats, resp.Body, c.statsOptions(0))
	if err != nil {
		return domain.StatGroupSet{}, fmt.Errorf("statsapi: league stats: %w", &providers.DecodeError{URL: resp.URL, Err: err})
	}
	return c.statGroupSet(buckets), nil
}

// LeagueStatsURL returns the league stats URL without fetching it.
func (c *Client) LeagueStatsURL(season int) string {
	return c.urls.LeagueStats(c.season(season)).URL
}

// TeamPageURLs returns the team page bundle without fetching it.
func (c *Client) TeamPageURLs(teamID int, opts domain.TeamPageOptions) []string {
	date, season := c.teamPageScope(opts)
	reqs := c.urls.TeamBundle(teamID, date, season)
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.URL
	}
	return out
}

func (c *Client) fetchSingle(ctx context.Context, r Request) (Response, error) {
	resps, err := c.fetcher.Fetch(ctx, []Request{r})
	if err != nil {
		return Response{}, err
	}
	return resps[0], nil
}

func (c *Client) today() domain.MlbDate {
	return domain.NewMlbDate(timeutil.Today(c.now(), c.loc))
}

func (c *Client) season(season int) int {
	if season > 0 {
		return season
	}
	return timeutil.CurrentSeason(c.today().Time())
}

func (c *Client) scheduleQuery(q domain.ScheduleQuery) domain.ScheduleQuery {
	if q.Date.IsZero() && q.StartDate.IsZero() && q.EndDate.IsZero() && q.Season == 0 {
		q.Date = c.today()
	}
	return q
}

func (c *Client) teamPageScope(opts domain.TeamPageOptions) (domain.MlbDate, int) {
	date := opts.Date
	if date.IsZero() {
		date = c.today()
	}
	season := opts.Season
	if season <= 0 {
		season = timeutil.CurrentSeason(date.Time())
	}
	return date, season
}

func (c *Client) statsOptions(teamID int) StatsOptions {
	return StatsOptions{TeamID: teamID, KeepOriginalKeys: c.keepOriginal, Reference: c.ref}
}

func (c *Client) statGroupSet(buckets map[domain.Bucket]*table.Table) domain.StatGroupSet {
	return domain.NewStatGroupSet(buckets, c.ref.StatRenames, c.keepOriginal)
}
