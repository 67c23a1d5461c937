package pages

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/logging"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// Page names used for metrics and logs.
const (
	PageHome      = "home"
	PageTeam      = "team"
	PageSchedule  = "schedule"
	PageStandings = "standings"
	PageStats     = "stats"
)

// Service builds pages through a page provider and records how long each took.
type Service struct {
	provider providers.PageProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	now      func() time.Time
}

// NewService constructs a Service. logger and recorder may be nil.
func NewService(provider providers.PageProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// Home builds the scoreboard page.
func (s *Service) Home(ctx context.Context) (domain.HomePageContent, error) {
	return build(ctx, s, PageHome, nil, func() (domain.HomePageContent, error) {
		return s.provider.HomePage(ctx)
	})
}

// Team builds the dossier for teamID.
func (s *Service) Team(ctx context.Context, teamID int, opts domain.TeamPageOptions) (domain.TeamPageContent, error) {
	attrs := []any{slog.Int(logging.FieldTeamID, teamID)}
	if opts.Season > 0 {
		attrs = append(attrs, slog.Int(logging.FieldSeason, opts.Season))
	}
	if !opts.Date.IsZero() {
		attrs = append(attrs, slog.String(logging.FieldDate, opts.Date.String()))
	}
	page, err := build(ctx, s, PageTeam, attrs, func() (domain.TeamPageContent, error) {
		return s.provider.TeamPage(ctx, teamID, opts)
	})
	if err == nil && len(page.Warnings) > 0 {
		logging.Warn(logging.FromContext(ctx, s.logger), "team page built with missing parts",
			append(attrs, slog.Int(logging.FieldCount, len(page.Warnings)))...,
		)
	}
	return page, err
}

// Schedule fetches the games selected by q.
func (s *Service) Schedule(ctx context.Context, q domain.ScheduleQuery) (*table.Table, error) {
	var attrs []any
	if !q.Date.IsZero() {
		attrs = append(attrs, slog.String(logging.FieldDate, q.Date.String()))
	}
	return build(ctx, s, PageSchedule, attrs, func() (*table.Table, error) {
		return s.provider.Schedule(ctx, q)
	})
}

// Standings fetches regular-season standings. A zero season means the current one.
func (s *Service) Standings(ctx context.Context, season int) (*table.Table, error) {
	return build(ctx, s, PageStandings, seasonAttrs(season), func() (*table.Table, error) {
		return s.provider.SeasonStandings(ctx, season)
	})
}

// Stats fetches league-wide player stats. A zero season means the current one.
func (s *Service) Stats(ctx context.Context, season int) (domain.StatGroupSet, error) {
	return build(ctx, s, PageStats, seasonAttrs(season), func() (domain.StatGroupSet, error) {
		return s.provider.LeagueStats(ctx, season)
	})
}

func build[T any](ctx context.Context, s *Service, page string, attrs []any, fn func() (T, error)) (T, error) {
	start := s.now()
	out, err := fn()
	duration := s.now().Sub(start)
	s.metrics.RecordPage(page, duration, err)

	logger := logging.FromContext(ctx, s.logger)
	attrs = append(attrs,
		slog.String(logging.FieldPage, page),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		logging.Error(logger, "page build failed", err, attrs...)
		return out, err
	}
	logging.Info(logger, "page built", attrs...)
	return out, nil
}

func seasonAttrs(season int) []any {
	if season <= 0 {
		return nil
	}
	return []any{slog.Int(logging.FieldSeason, season)}
}
