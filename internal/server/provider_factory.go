package server

import (
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/preston-bernstein/mlb-stats-service/internal/config"
	"github.com/preston-bernstein/mlb-stats-service/internal/logging"
	"github.com/preston-bernstein/mlb-stats-service/internal/metrics"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers/statsapi"
	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
)

// providerFactory assembles the Stats API client with its shared HTTP client
// and reference tables.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (*statsapi.Client, *http.Client) {
	httpClient := &http.Client{Timeout: cfg.Statsapi.HTTPTimeout}
	client := statsapi.NewClient(statsapi.Config{
		BaseURL:           cfg.Statsapi.BaseURL,
		HTTPClient:        httpClient,
		Timezone:          cfg.Statsapi.Timezone,
		MaxConcurrency:    cfg.Statsapi.MaxConcurrency,
		RequestsPerSecond: cfg.Statsapi.RequestsPerSecond,
		TraceURLs:         cfg.Statsapi.TraceURLs,
		KeepOriginalKeys:  cfg.Statsapi.KeepOriginalKeys,
		Reference:         loadReference(cfg.Reference, f.logger),
		Logger:            f.logger,
		Metrics:           f.metrics,
	})
	return client, httpClient
}

// loadReference applies the optional CSV overrides to the built-in tables.
// A file that cannot be read is logged and the built-in table kept.
func loadReference(cfg config.ReferenceConfig, logger *slog.Logger) *reference.Tables {
	tables := reference.Default()
	if cfg.TeamsCSV != "" {
		teams, err := readCSVFile(cfg.TeamsCSV, reference.LoadTeamsCSV)
		if err != nil {
			logging.Warn(logger, "team reference override ignored", "path", cfg.TeamsCSV, "error", err)
		} else {
			tables = tables.WithTeams(teams)
			logging.Info(logger, "team reference loaded", "path", cfg.TeamsCSV, slog.Int(logging.FieldCount, len(teams)))
		}
	}
	if cfg.LeaguesCSV != "" {
		leagues, err := readCSVFile(cfg.LeaguesCSV, reference.LoadLeaguesCSV)
		if err != nil {
			logging.Warn(logger, "league reference override ignored", "path", cfg.LeaguesCSV, "error", err)
		} else {
			tables = tables.WithLeagues(leagues)
			logging.Info(logger, "league reference loaded", "path", cfg.LeaguesCSV, slog.Int(logging.FieldCount, len(leagues)))
		}
	}
	return tables
}

func readCSVFile[T any](path string, load func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()
	return load(f)
}
