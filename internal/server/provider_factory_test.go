package server

import (
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/config"
)

func TestProviderFactoryBuildsClient(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	client, httpClient := factory.build(config.Config{
		Statsapi: config.StatsapiConfig{
			BaseURL:     "https://statsapi.mlb.com/api/v1/",
			Timezone:    "America/Chicago",
			HTTPTimeout: 3 * time.Second,
		},
	})
	if client == nil || httpClient == nil {
		t.Fatalf("expected client and http client")
	}
	if httpClient.Timeout != 3*time.Second {
		t.Fatalf("expected configured timeout, got %s", httpClient.Timeout)
	}
	want := "https://statsapi.mlb.com/api/v1/standings?leagueId=103,104&sportId=1&season=2023&standingsType=regularSeason&hydrate=standings"
	if got := client.StandingsURL(2023); got != want {
		t.Fatalf("expected trailing slash trimmed, got %s", got)
	}
}
