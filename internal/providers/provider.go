package providers

import (
	"context"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// HomePageProvider builds the scoreboard page.
type HomePageProvider interface {
	HomePage(ctx context.Context) (domain.HomePageContent, error)
}

// TeamPageProvider builds a team dossier. A zero opts.Date means today in the
// provider's timezone and a zero opts.Season means the current season.
type TeamPageProvider interface {
	TeamPage(ctx context.Context, teamID int, opts domain.TeamPageOptions) (domain.TeamPageContent, error)
}

// LeagueProvider serves the league-wide endpoints on their own.
type LeagueProvider interface {
	Schedule(ctx context.Context, q domain.ScheduleQuery) (*table.Table, error)
	SeasonStandings(ctx context.Context, season int) (*table.Table, error)
	LeagueStats(ctx context.Context, season int) (domain.StatGroupSet, error)
}

// PageProvider combines all provider capabilities.
type PageProvider interface {
	HomePageProvider
	TeamPageProvider
	LeagueProvider
}
