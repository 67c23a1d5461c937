package testutil

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// SampleSchedule returns a one-game schedule table.
func SampleSchedule(gamePk int) *table.Table {
	t := table.New("game_pk", "status", "home_abbrv", "away_abbrv", "home_score", "away_score")
	t.Append(table.NewRecord().
		Set("game_pk", gamePk).
		Set("status", "Scheduled").
		Set("home_abbrv", "NYY").
		Set("away_abbrv", "BOS").
		Set("home_score", "0").
		Set("away_score", "0"))
	return t
}

// SampleStandings returns a one-team standings table.
func SampleStandings(teamID int) *table.Table {
	t := table.New("team_mlbam", "wins", "losses")
	t.Append(table.NewRecord().Set("team_mlbam", teamID).Set("wins", 10).Set("losses", 5))
	return t
}

// SampleStats returns a stat set with a single hitting row.
func SampleStats(playerID int) domain.StatGroupSet {
	hitting := table.New("season", "player_mlbam", "HR")
	hitting.Append(table.NewRecord().Set("season", "2023").Set("player_mlbam", playerID).Set("HR", 37))
	return domain.NewStatGroupSet(map[domain.Bucket]*table.Table{
		{Group: domain.GroupHitting}: hitting,
	}, nil, false)
}

// SampleHomePage builds a home page for the given date.
func SampleHomePage(date string) domain.HomePageContent {
	return domain.HomePageContent{
		Date:      domain.MustParseMlbDate(date),
		Schedule:  SampleSchedule(1),
		Standings: SampleStandings(147),
		Stats:     SampleStats(592450),
	}
}

// SampleTeamPage builds a minimal team page for teamID.
func SampleTeamPage(teamID int, date string) domain.TeamPageContent {
	players := domain.PlayerDirectory{}
	players.Add(domain.Person{ID: 592450, Name: domain.PersonName{ID: 592450, Full: "Aaron Judge"}})
	return domain.TeamPageContent{
		Players: players,
		Stats:   domain.TeamStats{Players: SampleStats(592450), Totals: SampleStats(0)},
		Rosters: domain.TeamRosters{
			Full:     table.New("player_mlbam"),
			FortyMan: table.New("player_mlbam"),
			Active:   table.New("player_mlbam"),
		},
		Team:         domain.TeamInfo{Name: domain.TeamName{ID: teamID, Full: "New York Yankees"}},
		NextGames:    SampleSchedule(2),
		Draft:        json.RawMessage(`{"drafts":{}}`),
		Transactions: table.New("date", "description"),
		Date:         domain.MustParseMlbDate(date),
	}
}
