package domain

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// HomePageContent is the scoreboard page: today's games, league standings
// and league-wide stats.
type HomePageContent struct {
	Date      MlbDate      `json:"date"`
	Schedule  *table.Table `json:"schedule"`
	Standings *table.Table `json:"standings"`
	Stats     StatGroupSet `json:"stats"`
}

// TeamPageContent is the team dossier.
type TeamPageContent struct {
	Players      PlayerDirectory `json:"players"`
	Stats        TeamStats       `json:"stats"`
	Rosters      TeamRosters     `json:"rosters"`
	Team         TeamInfo        `json:"team"`
	NextGames    *table.Table    `json:"nextGames"`
	Draft        json.RawMessage `json:"draft"`
	Transactions *table.Table    `json:"transactions"`
	Date         MlbDate         `json:"date"`
	Warnings     []string        `json:"warnings,omitempty"`
}

// TeamPageOptions narrows a team page. Zero values mean today and the
// season of that date. With AllowPartial a failed request leaves its part of
// the page empty and is reported in Warnings instead of failing the page.
type TeamPageOptions struct {
	Date         MlbDate
	Season       int
	AllowPartial bool
}

// ScheduleQuery selects games for the schedule endpoint. Date wins over a
// StartDate/EndDate window; Season alone selects the whole season.
type ScheduleQuery struct {
	Date      MlbDate
	StartDate MlbDate
	EndDate   MlbDate
	Season    int
	TeamID    int
	GameTypes []string
	Hydrate   []string
}
