package statsapi

import (
	"encoding/json"
	"strconv"

	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

const emptyRecord = "0-0"

// SplitRenames maps standings split types to column names. Types without an
// entry are used as-is.
var SplitRenames = map[string]string{
	"leftHome":    "left_home",
	"leftAway":    "left_away",
	"rightHome":   "right_home",
	"rightAway":   "right_away",
	"lastTen":     "last_ten",
	"extraInning": "extra_inning",
	"oneRun":      "one_run",
}

var divisionColumns = map[int]string{
	reference.ALWestID:    "vs_west",
	reference.NLWestID:    "vs_west",
	reference.ALEastID:    "vs_east",
	reference.NLEastID:    "vs_east",
	reference.ALCentralID: "vs_central",
	reference.NLCentralID: "vs_central",
}

var leagueColumns = map[int]string{
	reference.AmericanLeagueID: "vs_al",
	reference.NationalLeagueID: "vs_nl",
}

var standingsColumns = []string{
	"season", "team_mlbam", "team_name", "team_abbrv", "league_mlbam", "div_mlbam", "league",
	"wins", "losses", "games_played", "win_pct", "runs_scored", "runs_allowed", "run_diff",
	"sport_rank", "league_rank", "div_rank", "div_champ", "div_leader", "clinched", "clinch",
	"games_back", "wc_games_back", "streak",
}

// ParseStandings turns a standings payload into one row per team record.
// Split, division and league records are folded into "W-L" columns; 0-0
// records are dropped.
func ParseStandings(body json.RawMessage, ref *reference.Tables) (*table.Table, error) {
	var payload standingsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	out := table.New(standingsColumns...)
	for _, group := range payload.Records {
		leagueID := group.League.id()
		divisionID := group.Division.id()
		label := ref.LeagueLabel(leagueID, divisionID)
		for i := range group.TeamRecords {
			out.Append(standingsRow(&group.TeamRecords[i], leagueID, divisionID, label, ref))
		}
	}
	return out, nil
}

func standingsRow(tr *teamRecord, leagueID, divisionID int, label string, ref *reference.Tables) *table.Record {
	var abbrv any
	if team, ok := ref.Team(tr.Team.ID); ok {
		abbrv = team.Abbreviation
	}
	streakCode := ""
	if tr.Streak != nil {
		streakCode = tr.Streak.StreakCode
	}
	wins, losses := tr.Wins, tr.Losses
	if tr.LeagueRecord != nil {
		if wins == nil {
			wins = &tr.LeagueRecord.Wins
		}
		if losses == nil {
			losses = &tr.LeagueRecord.Losses
		}
	}

	r := table.NewRecord()
	r.Set("season", tr.Season).
		Set("team_mlbam", idCell(tr.Team.ID)).
		Set("team_name", tr.Team.name()).
		Set("team_abbrv", abbrv).
		Set("league_mlbam", idCell(leagueID)).
		Set("div_mlbam", idCell(divisionID)).
		Set("league", label).
		Set("wins", optCell(wins)).
		Set("losses", optCell(losses)).
		Set("games_played", optCell(tr.GamesPlayed)).
		Set("win_pct", tr.WinningPercentage).
		Set("runs_scored", optCell(tr.RunsScored)).
		Set("runs_allowed", optCell(tr.RunsAllowed)).
		Set("run_diff", optCell(tr.RunDifferential)).
		Set("sport_rank", tr.SportRank.cell()).
		Set("league_rank", tr.LeagueRank.cell()).
		Set("div_rank", tr.DivisionRank.cell()).
		Set("div_champ", tr.DivisionChamp).
		Set("div_leader", tr.DivisionLeader).
		Set("clinched", tr.Clinched).
		Set("clinch", tr.ClinchIndicator).
		Set("games_back", tr.GamesBack).
		Set("wc_games_back", tr.WildCardGamesBack).
		Set("streak", streakCode)

	foldRecords(r, tr.Records)
	return r
}

// foldRecords adds one column per non-empty split, division and league record.
func foldRecords(r *table.Record, groups splitGroups) {
	for _, s := range groups.SplitRecords {
		if s.Type == "" {
			continue
		}
		col := s.Type
		if renamed, ok := SplitRenames[col]; ok {
			col = renamed
		}
		setRecord(r, col, s)
	}
	for _, s := range groups.DivisionRecords {
		if col, ok := divisionColumns[s.Division.id()]; ok {
			setRecord(r, col, s)
		}
	}
	for _, s := range groups.LeagueRecords {
		if col, ok := leagueColumns[s.League.id()]; ok {
			setRecord(r, col, s)
		}
	}
}

func setRecord(r *table.Record, col string, s splitRecord) {
	value := strconv.Itoa(s.Wins) + "-" + strconv.Itoa(s.Losses)
	if value == emptyRecord {
		return
	}
	r.Set(col, value)
}
