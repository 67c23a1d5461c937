package statsapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

const seasonCol = "season"

// StatsOptions controls stat table construction.
type StatsOptions struct {
	// TeamID fills team_mlbam on team splits that do not name their team.
	TeamID           int
	KeepOriginalKeys bool
	Reference        *reference.Tables
}

// ParseStats builds one table per (group, advanced) bucket found in a stats
// payload. kind selects the row layout: KindFullRoster for per-player rows,
// KindTeamStats for team totals and KindLeagueStats for league-wide rows.
func ParseStats(kind Kind, body json.RawMessage, opts StatsOptions) (map[domain.Bucket]*table.Table, error) {
	switch kind {
	case KindFullRoster:
		var payload rosterResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		people, err := rosterPeople(payload.Roster)
		if err != nil {
			return nil, err
		}
		return playerStats(people, opts), nil
	case KindTeamStats:
		var payload statsResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		return teamStats(payload.Stats, opts), nil
	case KindLeagueStats:
		var payload statsResponse
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		return leagueStats(payload.Stats, opts), nil
	}
	return nil, fmt.Errorf("statsapi: %s responses carry no stats", kind)
}

// bucketOf classifies a stats entry. Entries of an unknown group are skipped.
func bucketOf(e statsEntry) (domain.Bucket, bool) {
	group := domain.StatGroup(strings.ToLower(strings.TrimSpace(e.Group.DisplayName)))
	switch group {
	case domain.GroupHitting, domain.GroupPitching, domain.GroupFielding:
	default:
		return domain.Bucket{}, false
	}
	advanced := strings.Contains(strings.ToLower(e.Type.DisplayName), "advanced")
	return domain.Bucket{Group: group, Advanced: advanced}, true
}

func playerStats(people []personJSON, opts StatsOptions) map[domain.Bucket]*table.Table {
	out := map[domain.Bucket]*table.Table{}
	for _, p := range people {
		for _, entry := range p.Stats {
			bucket, ok := bucketOf(entry)
			if !ok {
				continue
			}
			t := bucketTable(out, bucket)
			for _, split := range entry.Splits {
				r := table.NewRecord()
				r.Set(seasonCol, split.Season).
					Set("player_mlbam", p.ID).
					Set("player_name", p.FullName).
					Set("team_mlbam", idCell(split.Team.id()))
				spreadStat(r, split.Stat)
				t.Append(r)
			}
		}
	}
	return finishBuckets(out, opts, true)
}

func teamStats(entries []statsEntry, opts StatsOptions) map[domain.Bucket]*table.Table {
	out := map[domain.Bucket]*table.Table{}
	for _, entry := range entries {
		bucket, ok := bucketOf(entry)
		if !ok {
			continue
		}
		t := bucketTable(out, bucket)
		for _, split := range entry.Splits {
			teamID := split.Team.id()
			if teamID == 0 {
				teamID = opts.TeamID
			}
			r := table.NewRecord()
			r.Set(seasonCol, split.Season).Set("team_mlbam", idCell(teamID))
			spreadStat(r, split.Stat)
			t.Append(r)
		}
	}
	return finishBuckets(out, opts, true)
}

var leagueIdentity = []string{seasonCol, "team_mlbam", "team", "team_abbrv", "league_mlbam", "div_mlbam"}

// leagueStats keeps input order. Stat columns come from the last split of
// each entry; splits missing a stat get nil cells.
func leagueStats(entries []statsEntry, opts StatsOptions) map[domain.Bucket]*table.Table {
	out := map[domain.Bucket]*table.Table{}
	for _, entry := range entries {
		bucket, ok := bucketOf(entry)
		if !ok || len(entry.Splits) == 0 {
			continue
		}
		statKeys := entry.Splits[len(entry.Splits)-1].Stat.Keys()
		t := bucketTable(out, bucket)
		for _, split := range entry.Splits {
			t.Append(leagueRow(split, statKeys, opts.Reference))
		}
	}
	return finishBuckets(out, opts, false)
}

func leagueRow(split statSplit, statKeys []string, ref *reference.Tables) *table.Record {
	teamID := split.Team.id()
	var abbrv, leagueID, divisionID any
	if team, ok := ref.Team(teamID); ok {
		abbrv = team.Abbreviation
		leagueID = idCell(team.LeagueID)
		divisionID = idCell(team.DivisionID)
	}

	r := table.NewRecord()
	r.Set(seasonCol, split.Season).
		Set("team_mlbam", idCell(teamID)).
		Set("team", split.Team.name()).
		Set("team_abbrv", abbrv).
		Set("league_mlbam", leagueID).
		Set("div_mlbam", divisionID)
	if split.Player != nil {
		r.Set("player_mlbam", idCell(split.Player.ID)).Set("player_name", split.Player.name())
	}
	for _, k := range statKeys {
		v, _ := split.Stat.Value(k)
		r.Set(k, v)
	}
	return r
}

func spreadStat(r *table.Record, stat statObject) {
	for _, k := range stat.Keys() {
		v, _ := stat.Value(k)
		r.Set(k, v)
	}
}

func bucketTable(tables map[domain.Bucket]*table.Table, b domain.Bucket) *table.Table {
	t, ok := tables[b]
	if !ok {
		t = table.New()
		tables[b] = t
	}
	return t
}

// finishBuckets sorts by season when asked and renames stat columns. Fielding
// keeps upstream keys; StatGroupSet renames it on read.
func finishBuckets(tables map[domain.Bucket]*table.Table, opts StatsOptions, sortSeason bool) map[domain.Bucket]*table.Table {
	for b, t := range tables {
		if sortSeason {
			t = t.SortBy(seasonCol, true)
		}
		tables[b] = renameStats(t, b, opts)
	}
	return tables
}

func renameStats(t *table.Table, b domain.Bucket, opts StatsOptions) *table.Table {
	if opts.KeepOriginalKeys || b.Group == domain.GroupFielding {
		return t
	}
	names := map[string]string{}
	for _, col := range t.Columns() {
		if to := opts.Reference.RenameStat(col); to != col {
			names[col] = to
		}
	}
	renamed, err := t.Rename(names)
	if err != nil {
		return t
	}
	return renamed
}

// concatBuckets merges per-response bucket tables in fetch order.
func concatBuckets(parts []map[domain.Bucket]*table.Table, sortSeason bool) map[domain.Bucket]*table.Table {
	grouped := map[domain.Bucket][]*table.Table{}
	var order []domain.Bucket
	for _, part := range parts {
		for _, b := range bucketOrder {
			t, ok := part[b]
			if !ok {
				continue
			}
			if _, seen := grouped[b]; !seen {
				order = append(order, b)
			}
			grouped[b] = append(grouped[b], t)
		}
	}
	out := make(map[domain.Bucket]*table.Table, len(order))
	for _, b := range order {
		merged := table.Concat(grouped[b]...)
		if sortSeason {
			merged = merged.SortBy(seasonCol, true)
		}
		out[b] = merged
	}
	return out
}

var bucketOrder = []domain.Bucket{
	{Group: domain.GroupHitting},
	{Group: domain.GroupHitting, Advanced: true},
	{Group: domain.GroupPitching},
	{Group: domain.GroupPitching, Advanced: true},
	{Group: domain.GroupFielding},
	{Group: domain.GroupFielding, Advanced: true},
}
