// Package reference holds the static league, division and team tables and
// the stat key rename dictionary used by the parsers.
package reference

import "github.com/preston-bernstein/mlb-stats-service/internal/domain"

// Tables bundles the read-only lookup data. A Tables value is never mutated
// after construction and may be shared between goroutines.
type Tables struct {
	Leagues     map[int]domain.League
	Teams       map[int]Team
	StatRenames map[string]string
}

// Default returns the built-in tables.
func Default() *Tables {
	return &Tables{
		Leagues:     defaultLeagues(),
		Teams:       defaultTeams(),
		StatRenames: defaultStatRenames(),
	}
}

// WithTeams returns a copy of t using the given team table.
func (t *Tables) WithTeams(teams map[int]Team) *Tables {
	cp := *t
	cp.Teams = teams
	return &cp
}

// WithLeagues returns a copy of t using the given league table.
func (t *Tables) WithLeagues(leagues map[int]domain.League) *Tables {
	cp := *t
	cp.Leagues = leagues
	return &cp
}

// Team looks a club up by mlbam id.
func (t *Tables) Team(id int) (Team, bool) {
	if t == nil {
		return Team{}, false
	}
	team, ok := t.Teams[id]
	return team, ok
}

// League looks a league or division up by mlbam id.
func (t *Tables) League(id int) (domain.League, bool) {
	if t == nil {
		return domain.League{}, false
	}
	l, ok := t.Leagues[id]
	return l, ok
}

// LeagueLabel is the display label of a standings group: the league name
// when no division is set, otherwise the division name.
func (t *Tables) LeagueLabel(leagueID, divisionID int) string {
	id := divisionID
	if divisionID == 0 {
		id = leagueID
	}
	if l, ok := t.League(id); ok {
		return l.Name
	}
	return ""
}

// RenameStat maps an upstream stat key to its canonical name. Unknown keys
// are returned unchanged.
func (t *Tables) RenameStat(key string) string {
	if t != nil {
		if v, ok := t.StatRenames[key]; ok {
			return v
		}
	}
	return key
}

// IsRawStatKey reports whether key is an upstream key with a canonical rename.
func (t *Tables) IsRawStatKey(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.StatRenames[key]
	return ok
}
