package statsapi

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
)

// Hydration and list syntax is sent unescaped.
var literalQuery = strings.NewReplacer("%28", "(", "%29", ")", "%2C", ",", "%5B", "[", "%5D", "]", "%3D", "=")

// query keeps parameters in insertion order so URLs are stable.
type query struct {
	keys []string
	vals []string
}

func (q *query) add(key, value string) *query {
	q.keys = append(q.keys, key)
	q.vals = append(q.vals, value)
	return q
}

func (q *query) addIf(key, value string) *query {
	if value == "" {
		return q
	}
	return q.add(key, value)
}

func (q *query) encode() string {
	var b strings.Builder
	for i, k := range q.keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(literalQuery.Replace(url.QueryEscape(q.vals[i])))
	}
	return b.String()
}

// URLBuilder composes endpoint URLs. It performs no I/O.
type URLBuilder struct {
	BaseURL string
}

func (b URLBuilder) endpoint(path string, q *query) string {
	base := normalizeBaseURL(b.BaseURL) + path
	if q == nil || len(q.keys) == 0 {
		return base
	}
	return base + "?" + q.encode()
}

// Schedule builds a schedule request. A set Date wins over a StartDate/EndDate
// window, which wins over Season.
func (b URLBuilder) Schedule(sq domain.ScheduleQuery) Request {
	q := &query{}
	switch {
	case !sq.Date.IsZero():
		q.add("date", sq.Date.String())
	case !sq.StartDate.IsZero() || !sq.EndDate.IsZero():
		q.addIf("startDate", sq.StartDate.String())
		q.addIf("endDate", sq.EndDate.String())
	}
	if sq.Season > 0 {
		q.add("season", strconv.Itoa(sq.Season))
	}
	if sq.TeamID > 0 {
		q.add("teamId", strconv.Itoa(sq.TeamID))
	}
	if len(sq.GameTypes) > 0 {
		q.add("gameType", strings.Join(sq.GameTypes, ","))
	}
	hydrate := BaseScheduleHydration
	if len(sq.Hydrate) > 0 {
		hydrate = strings.Join(sq.Hydrate, ",")
	}
	q.add("hydrate", hydrate)
	q.add("sportId", sportID)
	return Request{Kind: KindSchedule, URL: b.endpoint("/schedule", q)}
}

// HomeSchedule is the scoreboard schedule for one date.
func (b URLBuilder) HomeSchedule(date domain.MlbDate) Request {
	return b.Schedule(domain.ScheduleQuery{
		Date:    date,
		Hydrate: []string{HomeScheduleHydration},
	})
}

// Standings builds the regular-season standings request for both leagues.
func (b URLBuilder) Standings(season int) Request {
	q := (&query{}).
		add("leagueId", leagueIDList()).
		add("sportId", sportID).
		add("season", strconv.Itoa(season)).
		add("standingsType", "regularSeason").
		add("hydrate", "standings")
	return Request{Kind: KindStandings, URL: b.endpoint("/standings", q)}
}

// LeagueStats builds the league-wide player stats request.
func (b URLBuilder) LeagueStats(season int) Request {
	q := (&query{}).
		add("stats", "season,seasonAdvanced").
		add("group", statGroupList()).
		add("playerPool", "all").
		add("limit", leagueStatsLimit).
		add("leagueIds", leagueIDList()).
		add("season", strconv.Itoa(season))
	return Request{Kind: KindLeagueStats, URL: b.endpoint("/stats", q)}
}

// FullRoster builds a full roster request hydrated with each player's
// year-by-year stats for one group.
func (b URLBuilder) FullRoster(teamID, season int, group domain.StatGroup) Request {
	q := (&query{}).
		add("rosterType", RosterFull).
		add("season", strconv.Itoa(season)).
		add("hydrate", fmt.Sprintf("person(stats(type=[yearByYear,yearByYearAdvanced],group=%s))", group))
	return Request{Kind: KindFullRoster, URL: b.endpoint(teamPath(teamID, "/roster"), q)}
}

// Roster builds a plain roster request for the 40-man or active roster.
func (b URLBuilder) Roster(teamID, season int, rosterType string) Request {
	kind := KindUnknown
	switch rosterType {
	case RosterFortyMan:
		kind = KindFortyManRoster
	case RosterActive:
		kind = KindActiveRoster
	case RosterFull:
		kind = KindFullRoster
	}
	q := (&query{}).
		add("rosterType", rosterType).
		add("season", strconv.Itoa(season))
	return Request{Kind: kind, URL: b.endpoint(teamPath(teamID, "/roster"), q)}
}

// TeamStats builds the team season totals request.
func (b URLBuilder) TeamStats(teamID, season int) Request {
	q := (&query{}).
		add("stats", "season,seasonAdvanced").
		add("group", statGroupList()).
		add("season", strconv.Itoa(season))
	return Request{Kind: KindTeamStats, URL: b.endpoint(teamPath(teamID, "/stats"), q)}
}

// TeamInfo builds the team header request with upcoming games and venue details.
func (b URLBuilder) TeamInfo(teamID, season int) Request {
	q := (&query{}).
		add("season", strconv.Itoa(season)).
		add("hydrate", fmt.Sprintf("nextSchedule(limit=%d),venue(fieldInfo)", nextScheduleLimit))
	return Request{Kind: KindTeamInfo, URL: b.endpoint(teamPath(teamID, ""), q)}
}

// Draft builds the team's draft request for a season.
func (b URLBuilder) Draft(teamID, season int) Request {
	q := (&query{}).add("teamId", strconv.Itoa(teamID))
	return Request{Kind: KindDraft, URL: b.endpoint("/draft/"+strconv.Itoa(season), q)}
}

// Transactions builds the transactions request for the 30 days ending at date.
func (b URLBuilder) Transactions(teamID int, date domain.MlbDate) Request {
	q := (&query{}).
		add("teamId", strconv.Itoa(teamID)).
		add("startDate", date.AddDays(-transactionsWindowDays).String()).
		add("endDate", date.String())
	return Request{Kind: KindTransactions, URL: b.endpoint("/transactions", q)}
}

// TeamBundle is the nine-request fan-out behind a team page.
func (b URLBuilder) TeamBundle(teamID int, date domain.MlbDate, season int) []Request {
	reqs := make([]Request, 0, 9)
	for _, group := range domain.StatGroups {
		reqs = append(reqs, b.FullRoster(teamID, season, group))
	}
	return append(reqs,
		b.Roster(teamID, season, RosterFortyMan),
		b.Roster(teamID, season, RosterActive),
		b.TeamStats(teamID, season),
		b.TeamInfo(teamID, season),
		b.Draft(teamID, season),
		b.Transactions(teamID, date),
	)
}

func teamPath(teamID int, suffix string) string {
	return "/teams/" + strconv.Itoa(teamID) + suffix
}

func leagueIDList() string {
	ids := make([]string, len(reference.LeagueIDs))
	for i, id := range reference.LeagueIDs {
		ids[i] = strconv.Itoa(id)
	}
	return strings.Join(ids, ",")
}

func statGroupList() string {
	groups := make([]string, len(domain.StatGroups))
	for i, g := range domain.StatGroups {
		groups[i] = string(g)
	}
	return strings.Join(groups, ",")
}
