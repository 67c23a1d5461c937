package statsapi

import "time"

const (
	providerName       = "statsapi"
	defaultBaseURL     = "https://statsapi.mlb.com/api/v1"
	defaultHTTPTimeout = 20 * time.Second
	defaultTimezone    = "America/New_York"
	userAgent          = "mlb-stats-service/1.0"

	sportID                = "1"
	leagueStatsLimit       = "2000"
	nextScheduleLimit      = 5
	transactionsWindowDays = 30
	maxErrorBody           = 512
)

// Hydration sets for the schedule endpoint.
const (
	BaseScheduleHydration = "linescore,person,decisions,lineups(person),probablePitcher"
	HomeScheduleHydration = BaseScheduleHydration + ",broadcasts(all),game(content(media(epg)))"
)

// Roster types accepted by /teams/{id}/roster.
const (
	RosterFull     = "fullRoster"
	RosterFortyMan = "40Man"
	RosterActive   = "active"
)
