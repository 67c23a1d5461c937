package statsapi

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
)

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(req *http.Request, status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
		Request:    req,
	}
}

// routeFixtures answers every request with the fixture of its endpoint family.
// Full roster requests are further split by stat group.
func routeFixtures(t *testing.T, bodies map[string]string) *http.Client {
	t.Helper()
	return &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		kind, err := Classify(req.URL.String())
		if err != nil {
			t.Errorf("unroutable request %s", req.URL)
			return jsonResponse(req, http.StatusBadRequest, `{}`), nil
		}
		key := kind.String()
		if kind == KindFullRoster {
			for _, group := range []string{"hitting", "pitching", "fielding"} {
				if strings.Contains(req.URL.RawQuery, "group="+group) {
					key += "/" + group
				}
			}
		}
		body, ok := bodies[key]
		if !ok {
			return jsonResponse(req, http.StatusNotFound, `{"message":"no fixture"}`), nil
		}
		return jsonResponse(req, http.StatusOK, body), nil
	})}
}

func newLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func defaultRef() *reference.Tables {
	return reference.Default()
}

const scheduleFixture = `{
	"dates": [{
		"date": "2023-04-15",
		"games": [
			{
				"gamePk": 718001,
				"gameType": "R",
				"season": "2023",
				"gameDate": "2023-04-15T17:05:00Z",
				"officialDate": "2023-04-15",
				"dayNight": "day",
				"seriesDescription": "Regular Season",
				"status": {"abstractGameState": "Final", "detailedState": "Final", "statusCode": "F"},
				"teams": {
					"away": {
						"score": 2,
						"isWinner": false,
						"leagueRecord": {"wins": 7, "losses": 7, "pct": ".500"},
						"team": {"id": 142, "name": "Minnesota Twins"},
						"probablePitcher": {"id": 650633, "fullName": "Joe Ryan"}
					},
					"home": {
						"score": 5,
						"isWinner": true,
						"leagueRecord": {"wins": 9, "losses": 5, "pct": ".643"},
						"team": {"id": 147, "name": "New York Yankees"},
						"probablePitcher": {"id": 543037, "fullName": "Gerrit Cole"}
					}
				},
				"linescore": {
					"currentInning": 9,
					"currentInningOrdinal": "9th",
					"inningState": "End",
					"inningHalf": "Bottom",
					"innings": [
						{"num": 1, "home": {"runs": 3, "hits": 4, "errors": 0, "leftOnBase": 1}, "away": {"runs": 0, "hits": 1, "errors": 1, "leftOnBase": 2}},
						{"num": 2, "home": {"runs": 2, "hits": 2, "errors": 0, "leftOnBase": 0}, "away": {"runs": 2, "hits": 3, "errors": 0, "leftOnBase": 1}}
					],
					"balls": 0,
					"strikes": 0,
					"outs": 3,
					"offense": {"batter": {"id": 1, "fullName": "Last Batter"}}
				},
				"venue": {"id": 3313, "name": "Yankee Stadium"},
				"decisions": {
					"winner": {"id": 543037, "fullName": "Gerrit Cole"},
					"loser": {"id": 650633, "fullName": "Joe Ryan"}
				},
				"broadcasts": [
					{"id": 1, "name": "YES", "type": "TV", "language": "en", "homeAway": "home", "videoResolution": {"code": "H", "resolutionShort": "HD"}},
					{"id": 2, "name": "Amazon Prime Video", "type": "TV", "language": "en", "homeAway": "home"},
					{"id": 3, "name": "ESPN Deportes", "type": "TV", "language": "es", "homeAway": "home"},
					{"id": 4, "name": "BSN", "type": "TV", "language": "en", "homeAway": "away", "videoResolution": {"code": "S", "resolutionShort": "SD"}},
					{"id": 5, "name": "WFAN", "type": "AM", "language": "en", "homeAway": "home"},
					{"id": 6, "name": "WCCO", "type": "AM", "language": "en", "homeAway": "away"}
				],
				"content": {"media": {"epgAlternate": [
					{"title": "Extended Highlights", "items": [{"playbacks": [{"name": "mp4Avc", "url": "https://example.com/extended.mp4"}]}]},
					{"title": "Daily Recap", "items": [{"playbacks": [
						{"name": "hlsCloud", "url": "https://example.com/recap.m3u8"},
						{"name": "mp4Avc", "url": "https://example.com/recap.mp4"}
					]}]}
				]}}
			},
			{
				"gamePk": 718002,
				"gameType": "R",
				"season": "2023",
				"gameDate": "2023-04-15T23:10:00Z",
				"officialDate": "2023-04-15",
				"status": {"abstractGameState": "Live", "detailedState": "In Progress", "statusCode": "I"},
				"teams": {
					"away": {"team": {"id": 111, "name": "Boston Red Sox"}},
					"home": {"team": {"id": 108, "name": "Los Angeles Angels"}}
				},
				"linescore": {
					"currentInning": 5,
					"currentInningOrdinal": "5th",
					"inningState": "Middle",
					"inningHalf": "Top",
					"innings": [],
					"offense": {"batter": {"id": 999, "fullName": "Offense Batter"}},
					"defense": {
						"batter": {"id": 10, "link": "/api/v1/people/10"},
						"onDeck": {"id": 11, "link": "/api/v1/people/11"},
						"inHole": {"id": 12, "link": "/api/v1/people/12"}
					}
				},
				"lineups": {
					"awayPlayers": [
						{"id": 10, "fullName": "Away Leadoff"},
						{"id": 11, "fullName": "Away Second"},
						{"id": 12, "fullName": "Away Third"}
					],
					"homePlayers": [
						{"id": 10, "fullName": "Home Namesake"}
					]
				}
			},
			{
				"gamePk": 718003,
				"gameType": "R",
				"season": "2023",
				"gameDate": "2023-04-15",
				"officialDate": "2023-04-15",
				"rescheduleGameDate": "2023-04-16",
				"status": {"abstractGameState": "Final", "detailedState": "Postponed"},
				"teams": {
					"away": {"team": {"id": 112, "name": "Chicago Cubs"}},
					"home": {"team": {"id": 158, "name": "Milwaukee Brewers", "abbreviation": "MKE"}}
				}
			}
		]
	}]
}`

const standingsFixture = `{
	"records": [{
		"standingsType": "regularSeason",
		"league": {"id": 103},
		"division": {"id": 200},
		"teamRecords": [{
			"team": {"id": 117, "name": "Houston Astros"},
			"season": "2023",
			"streak": {"streakCode": "W3"},
			"clinchIndicator": "",
			"divisionRank": "1",
			"leagueRank": "2",
			"sportRank": 5,
			"gamesPlayed": 15,
			"gamesBack": "-",
			"wildCardGamesBack": "-",
			"leagueRecord": {"wins": 10, "losses": 5, "pct": ".667"},
			"records": {
				"splitRecords": [
					{"type": "home", "wins": 10, "losses": 5},
					{"type": "lastTen", "wins": 0, "losses": 0},
					{"type": "extraInning", "wins": 1, "losses": 0}
				],
				"divisionRecords": [
					{"division": {"id": 200}, "wins": 4, "losses": 2},
					{"division": {"id": 201}, "wins": 0, "losses": 0}
				],
				"leagueRecords": [
					{"league": {"id": 104}, "wins": 3, "losses": 1}
				]
			},
			"runsAllowed": 50,
			"runsScored": 70,
			"runDifferential": 20,
			"divisionChamp": false,
			"divisionLeader": true,
			"clinched": false,
			"winningPercentage": ".667"
		}]
	}]
}`

const leagueStatsFixture = `{
	"stats": [
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "hitting"},
			"splits": [
				{"season": "2023", "team": {"id": 147, "name": "New York Yankees"}, "player": {"id": 592450, "fullName": "Aaron Judge"}},
				{"season": "2023", "team": {"id": 111, "name": "Boston Red Sox"}, "player": {"id": 646240, "fullName": "Rafael Devers"}, "stat": {"gamesPlayed": 153, "homeRuns": 33, "avg": ".271"}}
			]
		},
		{
			"type": {"displayName": "seasonAdvanced"},
			"group": {"displayName": "hitting"},
			"splits": [
				{"season": "2023", "team": {"id": 111, "name": "Boston Red Sox"}, "player": {"id": 646240, "fullName": "Rafael Devers"}, "stat": {"extraBaseHits": 70, "iso": ".229"}}
			]
		},
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "pitching"},
			"splits": [
				{"season": "2023", "team": {"id": 147, "name": "New York Yankees"}, "player": {"id": 543037, "fullName": "Gerrit Cole"}, "stat": {"era": "2.63", "wins": 15, "inningsPitched": "209.0"}}
			]
		},
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "fielding"},
			"splits": [
				{"season": "2023", "team": {"id": 111, "name": "Boston Red Sox"}, "player": {"id": 646240, "fullName": "Rafael Devers"}, "stat": {"position": {"code": "5", "name": "Third Base", "abbreviation": "3B"}, "errors": 20, "fielding": ".943"}}
			]
		}
	]
}`

const fullRosterHittingFixture = `{
	"roster": [
		{
			"person": {
				"id": 592450,
				"fullName": "Aaron Judge",
				"firstName": "Aaron",
				"lastName": "Judge",
				"primaryNumber": "99",
				"birthDate": "1992-04-26",
				"currentAge": 31,
				"height": "6' 7\"",
				"weight": 282,
				"active": true,
				"batSide": {"code": "R", "description": "Right"},
				"pitchHand": {"code": "R", "description": "Right"},
				"primaryPosition": {"code": "9", "name": "Outfielder", "type": "Outfielder", "abbreviation": "RF"},
				"stats": [
					{
						"type": {"displayName": "yearByYear"},
						"group": {"displayName": "hitting"},
						"splits": [
							{"season": "2022", "team": {"id": 147}, "stat": {"gamesPlayed": 157, "homeRuns": 62, "avg": ".311"}},
							{"season": "2023", "team": {"id": 147}, "stat": {"gamesPlayed": 106, "homeRuns": 37, "avg": ".267"}}
						]
					},
					{
						"type": {"displayName": "yearByYearAdvanced"},
						"group": {"displayName": "hitting"},
						"splits": [
							{"season": "2023", "team": {"id": 147}, "stat": {"extraBaseHits": 56, "iso": ".346"}}
						]
					}
				]
			},
			"jerseyNumber": "99",
			"position": {"code": "9", "name": "Outfielder", "type": "Outfielder", "abbreviation": "RF"},
			"status": {"code": "A", "description": "Active"}
		},
		{
			"person": {
				"id": 650402,
				"fullName": "Gleyber Torres",
				"firstName": "Gleyber",
				"lastName": "Torres",
				"stats": [
					{
						"type": {"displayName": "yearByYear"},
						"group": {"displayName": "hitting"},
						"splits": [
							{"season": "2023", "team": {"id": 147}, "stat": {"gamesPlayed": 158, "homeRuns": 25, "avg": ".273"}}
						]
					}
				]
			},
			"jerseyNumber": "25",
			"position": {"code": "4", "name": "Second Base", "type": "Infielder", "abbreviation": "2B"},
			"status": {"code": "A", "description": "Active"}
		}
	]
}`

const fullRosterPitchingFixture = `{
	"roster": [
		{
			"person": {
				"id": 543037,
				"fullName": "Gerrit Cole",
				"firstName": "Gerrit",
				"lastName": "Cole",
				"primaryNumber": "45",
				"batSide": {"code": "R", "description": "Right"},
				"pitchHand": {"code": "R", "description": "Right"},
				"stats": [
					{
						"type": {"displayName": "yearByYear"},
						"group": {"displayName": "pitching"},
						"splits": [
							{"season": "2023", "team": {"id": 147}, "stat": {"era": "2.63", "wins": 15, "inningsPitched": "209.0"}}
						]
					}
				]
			},
			"jerseyNumber": "45",
			"position": {"code": "1", "name": "Pitcher", "type": "Pitcher", "abbreviation": "P"},
			"status": {"code": "A", "description": "Active"}
		}
	]
}`

const fullRosterFieldingFixture = `{
	"roster": [
		{
			"person": {
				"id": 592450,
				"fullName": "Aaron Judge",
				"firstName": "Aaron",
				"lastName": "Judge",
				"primaryNumber": "99",
				"currentAge": 32,
				"stats": [
					{
						"type": {"displayName": "yearByYear"},
						"group": {"displayName": "fielding"},
						"splits": [
							{"season": "2023", "team": {"id": 147}, "stat": {"position": {"code": "9", "abbreviation": "RF"}, "errors": 2, "assists": 4, "fielding": ".985"}}
						]
					}
				]
			},
			"jerseyNumber": "99",
			"position": {"code": "9", "name": "Outfielder", "type": "Outfielder", "abbreviation": "RF"},
			"status": {"code": "A", "description": "Active"}
		}
	]
}`

const fortyManFixture = `{
	"roster": [
		{"person": {"id": 592450, "fullName": "Aaron Judge"}, "jerseyNumber": "99", "position": {"abbreviation": "RF"}, "status": {"code": "A", "description": "Active"}},
		{"person": {"id": 543037, "fullName": "Gerrit Cole"}, "jerseyNumber": "45", "position": {"abbreviation": "P"}, "status": {"code": "A", "description": "Active"}},
		{"person": {"id": 650402, "fullName": "Gleyber Torres"}, "jerseyNumber": "25", "position": {"abbreviation": "2B"}, "status": {"code": "D10", "description": "Injured 10-Day"}}
	]
}`

const activeRosterFixture = `{
	"roster": [
		{"person": {"id": 592450, "fullName": "Aaron Judge"}, "jerseyNumber": "99", "position": {"abbreviation": "RF"}, "status": {"code": "A", "description": "Active"}},
		{"person": {"id": 543037, "fullName": "Gerrit Cole"}, "jerseyNumber": "45", "position": {"abbreviation": "P"}, "status": {"code": "A", "description": "Active"}}
	]
}`

const teamStatsFixture = `{
	"stats": [
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "hitting"},
			"splits": [{"season": "2023", "stat": {"gamesPlayed": 162, "homeRuns": 219, "avg": ".227"}}]
		},
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "pitching"},
			"splits": [{"season": "2023", "team": {"id": 147, "name": "New York Yankees"}, "stat": {"era": "3.97", "saves": 44}}]
		},
		{
			"type": {"displayName": "season"},
			"group": {"displayName": "catching"},
			"splits": [{"season": "2023", "stat": {"passedBall": 9}}]
		}
	]
}`

const teamInfoFixture = `{
	"teams": [{
		"id": 147,
		"name": "New York Yankees",
		"teamName": "Yankees",
		"locationName": "Bronx",
		"franchiseName": "New York",
		"clubName": "Yankees",
		"shortName": "NY Yankees",
		"abbreviation": "NYY",
		"firstYearOfPlay": "1903",
		"season": 2023,
		"league": {"id": 103, "name": "American League"},
		"division": {"id": 201, "name": "American League East"},
		"venue": {
			"id": 3313,
			"name": "Yankee Stadium",
			"fieldInfo": {"capacity": 46537, "turfType": "Grass", "roofType": "Open", "leftLine": 318, "center": 408, "rightLine": 314}
		},
		"nextGameSchedule": {"dates": [{
			"date": "2023-07-05",
			"games": [{
				"gamePk": 719000,
				"gameType": "R",
				"season": "2023",
				"gameDate": "2023-07-05T23:05:00Z",
				"officialDate": "2023-07-05",
				"status": {"abstractGameState": "Preview", "detailedState": "Scheduled"},
				"teams": {
					"away": {"team": {"id": 136, "name": "Seattle Mariners"}, "leagueRecord": {"wins": 44, "losses": 42}},
					"home": {"team": {"id": 147, "name": "New York Yankees"}, "leagueRecord": {"wins": 48, "losses": 40}}
				},
				"venue": {"id": 3313, "name": "Yankee Stadium"}
			}]
		}]}
	}]
}`

const draftFixture = `{"drafts": {"draftYear": 2023, "rounds": [{"round": "1", "picks": [{"pickNumber": 26}]}]}}`

const transactionsFixture = `{
	"transactions": [
		{"id": 1, "person": {"id": 10, "fullName": "Early Move"}, "toTeam": {"id": 147, "name": "New York Yankees"}, "date": "2023-06-10", "effectiveDate": "2023-06-10", "typeCode": "SC", "typeDesc": "Status Change", "description": "placed on the 10-day injured list"},
		{"id": 2, "person": {"id": 11, "fullName": "Late Move"}, "toTeam": {"id": 147, "name": "New York Yankees"}, "fromTeam": {"id": 136, "name": "Seattle Mariners"}, "date": "2023-07-01", "typeCode": "TR", "typeDesc": "Trade", "description": "acquired in a trade"},
		{"id": 3, "person": {"id": 12, "fullName": "Middle Move"}, "toTeam": {"id": 147, "name": "New York Yankees"}, "date": "2023-06-20", "resolutionDate": "2023-06-30", "typeCode": "OPT", "typeDesc": "Optioned", "description": "optioned to Triple-A"}
	]
}`

func teamBundleFixtures() map[string]string {
	return map[string]string{
		"fullRoster/hitting":  fullRosterHittingFixture,
		"fullRoster/pitching": fullRosterPitchingFixture,
		"fullRoster/fielding": fullRosterFieldingFixture,
		"40Man":               fortyManFixture,
		"active":              activeRosterFixture,
		"teamStats":           teamStatsFixture,
		"teamInfo":            teamInfoFixture,
		"draft":               draftFixture,
		"transactions":        transactionsFixture,
	}
}

func homeFixtures() map[string]string {
	return map[string]string{
		"schedule":    scheduleFixture,
		"standings":   standingsFixture,
		"leagueStats": leagueStatsFixture,
	}
}
