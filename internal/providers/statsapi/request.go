package statsapi

// Kind tags a request with the endpoint family its response belongs to. The
// tag travels with the response so dispatch never depends on URL text.
type Kind int

const (
	KindUnknown Kind = iota
	KindSchedule
	KindStandings
	KindLeagueStats
	KindFullRoster
	KindFortyManRoster
	KindActiveRoster
	KindTeamStats
	KindTeamInfo
	KindDraft
	KindTransactions
)

var kindNames = map[Kind]string{
	KindUnknown:        "unknown",
	KindSchedule:       "schedule",
	KindStandings:      "standings",
	KindLeagueStats:    "leagueStats",
	KindFullRoster:     "fullRoster",
	KindFortyManRoster: "40Man",
	KindActiveRoster:   "active",
	KindTeamStats:      "teamStats",
	KindTeamInfo:       "teamInfo",
	KindDraft:          "draft",
	KindTransactions:   "transactions",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Request is one tagged upstream GET.
type Request struct {
	Kind Kind
	URL  string
}
