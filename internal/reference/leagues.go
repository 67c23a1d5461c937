package reference

import "github.com/preston-bernstein/mlb-stats-service/internal/domain"

const (
	AmericanLeagueID = 103
	NationalLeagueID = 104

	ALWestID    = 200
	ALEastID    = 201
	ALCentralID = 202
	NLWestID    = 203
	NLEastID    = 204
	NLCentralID = 205
)

// LeagueIDs are the two major leagues queried by the league-wide endpoints.
var LeagueIDs = []int{AmericanLeagueID, NationalLeagueID}

func defaultLeagues() map[int]domain.League {
	al := domain.League{
		ID:           AmericanLeagueID,
		Name:         "American League",
		Abbreviation: "AL",
		ShortName:    "American",
		DivisionIDs:  []int{ALWestID, ALEastID, ALCentralID},
	}
	nl := domain.League{
		ID:           NationalLeagueID,
		Name:         "National League",
		Abbreviation: "NL",
		ShortName:    "National",
		DivisionIDs:  []int{NLWestID, NLEastID, NLCentralID},
	}
	division := func(id int, name, abbrv, short string, parent domain.League) domain.League {
		return domain.League{
			ID:                 id,
			Name:               name,
			Abbreviation:       abbrv,
			ShortName:          short,
			ParentID:           parent.ID,
			ParentName:         parent.Name,
			ParentAbbreviation: parent.Abbreviation,
		}
	}

	return map[int]domain.League{
		al.ID:       al,
		nl.ID:       nl,
		ALWestID:    division(ALWestID, "American League West", "ALW", "AL West", al),
		ALEastID:    division(ALEastID, "American League East", "ALE", "AL East", al),
		ALCentralID: division(ALCentralID, "American League Central", "ALC", "AL Central", al),
		NLWestID:    division(NLWestID, "National League West", "NLW", "NL West", nl),
		NLEastID:    division(NLEastID, "National League East", "NLE", "NL East", nl),
		NLCentralID: division(NLCentralID, "National League Central", "NLC", "NL Central", nl),
	}
}
