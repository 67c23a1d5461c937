package statsapi

import (
	"encoding/json"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// ParseTeamInfo reads the team header and its upcoming games. League and
// division come from the reference tables when known, otherwise from the
// payload.
func ParseTeamInfo(body json.RawMessage, loc *time.Location, ref *reference.Tables) (domain.TeamInfo, *table.Table, error) {
	var payload teamsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return domain.TeamInfo{}, nil, err
	}
	parser := scheduleParser{loc: loc, ref: ref}
	if len(payload.Teams) == 0 {
		return domain.TeamInfo{}, parser.table(nil), nil
	}
	t := payload.Teams[0]

	info := domain.TeamInfo{
		Name: domain.TeamName{
			ID:           t.ID,
			Full:         t.Name,
			Location:     t.LocationName,
			Franchise:    t.FranchiseName,
			Club:         firstNonEmpty(t.ClubName, t.TeamName),
			Short:        t.ShortName,
			Abbreviation: t.Abbreviation,
		},
		League:    resolveLeague(t.League, ref),
		Division:  resolveLeague(t.Division, ref),
		Venue:     mapVenue(t.Venue),
		FirstYear: atoiOrZero(t.FirstYearOfPlay),
		Season:    t.Season,
	}
	return info, parser.table(t.NextGameSchedule), nil
}

func resolveLeague(r *ref, tables *reference.Tables) domain.League {
	if r == nil {
		return domain.League{}
	}
	if l, ok := tables.League(r.ID); ok {
		return l
	}
	return domain.League{ID: r.ID, Name: r.Name, Abbreviation: r.Abbreviation}
}

func mapVenue(v *venueJSON) domain.Venue {
	if v == nil {
		return domain.Venue{}
	}
	out := domain.Venue{ID: v.ID, Name: v.Name}
	if fi := v.FieldInfo; fi != nil {
		out.FieldInfo = domain.FieldInfo{
			Capacity:    fi.Capacity,
			TurfType:    fi.TurfType,
			RoofType:    fi.RoofType,
			LeftLine:    fi.LeftLine,
			LeftCenter:  fi.LeftCenter,
			Center:      fi.Center,
			RightCenter: fi.RightCenter,
			RightLine:   fi.RightLine,
		}
	}
	return out
}
