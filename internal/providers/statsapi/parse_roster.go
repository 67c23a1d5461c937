package statsapi

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

var rosterColumns = []string{"player_mlbam", "player_name", "pos", "jersey", "status_code", "status_desc"}

// ParseRoster turns a roster payload into one row per player.
func ParseRoster(body json.RawMessage) (*table.Table, error) {
	var payload rosterResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	out := table.New(rosterColumns...)
	for _, entry := range payload.Roster {
		var person ref
		if len(entry.Person) > 0 {
			if err := json.Unmarshal(entry.Person, &person); err != nil {
				return nil, err
			}
		}
		pos := ""
		if entry.Position != nil {
			pos = entry.Position.Abbreviation
		}
		code, desc := "", ""
		if entry.Status != nil {
			code, desc = entry.Status.Code, entry.Status.Description
		}
		r := table.NewRecord()
		r.Set("player_mlbam", idCell(person.ID)).
			Set("player_name", person.name()).
			Set("pos", pos).
			Set("jersey", entry.JerseyNumber).
			Set("status_code", code).
			Set("status_desc", desc)
		out.Append(r)
	}
	return out, nil
}

// ParsePlayerDirectory collects the hydrated people of a full roster payload
// into dir, dropping their stats. Later entries replace earlier ones.
func ParsePlayerDirectory(body json.RawMessage, dir domain.PlayerDirectory) error {
	var payload rosterResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return err
	}
	people, err := rosterPeople(payload.Roster)
	if err != nil {
		return err
	}
	for _, p := range people {
		dir.Add(mapPerson(p))
	}
	return nil
}

// rosterPeople decodes each roster entry's person, filling the position and
// jersey from the entry when the person omits them.
func rosterPeople(entries []rosterEntry) ([]personJSON, error) {
	out := make([]personJSON, 0, len(entries))
	for _, entry := range entries {
		if len(entry.Person) == 0 {
			continue
		}
		var p personJSON
		if err := json.Unmarshal(entry.Person, &p); err != nil {
			return nil, err
		}
		if p.Position == nil {
			p.Position = entry.Position
		}
		if p.JerseyNumber == "" {
			p.JerseyNumber = entry.JerseyNumber
		}
		out = append(out, p)
	}
	return out, nil
}
