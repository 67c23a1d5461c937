package statsapi

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
)

// ParsePerson builds a Person from a people entry.
func ParsePerson(body json.RawMessage) (domain.Person, error) {
	var p personJSON
	if err := json.Unmarshal(body, &p); err != nil {
		return domain.Person{}, err
	}
	return mapPerson(p), nil
}

func mapPerson(p personJSON) domain.Person {
	pos := p.Position
	if pos == nil {
		pos = p.PrimaryPosition
	}
	isPlayer := true
	if p.IsPlayer != nil {
		isPlayer = *p.IsPlayer
	}
	age := orDefault(p.CurrentAge, orDefault(p.Age, 0))
	birthDate, _ := domain.ParseMlbDate(p.BirthDate)

	return domain.Person{
		ID: p.ID,
		Name: domain.PersonName{
			ID:            p.ID,
			Full:          p.FullName,
			Given:         firstNonEmpty(p.UseName, p.FirstName),
			First:         p.FirstName,
			Middle:        p.MiddleName,
			Last:          p.LastName,
			Nick:          p.NickName,
			Pronunciation: p.Pronunciation,
		},
		Age: age,
		Birth: domain.PersonEvent{
			City:    p.BirthCity,
			State:   p.BirthStateProvince,
			Country: p.BirthCountry,
			Date:    birthDate,
		},
		BatSide:      mapDexterity(p.BatSide),
		PitchHand:    mapDexterity(p.PitchHand),
		Position:     mapPosition(pos),
		IsPlayer:     isPlayer,
		Active:       p.Active,
		DraftYear:    p.DraftYear,
		Height:       p.Height,
		Weight:       p.Weight,
		JerseyNumber: firstNonEmpty(p.PrimaryNumber, p.JerseyNumber),
	}
}

func mapDexterity(d *dexterityJSON) domain.Dexterity {
	if d == nil {
		return domain.Dexterity{}
	}
	return domain.Dexterity{Code: d.Code, Description: d.Description}
}

func mapPosition(p *positionJSON) domain.Position {
	if p == nil {
		return domain.Position{}
	}
	return domain.Position{
		Code:         p.Code,
		Name:         p.Name,
		Type:         p.Type,
		Abbreviation: p.Abbreviation,
	}
}
