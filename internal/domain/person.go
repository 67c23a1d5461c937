package domain

import "strconv"

// Position is a fielding position.
type Position struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

// Dexterity is a bat side or throwing hand.
type Dexterity struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// PersonName carries every name variant of a person.
type PersonName struct {
	ID            int    `json:"mlbam"`
	Full          string `json:"full"`
	Given         string `json:"given"`
	First         string `json:"first"`
	Middle        string `json:"middle"`
	Last          string `json:"last"`
	Nick          string `json:"nick"`
	Pronunciation string `json:"pronunciation"`
}

// PersonEvent is a dated life event such as a birth.
type PersonEvent struct {
	City    string  `json:"city"`
	State   string  `json:"state"`
	Country string  `json:"country"`
	Date    MlbDate `json:"date"`
}

// Person is a player, coach or other individual known to the API.
type Person struct {
	ID           int         `json:"mlbam"`
	Name         PersonName  `json:"name"`
	Age          int         `json:"age"`
	Birth        PersonEvent `json:"birth"`
	BatSide      Dexterity   `json:"batSide"`
	PitchHand    Dexterity   `json:"pitchHand"`
	Position     Position    `json:"position"`
	IsPlayer     bool        `json:"isPlayer"`
	Active       bool        `json:"active"`
	DraftYear    int         `json:"draftYear"`
	Height       string      `json:"height"`
	Weight       int         `json:"weight"`
	JerseyNumber string      `json:"jerseyNumber"`
}

// PlayerDirectory indexes people by "ID"+mlbam.
type PlayerDirectory map[string]Person

// DirectoryKey returns the directory key for an mlbam id.
func DirectoryKey(id int) string {
	return "ID" + strconv.Itoa(id)
}

// Add inserts p, replacing any earlier entry with the same id.
func (d PlayerDirectory) Add(p Person) {
	d[DirectoryKey(p.ID)] = p
}

// Get looks a person up by mlbam id.
func (d PlayerDirectory) Get(id int) (Person, bool) {
	p, ok := d[DirectoryKey(id)]
	return p, ok
}
