package domain

// League describes a league or, when Parent fields are set, a division.
type League struct {
	ID                 int    `json:"mlbam"`
	Name               string `json:"name"`
	Abbreviation       string `json:"abbreviation"`
	ShortName          string `json:"shortName"`
	DivisionIDs        []int  `json:"divisionIds,omitempty"`
	ParentID           int    `json:"parentMlbam,omitempty"`
	ParentName         string `json:"parentName,omitempty"`
	ParentAbbreviation string `json:"parentAbbreviation,omitempty"`
}

// IsDivision reports whether the record is a division of a parent league.
func (l League) IsDivision() bool {
	return l.ParentID != 0
}
