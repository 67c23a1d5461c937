package domain

import "github.com/preston-bernstein/mlb-stats-service/internal/table"

// Venue is a ballpark.
type Venue struct {
	ID        int       `json:"mlbam"`
	Name      string    `json:"name"`
	FieldInfo FieldInfo `json:"fieldInfo"`
}

// FieldInfo carries the optional venue(fieldInfo) hydration.
type FieldInfo struct {
	Capacity    int    `json:"capacity,omitempty"`
	TurfType    string `json:"turfType,omitempty"`
	RoofType    string `json:"roofType,omitempty"`
	LeftLine    int    `json:"leftLine,omitempty"`
	LeftCenter  int    `json:"leftCenter,omitempty"`
	Center      int    `json:"center,omitempty"`
	RightCenter int    `json:"rightCenter,omitempty"`
	RightLine   int    `json:"rightLine,omitempty"`
}

// TeamName holds every naming variant the API exposes for a club.
type TeamName struct {
	ID           int    `json:"mlbam"`
	Full         string `json:"full"`
	Location     string `json:"location"`
	Franchise    string `json:"franchise"`
	Club         string `json:"club"`
	Short        string `json:"short"`
	Abbreviation string `json:"abbreviation"`
}

// TeamInfo is the team dossier header.
type TeamInfo struct {
	Name      TeamName `json:"name"`
	League    League   `json:"league"`
	Division  League   `json:"division"`
	Venue     Venue    `json:"venue"`
	FirstYear int      `json:"firstYear"`
	Season    int      `json:"season"`
}

// TeamRosters groups the three roster tables of a team page.
type TeamRosters struct {
	Full     *table.Table `json:"full"`
	FortyMan *table.Table `json:"fortyMan"`
	Active   *table.Table `json:"active"`
}
