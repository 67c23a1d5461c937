package domain

import (
	"encoding/json"

	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// StatGroup is one of hitting, pitching or fielding.
type StatGroup string

const (
	GroupHitting  StatGroup = "hitting"
	GroupPitching StatGroup = "pitching"
	GroupFielding StatGroup = "fielding"
)

// StatGroups lists the groups in request order.
var StatGroups = []StatGroup{GroupHitting, GroupPitching, GroupFielding}

// Bucket identifies one (group, advanced) slice of a stats response.
type Bucket struct {
	Group    StatGroup
	Advanced bool
}

// StatGroupSet holds the five stat tables of a page.
//
// Fielding is stored with upstream keys and renamed when read through
// Fielding, unless the set was built with original keys kept.
type StatGroupSet struct {
	Hitting     *table.Table
	Pitching    *table.Table
	HittingAdv  *table.Table
	PitchingAdv *table.Table

	fielding     *table.Table
	renames      map[string]string
	keepOriginal bool
}

// NewStatGroupSet assembles a set from per-bucket tables. Buckets without a
// slot in the set (advanced fielding) are ignored.
func NewStatGroupSet(buckets map[Bucket]*table.Table, renames map[string]string, keepOriginal bool) StatGroupSet {
	set := StatGroupSet{
		Hitting:      orEmpty(buckets[Bucket{Group: GroupHitting}]),
		Pitching:     orEmpty(buckets[Bucket{Group: GroupPitching}]),
		HittingAdv:   orEmpty(buckets[Bucket{Group: GroupHitting, Advanced: true}]),
		PitchingAdv:  orEmpty(buckets[Bucket{Group: GroupPitching, Advanced: true}]),
		fielding:     orEmpty(buckets[Bucket{Group: GroupFielding}]),
		renames:      renames,
		keepOriginal: keepOriginal,
	}
	return set
}

// Fielding returns the fielding table with canonical column names.
func (s StatGroupSet) Fielding() *table.Table {
	if s.fielding == nil {
		return table.New()
	}
	if s.keepOriginal || len(s.renames) == 0 {
		return s.fielding.Clone()
	}
	renamed, err := s.fielding.Rename(s.renames)
	if err != nil {
		return s.fielding.Clone()
	}
	return renamed
}

// RawFielding returns the fielding table with upstream column names.
func (s StatGroupSet) RawFielding() *table.Table {
	if s.fielding == nil {
		return table.New()
	}
	return s.fielding.Clone()
}

// Table returns the table for a bucket.
func (s StatGroupSet) Table(b Bucket) *table.Table {
	switch {
	case b.Group == GroupHitting && !b.Advanced:
		return s.Hitting
	case b.Group == GroupHitting:
		return s.HittingAdv
	case b.Group == GroupPitching && !b.Advanced:
		return s.Pitching
	case b.Group == GroupPitching:
		return s.PitchingAdv
	case b.Group == GroupFielding && !b.Advanced:
		return s.Fielding()
	}
	return nil
}

// MarshalJSON exposes the five tables with fielding already renamed.
func (s StatGroupSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]*table.Table{
		"hitting":     s.Hitting,
		"pitching":    s.Pitching,
		"fielding":    s.Fielding(),
		"hittingAdv":  s.HittingAdv,
		"pitchingAdv": s.PitchingAdv,
	})
}

// TeamStats pairs per-player and team-total stat sets.
type TeamStats struct {
	Players StatGroupSet `json:"players"`
	Totals  StatGroupSet `json:"totals"`
}

func orEmpty(t *table.Table) *table.Table {
	if t == nil {
		return table.New()
	}
	return t
}
