package reference

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
)

// LoadTeamsCSV reads a team table with the header
// mlbam,abbreviation,league_mlbam,division_mlbam (any column order).
func LoadTeamsCSV(r io.Reader) (map[int]Team, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("reference: teams csv: %w", err)
	}
	ciID := column(header, "mlbam")
	if ciID < 0 {
		return nil, errors.New("reference: teams csv: missing mlbam column")
	}
	ciAbbrv := column(header, "abbreviation", "abbrv")
	ciLeague := column(header, "league_mlbam")
	ciDivision := column(header, "division_mlbam", "div_mlbam")

	teams := make(map[int]Team, len(rows))
	for i, rec := range rows {
		id, err := strconv.Atoi(field(rec, ciID))
		if err != nil {
			return nil, fmt.Errorf("reference: teams csv line %d: %w", i+2, err)
		}
		teams[id] = Team{
			ID:           id,
			Abbreviation: field(rec, ciAbbrv),
			LeagueID:     atoiOrZero(field(rec, ciLeague)),
			DivisionID:   atoiOrZero(field(rec, ciDivision)),
		}
	}
	return teams, nil
}

// LoadLeaguesCSV reads a league table with the header
// mlbam,name,abbreviation,short_name,parent_mlbam. Rows with a parent are
// divisions; their parent fields and the parents' division lists are filled in.
func LoadLeaguesCSV(r io.Reader) (map[int]domain.League, error) {
	header, rows, err := readCSV(r)
	if err != nil {
		return nil, fmt.Errorf("reference: leagues csv: %w", err)
	}
	ciID := column(header, "mlbam")
	if ciID < 0 {
		return nil, errors.New("reference: leagues csv: missing mlbam column")
	}
	ciName := column(header, "name")
	ciAbbrv := column(header, "abbreviation", "abbrv")
	ciShort := column(header, "short_name", "short")
	ciParent := column(header, "parent_mlbam")

	leagues := make(map[int]domain.League, len(rows))
	for i, rec := range rows {
		id, err := strconv.Atoi(field(rec, ciID))
		if err != nil {
			return nil, fmt.Errorf("reference: leagues csv line %d: %w", i+2, err)
		}
		leagues[id] = domain.League{
			ID:           id,
			Name:         field(rec, ciName),
			Abbreviation: field(rec, ciAbbrv),
			ShortName:    field(rec, ciShort),
			ParentID:     atoiOrZero(field(rec, ciParent)),
		}
	}

	ids := make([]int, 0, len(leagues))
	for id := range leagues {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		l := leagues[id]
		if l.ParentID == 0 {
			continue
		}
		parent, ok := leagues[l.ParentID]
		if !ok {
			continue
		}
		l.ParentName = parent.Name
		l.ParentAbbreviation = parent.Abbreviation
		leagues[id] = l
		parent.DivisionIDs = append(parent.DivisionIDs, id)
		leagues[parent.ID] = parent
	}
	return leagues, nil
}

func readCSV(r io.Reader) ([]string, [][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, nil, err
	}
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}

func column(header []string, names ...string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

func field(rec []string, idx int) string {
	if idx < 0 || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
