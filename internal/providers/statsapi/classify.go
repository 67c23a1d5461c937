package statsapi

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
)

var teamPathPattern = regexp.MustCompile(`/teams/\d+`)

// Classify maps a response URL to its endpoint family. It is the fallback
// for responses that arrive without a request tag; the first rule that
// matches wins.
func Classify(rawURL string) (Kind, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return KindUnknown, &providers.ClassificationError{URL: rawURL}
	}
	path := u.Path
	params := u.RawQuery
	isTeam := teamPathPattern.MatchString(path)
	isRoster := strings.Contains(path, "/roster")

	switch {
	case strings.Contains(path, "/schedule"):
		return KindSchedule, nil
	case strings.Contains(path, "/standings"):
		return KindStandings, nil
	case strings.Contains(path, "/stats") && !strings.Contains(path, "/teams/"):
		return KindLeagueStats, nil
	case isRoster && strings.Contains(params, RosterFull):
		return KindFullRoster, nil
	case isRoster && strings.Contains(params, RosterFortyMan):
		return KindFortyManRoster, nil
	case isRoster && strings.Contains(params, RosterActive):
		return KindActiveRoster, nil
	case isTeam && strings.Contains(path, "/stats"):
		return KindTeamStats, nil
	case isTeam && !isRoster:
		return KindTeamInfo, nil
	case strings.Contains(path, "/draft"):
		return KindDraft, nil
	case strings.Contains(path, "/transactions"):
		return KindTransactions, nil
	}
	return KindUnknown, &providers.ClassificationError{URL: rawURL}
}

// resolveKind prefers the request tag and falls back to the URL.
func resolveKind(r Response) (Kind, error) {
	if r.Kind != KindUnknown {
		return r.Kind, nil
	}
	return Classify(r.URL)
}
