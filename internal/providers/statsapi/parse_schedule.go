package statsapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/reference"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
	"github.com/preston-bernstein/mlb-stats-service/internal/timeutil"
)

const (
	noStart       = "-"
	noResult      = "--"
	stateInProg   = "In Progress"
	inningMiddle  = "Middle"
	inningEnd     = "End"
	recapTitle    = "Daily Recap"
	broadcastTV   = "TV"
	languageEN    = "en"
	sideHome      = "home"
	sideAway      = "away"
	officialDTCol = "official_dt"
)

var recapPlaybacks = map[string]bool{"mp4Avc": true, "highBit": true}

var sideColumns = []string{
	"mlbam", "name", "abbrv", "record", "score", "result",
	"runs", "hits", "errors", "lob", "pp_mlbam", "pp_name",
}

// ScheduleColumns lists the schedule table columns in order.
var ScheduleColumns = func() []string {
	cols := []string{
		"game_pk", "game_type", "season", "date_official", "date_scheduled", "date_rescheduled",
		"game_start", "resched_note", "status", "abstract_state", "day_night", "series_desc",
		"inning", "inning_ordinal", "inning_state", "inning_half", "venue_mlbam", "venue_name",
	}
	for _, side := range []string{sideAway, sideHome} {
		for _, c := range sideColumns {
			cols = append(cols, side+"_"+c)
		}
	}
	return append(cols,
		"result", "balls", "strikes", "outs",
		"win_mlbam", "win_name", "loss_mlbam", "loss_name", "save_mlbam", "save_name",
		"up_next_mlbam", "up_next_name", "on_deck_mlbam", "on_deck_name", "in_hole_mlbam", "in_hole_name",
		"away_tv", "away_tv_res", "home_tv", "home_tv_res", "away_radio", "home_radio",
		"recap_url", "recap_avail",
	)
}()

type scheduleParser struct {
	loc *time.Location
	ref *reference.Tables
}

// ParseSchedule turns a schedule payload into one row per game. Start times
// are rendered in loc.
func ParseSchedule(body json.RawMessage, loc *time.Location, ref *reference.Tables) (*table.Table, error) {
	var payload scheduleResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	return scheduleParser{loc: loc, ref: ref}.table(&payload), nil
}

func (p scheduleParser) table(payload *scheduleResponse) *table.Table {
	out := table.New(ScheduleColumns...)
	if payload == nil {
		return out
	}
	for _, d := range payload.Dates {
		for i := range d.Games {
			out.Append(p.row(&d.Games[i]))
		}
	}
	return out
}

func (p scheduleParser) row(g *scheduleGame) *table.Record {
	r := table.NewRecord()
	r.Set("game_pk", g.GamePk).
		Set("game_type", g.GameType).
		Set("season", g.Season).
		Set("date_official", g.OfficialDate).
		Set("date_scheduled", firstNonEmpty(g.RescheduledFromDate, g.OfficialDate)).
		Set("date_rescheduled", g.RescheduleGameDate).
		Set("game_start", p.gameStart(g)).
		Set("resched_note", rescheduleNote(g)).
		Set("status", g.Status.DetailedState).
		Set("abstract_state", g.Status.AbstractGameState).
		Set("day_night", g.DayNight).
		Set("series_desc", g.SeriesDescription)

	ls := g.Linescore
	if ls == nil {
		ls = &linescore{}
	}
	r.Set("inning", optCell(ls.CurrentInning)).
		Set("inning_ordinal", ls.CurrentInningOrdinal).
		Set("inning_state", ls.InningState).
		Set("inning_half", ls.InningHalf).
		Set("venue_mlbam", idCell(g.Venue.id())).
		Set("venue_name", g.Venue.name())

	// The away side is written last, so result holds its letter.
	var result string
	for _, side := range []string{sideHome, sideAway} {
		result = p.setSide(r, side, g, ls)
	}
	r.Set("result", result)

	r.Set("balls", optCell(ls.Balls)).
		Set("strikes", optCell(ls.Strikes)).
		Set("outs", optCell(ls.Outs))

	dec := g.Decisions
	if dec == nil {
		dec = &decisions{}
	}
	setPerson(r, "win", dec.Winner)
	setPerson(r, "loss", dec.Loser)
	setPerson(r, "save", dec.Save)

	upNext, onDeck, inHole := lookAhead(g, ls)
	setPerson(r, "up_next", upNext)
	setPerson(r, "on_deck", onDeck)
	setPerson(r, "in_hole", inHole)

	media := broadcastsFor(g.Broadcasts)
	r.Set("away_tv", media.tv[sideAway]).
		Set("away_tv_res", media.tvRes[sideAway]).
		Set("home_tv", media.tv[sideHome]).
		Set("home_tv_res", media.tvRes[sideHome]).
		Set("away_radio", media.radio[sideAway]).
		Set("home_radio", media.radio[sideHome])

	recapURL, recapAvail := recap(g.Content)
	r.Set("recap_url", recapURL).Set("recap_avail", recapAvail)
	return r
}

// setSide fills the away_ or home_ columns and returns the side's result letter.
func (p scheduleParser) setSide(r *table.Record, side string, g *scheduleGame, ls *linescore) string {
	t := g.Teams.Away
	if side == sideHome {
		t = g.Teams.Home
	}

	abbrv := t.Team.Abbreviation
	if abbrv == "" {
		if team, ok := p.ref.Team(t.Team.ID); ok {
			abbrv = team.Abbreviation
		}
	}
	record := ""
	if t.LeagueRecord != nil {
		record = strconv.Itoa(t.LeagueRecord.Wins) + "-" + strconv.Itoa(t.LeagueRecord.Losses)
	}
	result := noResult
	if t.IsWinner != nil {
		if *t.IsWinner {
			result = "W"
		} else {
			result = "L"
		}
	}
	totals := sumInnings(ls.Innings, side)

	prefix := side + "_"
	r.Set(prefix+"mlbam", idCell(t.Team.ID)).
		Set(prefix+"name", t.Team.name()).
		Set(prefix+"abbrv", abbrv).
		Set(prefix+"record", record).
		Set(prefix+"score", strconv.Itoa(orDefault(t.Score, 0))).
		Set(prefix+"result", result).
		Set(prefix+"runs", totals.runs).
		Set(prefix+"hits", totals.hits).
		Set(prefix+"errors", totals.errors).
		Set(prefix+"lob", totals.lob).
		Set(prefix+"pp_mlbam", idCell(t.ProbablePitcher.id())).
		Set(prefix+"pp_name", t.ProbablePitcher.name())
	return result
}

type lineTotals struct {
	runs, hits, errors, lob int
}

func sumInnings(innings []inning, side string) lineTotals {
	var out lineTotals
	for _, inn := range innings {
		line := inn.Away
		if side == sideHome {
			line = inn.Home
		}
		out.runs += orDefault(line.Runs, 0)
		out.hits += orDefault(line.Hits, 0)
		out.errors += orDefault(line.Errors, 0)
		out.lob += orDefault(line.LeftOnBase, 0)
	}
	return out
}

func (p scheduleParser) gameStart(g *scheduleGame) string {
	if g.RescheduleDate != "" {
		if t, err := time.Parse(time.RFC3339, g.RescheduleDate); err == nil {
			return timeutil.FormatClock(t, p.loc)
		}
		return g.RescheduleDate
	}
	if !strings.HasSuffix(g.GameDate, "Z") {
		return noStart
	}
	t, err := time.Parse(time.RFC3339, g.GameDate)
	if err != nil {
		return noStart
	}
	return timeutil.FormatClock(t, p.loc)
}

func rescheduleNote(g *scheduleGame) string {
	switch {
	case g.RescheduleGameDate != "" && g.RescheduledFromDate == "":
		return "PP Date " + g.RescheduleGameDate
	case g.RescheduledFromDate != "" && g.RescheduleGameDate == "":
		return "Makeup " + g.RescheduledFromDate
	}
	return ""
}

func setPerson(r *table.Record, prefix string, p *ref) {
	r.Set(prefix+"_mlbam", idCell(p.id())).Set(prefix+"_name", p.name())
}

// lookAhead returns the next three batters. Between half innings of a live
// game the ids come from the defense block and the names from a lineup.
func lookAhead(g *scheduleGame, ls *linescore) (upNext, onDeck, inHole *ref) {
	between := ls.InningState == inningMiddle || ls.InningState == inningEnd
	if g.Status.DetailedState == stateInProg && between && ls.Defense != nil {
		var players []ref
		if g.Lineups != nil {
			if ls.InningState == inningMiddle {
				players = g.Lineups.AwayPlayers
			} else {
				players = g.Lineups.HomePlayers
			}
		}
		named := func(p *ref) *ref {
			if p == nil {
				return nil
			}
			out := *p
			for _, candidate := range players {
				if candidate.ID == p.ID {
					out.FullName = candidate.name()
					break
				}
			}
			return &out
		}
		return named(ls.Defense.Batter), named(ls.Defense.OnDeck), named(ls.Defense.InHole)
	}
	if ls.Offense == nil {
		return nil, nil, nil
	}
	return ls.Offense.Batter, ls.Offense.OnDeck, ls.Offense.InHole
}

type broadcastColumns struct {
	tv    map[string]string
	tvRes map[string]string
	radio map[string]string
}

func broadcastsFor(list []broadcast) broadcastColumns {
	out := broadcastColumns{
		tv:    map[string]string{},
		tvRes: map[string]string{},
		radio: map[string]string{},
	}
	for _, b := range list {
		if b.Language != "" && b.Language != languageEN {
			continue
		}
		side := b.HomeAway
		if side != sideHome && side != sideAway {
			continue
		}
		if b.Type == broadcastTV {
			out.tv[side] = joinName(out.tv[side], b.Name)
			if out.tvRes[side] == "" && b.VideoResolution != nil {
				out.tvRes[side] = b.VideoResolution.ResolutionShort
			}
			continue
		}
		out.radio[side] = joinName(out.radio[side], b.Name)
	}
	return out
}

func joinName(existing, name string) string {
	if existing == "" {
		return name
	}
	if name == "" {
		return existing
	}
	return existing + ", " + name
}

func recap(content *gameContent) (string, bool) {
	if content == nil || content.Media == nil {
		return "", false
	}
	for _, epg := range content.Media.EpgAlternate {
		if epg.Title != recapTitle {
			continue
		}
		for _, item := range epg.Items {
			for _, pb := range item.Playbacks {
				if recapPlaybacks[pb.Name] {
					return pb.URL, true
				}
			}
		}
	}
	return "", false
}

// withOfficialTime returns a copy of a schedule table with official_dt
// inserted as its first column: date_official and game_start parsed together
// in loc, or nil when either is missing.
func withOfficialTime(t *table.Table, loc *time.Location) *table.Table {
	if loc == nil {
		loc = time.UTC
	}
	values := make([]any, t.Len())
	for i := range values {
		values[i] = officialTime(t.String(i, "date_official"), t.String(i, "game_start"), loc)
	}
	out, err := t.InsertColumn(0, officialDTCol, values)
	if err != nil {
		return t
	}
	return out
}

func officialTime(date, start string, loc *time.Location) any {
	if date == "" || start == "" || start == noStart {
		return nil
	}
	parsed, err := time.ParseInLocation(timeutil.DateClockLayout, date+" "+start, loc)
	if err != nil {
		return nil
	}
	return parsed
}
