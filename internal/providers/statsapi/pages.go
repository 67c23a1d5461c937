package statsapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
	"github.com/preston-bernstein/mlb-stats-service/internal/timeutil"
)

// HomePage fetches today's schedule, current standings and league stats in
// one fan-out. The schedule table starts with an official_dt column.
func (c *Client) HomePage(ctx context.Context) (domain.HomePageContent, error) {
	date := c.today()
	season := timeutil.CurrentSeason(date.Time())
	reqs := []Request{
		c.urls.HomeSchedule(date),
		c.urls.Standings(season),
		c.urls.LeagueStats(season),
	}

	resps, err := c.fetcher.Fetch(ctx, reqs)
	if err != nil {
		return domain.HomePageContent{}, fmt.Errorf("statsapi: home page: %w", err)
	}

	content := domain.HomePageContent{
		Date:      date,
		Schedule:  withOfficialTime(table.New(ScheduleColumns...), c.loc),
		Standings: table.New(),
	}
	var statParts []map[domain.Bucket]*table.Table
	for _, resp := range resps {
		kind, err := resolveKind(resp)
		if err != nil {
			return domain.HomePageContent{}, fmt.Errorf("statsapi: home page: %w", err)
		}
		switch kind {
		case KindSchedule:
			t, err := ParseSchedule(resp.Body, c.loc, c.ref)
			if err != nil {
				return domain.HomePageContent{}, homeDecodeError(resp, err)
			}
			content.Schedule = withOfficialTime(t, c.loc)
		case KindStandings:
			t, err := ParseStandings(resp.Body, c.ref)
			if err != nil {
				return domain.HomePageContent{}, homeDecodeError(resp, err)
			}
			content.Standings = t
		case KindLeagueStats:
			buckets, err := ParseStats(kind, resp.Body, c.statsOptions(0))
			if err != nil {
				return domain.HomePageContent{}, homeDecodeError(resp, err)
			}
			statParts = append(statParts, buckets)
		default:
			return domain.HomePageContent{}, fmt.Errorf("statsapi: home page: %w", &providers.ClassificationError{URL: resp.URL})
		}
	}
	content.Stats = c.statGroupSet(concatBuckets(statParts, false))
	return content, nil
}

func homeDecodeError(resp Response, err error) error {
	return fmt.Errorf("statsapi: home page: %w", &providers.DecodeError{URL: resp.URL, Err: err})
}

// TeamPage fetches the nine-request team bundle and assembles the dossier.
func (c *Client) TeamPage(ctx context.Context, teamID int, opts domain.TeamPageOptions) (domain.TeamPageContent, error) {
	date, season := c.teamPageScope(opts)
	reqs := c.urls.TeamBundle(teamID, date, season)
	page := newTeamPage(c, teamID, date)

	if !opts.AllowPartial {
		resps, err := c.fetcher.Fetch(ctx, reqs)
		if err != nil {
			return domain.TeamPageContent{}, fmt.Errorf("statsapi: team page %d: %w", teamID, err)
		}
		for _, resp := range resps {
			if err := page.absorb(resp); err != nil {
				return domain.TeamPageContent{}, fmt.Errorf("statsapi: team page %d: %w", teamID, err)
			}
		}
		return page.content(), nil
	}

	results := c.fetcher.FetchEach(ctx, reqs)
	// Partial pages tolerate upstream failures, not the caller giving up.
	if err := ctx.Err(); err != nil {
		return domain.TeamPageContent{}, fmt.Errorf("statsapi: team page %d: %w", teamID, err)
	}
	for _, res := range results {
		if res.Err != nil {
			page.warn(res.Err)
			continue
		}
		if err := page.absorb(res.Response); err != nil {
			page.warn(err)
		}
	}
	return page.content(), nil
}

// teamPage accumulates parsed responses in fetch order.
type teamPage struct {
	client  *Client
	teamID  int
	date    domain.MlbDate
	players domain.PlayerDirectory
	rosters domain.TeamRosters

	playerParts []map[domain.Bucket]*table.Table
	totalParts  []map[domain.Bucket]*table.Table

	info         domain.TeamInfo
	nextGames    *table.Table
	draft        json.RawMessage
	transactions *table.Table
	warnings     []string
}

func newTeamPage(c *Client, teamID int, date domain.MlbDate) *teamPage {
	return &teamPage{
		client:  c,
		teamID:  teamID,
		date:    date,
		players: domain.PlayerDirectory{},
	}
}

func (p *teamPage) absorb(resp Response) error {
	kind, err := resolveKind(resp)
	if err != nil {
		return err
	}
	if err := p.parse(kind, resp); err != nil {
		return &providers.DecodeError{URL: resp.URL, Err: err}
	}
	return nil
}

func (p *teamPage) parse(kind Kind, resp Response) error {
	c := p.client
	switch kind {
	case KindFullRoster:
		if p.rosters.Full == nil {
			t, err := ParseRoster(resp.Body)
			if err != nil {
				return err
			}
			p.rosters.Full = t
		}
		if err := ParsePlayerDirectory(resp.Body, p.players); err != nil {
			return err
		}
		buckets, err := ParseStats(kind, resp.Body, c.statsOptions(p.teamID))
		if err != nil {
			return err
		}
		p.playerParts = append(p.playerParts, buckets)
	case KindFortyManRoster:
		t, err := ParseRoster(resp.Body)
		if err != nil {
			return err
		}
		p.rosters.FortyMan = t
	case KindActiveRoster:
		t, err := ParseRoster(resp.Body)
		if err != nil {
			return err
		}
		p.rosters.Active = t
	case KindTeamStats:
		buckets, err := ParseStats(kind, resp.Body, c.statsOptions(p.teamID))
		if err != nil {
			return err
		}
		p.totalParts = append(p.totalParts, buckets)
	case KindTeamInfo:
		info, next, err := ParseTeamInfo(resp.Body, c.loc, c.ref)
		if err != nil {
			return err
		}
		p.info, p.nextGames = info, next
	case KindDraft:
		p.draft = resp.Body
	case KindTransactions:
		t, err := ParseTransactions(resp.Body)
		if err != nil {
			return err
		}
		p.transactions = t
	default:
		return &providers.ClassificationError{URL: resp.URL}
	}
	return nil
}

func (p *teamPage) warn(err error) {
	p.warnings = append(p.warnings, err.Error())
}

func (p *teamPage) content() domain.TeamPageContent {
	c := p.client
	return domain.TeamPageContent{
		Players: p.players,
		Stats: domain.TeamStats{
			Players: c.statGroupSet(concatBuckets(p.playerParts, true)),
			Totals:  c.statGroupSet(concatBuckets(p.totalParts, true)),
		},
		Rosters: domain.TeamRosters{
			Full:     orEmptyTable(p.rosters.Full, rosterColumns),
			FortyMan: orEmptyTable(p.rosters.FortyMan, rosterColumns),
			Active:   orEmptyTable(p.rosters.Active, rosterColumns),
		},
		Team:         p.info,
		NextGames:    orEmptyTable(p.nextGames, ScheduleColumns),
		Draft:        p.draft,
		Transactions: orEmptyTable(p.transactions, transactionColumns),
		Date:         p.date,
		Warnings:     p.warnings,
	}
}

func orEmptyTable(t *table.Table, columns []string) *table.Table {
	if t == nil {
		return table.New(columns...)
	}
	return t
}
