package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/table"
)

// StubPageProvider serves canned pages and records what it was asked for.
// A non-nil Err is returned from every call.
type StubPageProvider struct {
	Home      domain.HomePageContent
	Team      domain.TeamPageContent
	Games     *table.Table
	Standings *table.Table
	Stats     domain.StatGroupSet
	Err       error

	mu           sync.Mutex
	Calls        int
	LastTeamID   int
	LastTeamOpts domain.TeamPageOptions
	LastSchedule domain.ScheduleQuery
	LastSeason   int
}

func (p *StubPageProvider) HomePage(ctx context.Context) (domain.HomePageContent, error) {
	_ = ctx
	p.record(func() {})
	if p.Err != nil {
		return domain.HomePageContent{}, p.Err
	}
	return p.Home, nil
}

func (p *StubPageProvider) TeamPage(ctx context.Context, teamID int, opts domain.TeamPageOptions) (domain.TeamPageContent, error) {
	_ = ctx
	p.record(func() {
		p.LastTeamID = teamID
		p.LastTeamOpts = opts
	})
	if p.Err != nil {
		return domain.TeamPageContent{}, p.Err
	}
	return p.Team, nil
}

func (p *StubPageProvider) Schedule(ctx context.Context, q domain.ScheduleQuery) (*table.Table, error) {
	_ = ctx
	p.record(func() { p.LastSchedule = q })
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Games, nil
}

func (p *StubPageProvider) SeasonStandings(ctx context.Context, season int) (*table.Table, error) {
	_ = ctx
	p.record(func() { p.LastSeason = season })
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Standings, nil
}

func (p *StubPageProvider) LeagueStats(ctx context.Context, season int) (domain.StatGroupSet, error) {
	_ = ctx
	p.record(func() { p.LastSeason = season })
	if p.Err != nil {
		return domain.StatGroupSet{}, p.Err
	}
	return p.Stats, nil
}

// CallCount returns how many provider methods have been called.
func (p *StubPageProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Calls
}

func (p *StubPageProvider) record(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Calls++
	fn()
}
