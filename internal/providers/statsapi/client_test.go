package statsapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/mlb-stats-service/internal/domain"
	"github.com/preston-bernstein/mlb-stats-service/internal/providers"
	"github.com/preston-bernstein/mlb-stats-service/internal/testutil"
)

func newTestClient(t *testing.T, httpClient *http.Client, now time.Time) *Client {
	t.Helper()
	client := NewClient(Config{
		BaseURL:    testBase,
		HTTPClient: httpClient,
		Timezone:   "America/New_York",
	})
	client.now = testutil.NowAt(now)
	return client
}

type urlRecorder struct {
	mu   sync.Mutex
	urls []string
}

func (r *urlRecorder) wrap(next http.RoundTripper) http.RoundTripper {
	return roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		r.mu.Lock()
		r.urls = append(r.urls, req.URL.String())
		r.mu.Unlock()
		return next.RoundTrip(req)
	})
}

func (r *urlRecorder) find(substr string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.urls {
		if strings.Contains(u, substr) {
			return u
		}
	}
	return ""
}

func TestScheduleDefaultsToToday(t *testing.T) {
	rec := &urlRecorder{}
	httpClient := routeFixtures(t, homeFixtures())
	httpClient.Transport = rec.wrap(httpClient.Transport)
	// 02:00 UTC is still the previous evening in New York.
	client := newTestClient(t, httpClient, time.Date(2023, 4, 16, 2, 0, 0, 0, time.UTC))

	out, err := client.Schedule(context.Background(), domain.ScheduleQuery{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 3 {
		t.Fatalf("expected 3 games, got %d", out.Len())
	}
	if rec.find("date=2023-04-15") == "" {
		t.Fatalf("expected request for local date, got %v", rec.urls)
	}
	if got := client.ScheduleURL(domain.ScheduleQuery{}); !strings.Contains(got, "date=2023-04-15") {
		t.Fatalf("unexpected schedule url %s", got)
	}
}

func TestSeasonStandingsDefaultsToCurrentSeason(t *testing.T) {
	rec := &urlRecorder{}
	httpClient := routeFixtures(t, homeFixtures())
	httpClient.Transport = rec.wrap(httpClient.Transport)
	client := newTestClient(t, httpClient, time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC))

	out, err := client.SeasonStandings(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() != 1 {
		t.Fatalf("expected 1 row, got %d", out.Len())
	}
	if rec.find("season=2023") == "" {
		t.Fatalf("expected previous season before March, got %v", rec.urls)
	}
	if got := client.StandingsURL(2021); !strings.Contains(got, "season=2021") {
		t.Fatalf("expected explicit season, got %s", got)
	}
}

func TestLeagueStatsRenamesColumns(t *testing.T) {
	client := newTestClient(t, routeFixtures(t, homeFixtures()), time.Date(2023, 7, 4, 12, 0, 0, 0, time.UTC))

	set, err := client.LeagueStats(context.Background(), 2023)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !set.Hitting.HasColumn("HR") || !set.Fielding().HasColumn("E") {
		t.Fatalf("expected renamed columns, got %v / %v", set.Hitting.Columns(), set.Fielding().Columns())
	}
	if got := client.LeagueStatsURL(2023); !strings.Contains(got, "/stats?") {
		t.Fatalf("unexpected url %s", got)
	}
}

func TestSingleEndpointDecodeError(t *testing.T) {
	client := newTestClient(t, routeFixtures(t, map[string]string{"standings": `{"records": 5}`}), time.Now())

	_, err := client.SeasonStandings(context.Background(), 2023)
	if !providers.IsDecodeError(err) {
		t.Fatalf("expected decode error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "statsapi: standings:") {
		t.Fatalf("expected operation prefix, got %q", err.Error())
	}
}

func TestHomePageAssemblesAllParts(t *testing.T) {
	rec := &urlRecorder{}
	httpClient := routeFixtures(t, homeFixtures())
	httpClient.Transport = rec.wrap(httpClient.Transport)
	client := newTestClient(t, httpClient, testutil.MustParseRFC3339("2023-04-15T16:00:00Z"))

	page, err := client.HomePage(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Date.String() != "2023-04-15" {
		t.Fatalf("unexpected date %s", page.Date)
	}
	if cols := page.Schedule.Columns(); cols[0] != officialDTCol {
		t.Fatalf("expected %s first, got %v", officialDTCol, cols[0])
	}
	if page.Schedule.Len() != 3 || page.Standings.Len() != 1 {
		t.Fatalf("unexpected sizes schedule=%d standings=%d", page.Schedule.Len(), page.Standings.Len())
	}
	if page.Stats.Hitting.Len() != 2 || !page.Stats.PitchingAdv.Empty() {
		t.Fatalf("unexpected stats hitting=%d pitchingAdv=%d", page.Stats.Hitting.Len(), page.Stats.PitchingAdv.Len())
	}
	if rec.find("broadcasts(all)") == "" || rec.find("/standings?") == "" {
		t.Fatalf("unexpected requests %v", rec.urls)
	}
	if _, err := json.Marshal(page); err != nil {
		t.Fatalf("page does not encode: %v", err)
	}
}

func TestHomePageFailsWhenAnyRequestFails(t *testing.T) {
	bodies := homeFixtures()
	delete(bodies, "standings")
	client := newTestClient(t, routeFixtures(t, bodies), time.Date(2023, 4, 15, 16, 0, 0, 0, time.UTC))

	_, err := client.HomePage(context.Background())
	statusErr, ok := providers.AsStatusError(err)
	if !ok || statusErr.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 status error, got %v", err)
	}
}

func TestTeamPageAssemblesDossier(t *testing.T) {
	rec := &urlRecorder{}
	httpClient := routeFixtures(t, teamBundleFixtures())
	httpClient.Transport = rec.wrap(httpClient.Transport)
	client := newTestClient(t, httpClient, time.Now())

	page, err := client.TeamPage(context.Background(), 147, domain.TeamPageOptions{Date: domain.MustParseMlbDate("2023-07-04")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rec.urls) != 9 {
		t.Fatalf("expected 9 requests, got %d", len(rec.urls))
	}
	if rec.find("startDate=2023-06-04&endDate=2023-07-04") == "" {
		t.Fatalf("expected 30-day transactions window, got %v", rec.urls)
	}
	if page.Date.String() != "2023-07-04" || len(page.Warnings) != 0 {
		t.Fatalf("unexpected page header %s %v", page.Date, page.Warnings)
	}

	if len(page.Players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(page.Players))
	}
	if _, ok := page.Players.Get(543037); !ok {
		t.Fatal("expected pitcher in directory")
	}
	if page.Rosters.Full.Len() != 2 || page.Rosters.FortyMan.Len() != 3 || page.Rosters.Active.Len() != 2 {
		t.Fatalf("unexpected roster sizes %d/%d/%d", page.Rosters.Full.Len(), page.Rosters.FortyMan.Len(), page.Rosters.Active.Len())
	}

	players := page.Stats.Players
	if players.Hitting.Len() != 3 || players.HittingAdv.Len() != 1 || players.Pitching.Len() != 1 {
		t.Fatalf("unexpected player stat sizes %d/%d/%d", players.Hitting.Len(), players.HittingAdv.Len(), players.Pitching.Len())
	}
	if !players.Pitching.HasColumn("ERA") || !players.Fielding().HasColumn("FPCT") {
		t.Fatalf("expected renamed player stats, got %v / %v", players.Pitching.Columns(), players.Fielding().Columns())
	}
	if got, _ := page.Stats.Totals.Hitting.Value(0, "team_mlbam"); got != 147 {
		t.Fatalf("expected team totals tagged with team id, got %v", got)
	}

	if page.Team.Name.Abbreviation != "NYY" || page.NextGames.Len() != 1 {
		t.Fatalf("unexpected team info %+v next=%d", page.Team.Name, page.NextGames.Len())
	}
	if !strings.Contains(string(page.Draft), `"draftYear"`) {
		t.Fatalf("expected raw draft payload, got %s", page.Draft)
	}
	if got := page.Transactions.Column("transaction_id"); len(got) != 3 || got[0] != 2 {
		t.Fatalf("unexpected transactions %v", got)
	}
	if _, err := json.Marshal(page); err != nil {
		t.Fatalf("page does not encode: %v", err)
	}
}

func TestTeamPageFailsWholeBundleByDefault(t *testing.T) {
	bodies := teamBundleFixtures()
	delete(bodies, "draft")
	client := newTestClient(t, routeFixtures(t, bodies), time.Now())

	_, err := client.TeamPage(context.Background(), 147, domain.TeamPageOptions{Date: domain.MustParseMlbDate("2023-07-04")})
	if _, ok := providers.AsStatusError(err); !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if !strings.Contains(err.Error(), "team page 147") {
		t.Fatalf("expected team context in %q", err.Error())
	}
}

func TestTeamPageAllowPartialReportsWarnings(t *testing.T) {
	bodies := teamBundleFixtures()
	delete(bodies, "draft")
	bodies["transactions"] = `{"transactions": "broken"}`
	client := newTestClient(t, routeFixtures(t, bodies), time.Now())

	page, err := client.TeamPage(context.Background(), 147, domain.TeamPageOptions{
		Date:         domain.MustParseMlbDate("2023-07-04"),
		AllowPartial: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %v", page.Warnings)
	}
	if page.Draft != nil {
		t.Fatalf("expected no draft payload, got %s", page.Draft)
	}
	if page.Transactions == nil || page.Transactions.Len() != 0 {
		t.Fatal("expected empty transactions table")
	}
	if page.Rosters.Active.Len() != 2 {
		t.Fatalf("expected surviving parts, got active=%d", page.Rosters.Active.Len())
	}
}

func TestTeamPageAllowPartialSurfacesCallerCancellation(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		<-req.Context().Done()
		return nil, req.Context().Err()
	})
	client := newTestClient(t, &http.Client{Transport: rt}, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	page, err := client.TeamPage(ctx, 112, domain.TeamPageOptions{
		Date:         domain.MustParseMlbDate("2023-07-04"),
		AllowPartial: true,
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if !strings.Contains(err.Error(), "team page 112") {
		t.Fatalf("expected team context in %q", err.Error())
	}
	if page.Warnings != nil || page.Rosters.Full != nil {
		t.Fatalf("expected empty page on cancellation, got %+v", page)
	}
}

func TestTeamPageURLsDefaultSeasonFromDate(t *testing.T) {
	client := newTestClient(t, nil, time.Now())
	urls := client.TeamPageURLs(147, domain.TeamPageOptions{Date: domain.MustParseMlbDate("2024-02-10")})
	if len(urls) != 9 {
		t.Fatalf("expected 9 urls, got %d", len(urls))
	}
	if !strings.Contains(urls[0], "season=2023") {
		t.Fatalf("expected previous season in winter, got %s", urls[0])
	}
	if !strings.HasSuffix(urls[8], "endDate=2024-02-10") {
		t.Fatalf("unexpected transactions url %s", urls[8])
	}

	urls = client.TeamPageURLs(147, domain.TeamPageOptions{Date: domain.MustParseMlbDate("2024-02-10"), Season: 2020})
	if !strings.Contains(urls[7], "/draft/2020") {
		t.Fatalf("expected explicit season, got %s", urls[7])
	}
}

func TestClientRecordsFetchMetrics(t *testing.T) {
	rec, shutdown := testutil.NewRecorderWithShutdown()
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("unexpected shutdown error: %v", err)
		}
	}()
	client := NewClient(Config{
		BaseURL:    testBase,
		HTTPClient: routeFixtures(t, homeFixtures()),
		Metrics:    rec,
	})
	if _, err := client.SeasonStandings(context.Background(), 2023); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rec.FetchCalls(KindStandings.String()); got != 1 {
		t.Fatalf("expected 1 standings fetch, got %d", got)
	}
}
