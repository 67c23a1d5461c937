package statsapi

import "encoding/json"

// Response payloads. Every field is optional: absent members decode to zero
// values or nil pointers and the parsers substitute column defaults.

type ref struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Abbreviation string `json:"abbreviation"`
	Link         string `json:"link"`
}

func (r *ref) id() int {
	if r == nil {
		return 0
	}
	return r.ID
}

func (r *ref) name() string {
	if r == nil {
		return ""
	}
	return firstNonEmpty(r.FullName, r.Name)
}

type displayName struct {
	DisplayName string `json:"displayName"`
}

// schedule

type scheduleResponse struct {
	Dates []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Date  string         `json:"date"`
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk              int          `json:"gamePk"`
	GameType            string       `json:"gameType"`
	Season              string       `json:"season"`
	GameDate            string       `json:"gameDate"`
	OfficialDate        string       `json:"officialDate"`
	RescheduleDate      string       `json:"rescheduleDate"`
	RescheduleGameDate  string       `json:"rescheduleGameDate"`
	RescheduledFromDate string       `json:"rescheduledFromDate"`
	DayNight            string       `json:"dayNight"`
	SeriesDescription   string       `json:"seriesDescription"`
	Status              gameStatus   `json:"status"`
	Teams               gameTeams    `json:"teams"`
	Linescore           *linescore   `json:"linescore"`
	Venue               *ref         `json:"venue"`
	Decisions           *decisions   `json:"decisions"`
	Lineups             *lineups     `json:"lineups"`
	Broadcasts          []broadcast  `json:"broadcasts"`
	Content             *gameContent `json:"content"`
}

type gameStatus struct {
	AbstractGameState string `json:"abstractGameState"`
	DetailedState     string `json:"detailedState"`
	StatusCode        string `json:"statusCode"`
}

type gameTeams struct {
	Away gameTeam `json:"away"`
	Home gameTeam `json:"home"`
}

type gameTeam struct {
	Score           *int          `json:"score"`
	IsWinner        *bool         `json:"isWinner"`
	LeagueRecord    *leagueRecord `json:"leagueRecord"`
	Team            ref           `json:"team"`
	ProbablePitcher *ref          `json:"probablePitcher"`
}

type leagueRecord struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Pct    string `json:"pct"`
}

type linescore struct {
	CurrentInning        *int             `json:"currentInning"`
	CurrentInningOrdinal string           `json:"currentInningOrdinal"`
	InningState          string           `json:"inningState"`
	InningHalf           string           `json:"inningHalf"`
	Innings              []inning         `json:"innings"`
	Balls                *int             `json:"balls"`
	Strikes              *int             `json:"strikes"`
	Outs                 *int             `json:"outs"`
	Offense              *battingPosition `json:"offense"`
	Defense              *battingPosition `json:"defense"`
}

type inning struct {
	Num  int        `json:"num"`
	Home inningLine `json:"home"`
	Away inningLine `json:"away"`
}

type inningLine struct {
	Runs       *int `json:"runs"`
	Hits       *int `json:"hits"`
	Errors     *int `json:"errors"`
	LeftOnBase *int `json:"leftOnBase"`
}

type battingPosition struct {
	Batter *ref `json:"batter"`
	OnDeck *ref `json:"onDeck"`
	InHole *ref `json:"inHole"`
}

type decisions struct {
	Winner *ref `json:"winner"`
	Loser  *ref `json:"loser"`
	Save   *ref `json:"save"`
}

type lineups struct {
	AwayPlayers []ref `json:"awayPlayers"`
	HomePlayers []ref `json:"homePlayers"`
}

type broadcast struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	Type            string           `json:"type"`
	Language        string           `json:"language"`
	HomeAway        string           `json:"homeAway"`
	CallSign        string           `json:"callSign"`
	VideoResolution *videoResolution `json:"videoResolution"`
}

type videoResolution struct {
	Code            string `json:"code"`
	ResolutionShort string `json:"resolutionShort"`
	ResolutionFull  string `json:"resolutionFull"`
}

type gameContent struct {
	Media *gameMedia `json:"media"`
}

type gameMedia struct {
	EpgAlternate []epgEntry `json:"epgAlternate"`
}

type epgEntry struct {
	Title string      `json:"title"`
	Items []mediaItem `json:"items"`
}

type mediaItem struct {
	Playbacks []playback `json:"playbacks"`
}

type playback struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// standings

type standingsResponse struct {
	Records []standingsGroup `json:"records"`
}

type standingsGroup struct {
	StandingsType string       `json:"standingsType"`
	League        *ref         `json:"league"`
	Division      *ref         `json:"division"`
	TeamRecords   []teamRecord `json:"teamRecords"`
}

type teamRecord struct {
	Team              ref           `json:"team"`
	Season            string        `json:"season"`
	Streak            *streak       `json:"streak"`
	ClinchIndicator   string        `json:"clinchIndicator"`
	DivisionRank      flexInt       `json:"divisionRank"`
	LeagueRank        flexInt       `json:"leagueRank"`
	SportRank         flexInt       `json:"sportRank"`
	GamesPlayed       *int          `json:"gamesPlayed"`
	GamesBack         string        `json:"gamesBack"`
	WildCardGamesBack string        `json:"wildCardGamesBack"`
	LeagueRecord      *leagueRecord `json:"leagueRecord"`
	Records           splitGroups   `json:"records"`
	RunsAllowed       *int          `json:"runsAllowed"`
	RunsScored        *int          `json:"runsScored"`
	RunDifferential   *int          `json:"runDifferential"`
	DivisionChamp     bool          `json:"divisionChamp"`
	DivisionLeader    bool          `json:"divisionLeader"`
	Clinched          bool          `json:"clinched"`
	Wins              *int          `json:"wins"`
	Losses            *int          `json:"losses"`
	WinningPercentage string        `json:"winningPercentage"`
}

type streak struct {
	StreakCode string `json:"streakCode"`
}

type splitGroups struct {
	SplitRecords    []splitRecord `json:"splitRecords"`
	DivisionRecords []splitRecord `json:"divisionRecords"`
	LeagueRecords   []splitRecord `json:"leagueRecords"`
}

// splitRecord covers the three record shapes: splits carry Type, division
// and league records carry Division or League.
type splitRecord struct {
	Type     string `json:"type"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Pct      string `json:"pct"`
	Division *ref   `json:"division"`
	League   *ref   `json:"league"`
}

// stats

type statsResponse struct {
	Stats []statsEntry `json:"stats"`
}

type statsEntry struct {
	Type   displayName `json:"type"`
	Group  displayName `json:"group"`
	Splits []statSplit `json:"splits"`
}

type statSplit struct {
	Season string     `json:"season"`
	Stat   statObject `json:"stat"`
	Team   *ref       `json:"team"`
	Player *ref       `json:"player"`
	League *ref       `json:"league"`
	Sport  *ref       `json:"sport"`
}

// roster and people

type rosterResponse struct {
	Roster []rosterEntry `json:"roster"`
}

type rosterEntry struct {
	Person       json.RawMessage `json:"person"`
	JerseyNumber string          `json:"jerseyNumber"`
	Position     *positionJSON   `json:"position"`
	Status       *rosterStatus   `json:"status"`
	ParentTeamID int             `json:"parentTeamId"`
}

type rosterStatus struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type positionJSON struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Abbreviation string `json:"abbreviation"`
}

type dexterityJSON struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type personJSON struct {
	ID                 int            `json:"id"`
	FullName           string         `json:"fullName"`
	FirstName          string         `json:"firstName"`
	UseName            string         `json:"useName"`
	MiddleName         string         `json:"middleName"`
	LastName           string         `json:"lastName"`
	NickName           string         `json:"nickName"`
	Pronunciation      string         `json:"pronunciation"`
	PrimaryNumber      string         `json:"primaryNumber"`
	JerseyNumber       string         `json:"jerseyNumber"`
	BirthDate          string         `json:"birthDate"`
	CurrentAge         *int           `json:"currentAge"`
	Age                *int           `json:"age"`
	BirthCity          string         `json:"birthCity"`
	BirthStateProvince string         `json:"birthStateProvince"`
	BirthCountry       string         `json:"birthCountry"`
	Height             string         `json:"height"`
	Weight             int            `json:"weight"`
	Active             bool           `json:"active"`
	IsPlayer           *bool          `json:"isPlayer"`
	DraftYear          int            `json:"draftYear"`
	Position           *positionJSON  `json:"position"`
	PrimaryPosition    *positionJSON  `json:"primaryPosition"`
	BatSide            *dexterityJSON `json:"batSide"`
	PitchHand          *dexterityJSON `json:"pitchHand"`
	Stats              []statsEntry   `json:"stats"`
}

// transactions

type transactionsResponse struct {
	Transactions []transaction `json:"transactions"`
}

type transaction struct {
	ID             int    `json:"id"`
	Person         *ref   `json:"person"`
	ToTeam         *ref   `json:"toTeam"`
	FromTeam       *ref   `json:"fromTeam"`
	Date           string `json:"date"`
	EffectiveDate  string `json:"effectiveDate"`
	ResolutionDate string `json:"resolutionDate"`
	TypeCode       string `json:"typeCode"`
	TypeDesc       string `json:"typeDesc"`
	Description    string `json:"description"`
}

// team info

type teamsResponse struct {
	Teams []teamJSON `json:"teams"`
}

type teamJSON struct {
	ID               int               `json:"id"`
	Name             string            `json:"name"`
	TeamName         string            `json:"teamName"`
	LocationName     string            `json:"locationName"`
	FranchiseName    string            `json:"franchiseName"`
	ClubName         string            `json:"clubName"`
	ShortName        string            `json:"shortName"`
	Abbreviation     string            `json:"abbreviation"`
	FirstYearOfPlay  string            `json:"firstYearOfPlay"`
	Season           int               `json:"season"`
	League           *ref              `json:"league"`
	Division         *ref              `json:"division"`
	Venue            *venueJSON        `json:"venue"`
	NextGameSchedule *scheduleResponse `json:"nextGameSchedule"`
}

type venueJSON struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	FieldInfo *fieldInfoJSON `json:"fieldInfo"`
}

type fieldInfoJSON struct {
	Capacity    int    `json:"capacity"`
	TurfType    string `json:"turfType"`
	RoofType    string `json:"roofType"`
	LeftLine    int    `json:"leftLine"`
	LeftCenter  int    `json:"leftCenter"`
	Center      int    `json:"center"`
	RightCenter int    `json:"rightCenter"`
	RightLine   int    `json:"rightLine"`
}
