package reference

// Team is the static reference entry for a club.
type Team struct {
	ID           int
	Abbreviation string
	LeagueID     int
	DivisionID   int
}

func defaultTeams() map[int]Team {
	teams := []Team{
		{108, "LAA", AmericanLeagueID, ALWestID},
		{109, "ARI", NationalLeagueID, NLWestID},
		{110, "BAL", AmericanLeagueID, ALEastID},
		{111, "BOS", AmericanLeagueID, ALEastID},
		{112, "CHC", NationalLeagueID, NLCentralID},
		{113, "CIN", NationalLeagueID, NLCentralID},
		{114, "CLE", AmericanLeagueID, ALCentralID},
		{115, "COL", NationalLeagueID, NLWestID},
		{116, "DET", AmericanLeagueID, ALCentralID},
		{117, "HOU", AmericanLeagueID, ALWestID},
		{118, "KC", AmericanLeagueID, ALCentralID},
		{119, "LAD", NationalLeagueID, NLWestID},
		{120, "WSH", NationalLeagueID, NLEastID},
		{121, "NYM", NationalLeagueID, NLEastID},
		{133, "OAK", AmericanLeagueID, ALWestID},
		{134, "PIT", NationalLeagueID, NLCentralID},
		{135, "SD", NationalLeagueID, NLWestID},
		{136, "SEA", AmericanLeagueID, ALWestID},
		{137, "SF", NationalLeagueID, NLWestID},
		{138, "STL", NationalLeagueID, NLCentralID},
		{139, "TB", AmericanLeagueID, ALEastID},
		{140, "TEX", AmericanLeagueID, ALWestID},
		{141, "TOR", AmericanLeagueID, ALEastID},
		{142, "MIN", AmericanLeagueID, ALCentralID},
		{143, "PHI", NationalLeagueID, NLEastID},
		{144, "ATL", NationalLeagueID, NLEastID},
		{145, "CWS", AmericanLeagueID, ALCentralID},
		{146, "MIA", NationalLeagueID, NLEastID},
		{147, "NYY", AmericanLeagueID, ALEastID},
		{158, "MIL", NationalLeagueID, NLCentralID},
	}
	out := make(map[int]Team, len(teams))
	for _, t := range teams {
		out[t.ID] = t
	}
	return out
}
