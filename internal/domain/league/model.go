package league

// League is one fantasy league the signed-in user belongs to, as parsed
// from a leagues response entry. Immutable after parsing; identity is ID
// (provider supplied, or a generated placeholder when the payload has none).
type League struct {
	ID              string
	Name            string
	CreatorName     string
	AdminName       string
	Season          string
	CurrentMatchday int
	CurrentUser     LeagueUser
}

// LeagueUser is a user's standing inside one league. Ranking responses and
// league responses both produce this shape; fields a given response lacks
// (team name, season win/draw/loss in rankings) stay at their zero values.
type LeagueUser struct {
	ID        string
	Name      string
	TeamName  string
	Budget    int64
	TeamValue int64
	Points    int
	Placement int
	Won       int
	Drawn     int
	Lost      int

	// Provider-specific extra counters carried through as-is.
	SE11 int
	TTM  int
	MPST int

	// LineupPlayerIDs is the ordered starting lineup, when the response
	// includes one.
	LineupPlayerIDs []string
}
