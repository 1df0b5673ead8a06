package player

import "strings"

// Position is the provider's numeric position code.
type Position int

const (
	PositionUnknown    Position = 0
	PositionGoalkeeper Position = 1
	PositionDefender   Position = 2
	PositionMidfielder Position = 3
	PositionForward    Position = 4
)

func (p Position) String() string {
	switch p {
	case PositionGoalkeeper:
		return "GK"
	case PositionDefender:
		return "DEF"
	case PositionMidfielder:
		return "MID"
	case PositionForward:
		return "FWD"
	default:
		return "UNK"
	}
}

// Player is one athlete as normalized from list or detail responses.
type Player struct {
	ID               string
	FirstName        string
	LastName         string
	TeamID           string
	TeamName         string
	Number           int
	Position         Position
	AveragePoints    float64
	TotalPoints      int
	MarketValue      int64
	MarketValueTrend int
	Status           int
	Injured          bool
}

// Name joins first and last name, tolerating either being empty.
func (p Player) Name() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}

// MarketSeller identifies who listed a player on the transfer market.
type MarketSeller struct {
	ID   string
	Name string
}

// Owner is the manager currently holding a market-listed player. A market
// entry may be unowned, so parsers attach an Owner only when the listing
// nests owner data with both id and name.
type Owner struct {
	ID       string
	Name     string
	Image    string
	Verified bool
	Status   int
}

// MarketPlayer is a transfer-market listing: the player plus listing terms.
type MarketPlayer struct {
	Player

	Price  int64
	Expiry int64
	Offers int
	Seller MarketSeller
	Owner  *Owner
}

// MatchPerformance is one matchday row from a player's performance history.
type MatchPerformance struct {
	Day      int
	Points   int
	Played   bool
	Current  bool
	Opponent string
	Result   string
}

// SeasonPerformance is the enhanced per-player view: the performance rows
// merged with team schedule data plus the inferred current matchday.
type SeasonPerformance struct {
	PlayerID        string
	LeagueID        string
	CurrentMatchday int
	Matches         []MatchPerformance
}

// TeamProfile is the expensive team detail aggregate served from cache.
type TeamProfile struct {
	TeamID    string
	LeagueID  string
	Name      string
	Badge     string
	Players   []Player
	Placement int
}
