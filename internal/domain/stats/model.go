package stats

// UserStats is the signed-in user's aggregate standing, assembled from
// whichever wrapper object the stats endpoint chose to nest it in. Fields
// the response omits are filled from a caller-supplied fallback entity.
type UserStats struct {
	TeamValue      int64
	TeamValueTrend int
	Budget         int64
	Points         int
	Placement      int
	Won            int
	Drawn          int
	Lost           int
}
