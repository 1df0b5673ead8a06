package parse

import (
	"github.com/kickmate/manager-api/internal/domain/league"
	"github.com/kickmate/manager-api/internal/record"
)

// Ranking parses a ranking response into user standings. The endpoint
// overloads its points/placement fields: when a specific matchday was
// requested it answers with mdp/mdpl, otherwise with the season totals
// sp/spl. The caller knows which query it sent and selects the field set
// with isMatchDayQuery; both sets still fall through to the full names.
func Ranking(root record.Record, isMatchDayQuery bool) []league.LeagueUser {
	items := record.FindRecords(root, rankingListKeys, rankingSig)

	pointsKeys := []string{"sp", "points", "p"}
	placementKeys := []string{"spl", "placement", "pl"}
	if isMatchDayQuery {
		pointsKeys = []string{"mdp", "points", "p"}
		placementKeys = []string{"mdpl", "placement", "pl"}
	}

	out := make([]league.LeagueUser, 0, len(items))
	for _, item := range items {
		user := LeagueUser(item)
		user.Points = item.IntOr(0, pointsKeys...)
		user.Placement = item.IntOr(0, placementKeys...)
		out = append(out, user)
	}
	return out
}
