package parse

import (
	"sort"

	"github.com/kickmate/manager-api/internal/domain/player"
	"github.com/kickmate/manager-api/internal/record"
)

// MatchPerformances parses a player's performance history response into
// per-matchday rows. Rows without a positive day index are dropped; every
// downstream computation keys on the day.
func MatchPerformances(root record.Record) []player.MatchPerformance {
	items := record.FindRecords(root, matchListKeys, matchSig)
	out := make([]player.MatchPerformance, 0, len(items))
	for _, item := range items {
		row := parseMatch(item)
		if row.Day <= 0 {
			continue
		}
		out = append(out, row)
	}
	return out
}

func parseMatch(rec record.Record) player.MatchPerformance {
	row := player.MatchPerformance{
		Day:      rec.IntOr(0, "day", "d", "md"),
		Points:   rec.IntOr(0, "points", "p", "tp"),
		Current:  rec.BoolOr(false, "current", "cur"),
		Opponent: rec.StringOr("", "opponent", "opn", "against", "gegner"),
		Result:   rec.StringOr("", "result", "rs", "score"),
	}

	// Older payloads have no explicit played flag; a row that carries
	// points or a result is treated as played.
	if played, ok := rec.BoolAny("played", "pld"); ok {
		row.Played = played
	} else {
		row.Played = rec.Has("points") || rec.Has("p") || rec.Has("tp") || row.Result != ""
	}

	return row
}

// TeamSchedule parses a team schedule response into skeleton performance
// rows carrying opponent and result data, keyed by day.
func TeamSchedule(root record.Record) []player.MatchPerformance {
	items := record.FindRecords(root, matchListKeys, matchSig)
	out := make([]player.MatchPerformance, 0, len(items))
	for _, item := range items {
		row := parseMatch(item)
		if row.Day <= 0 {
			continue
		}
		// Schedule rows carry no player scoring; whatever the endpoint put
		// in a points field belongs to the team, not the player.
		row.Points = 0
		row.Played = row.Result != ""
		out = append(out, row)
	}
	return out
}

// MergeSchedule backfills performance rows with schedule data. Performance
// rows win on every field they carry; the schedule only fills missing
// opponents and results and contributes rows for days the performance
// history skipped entirely. The result is sorted by day ascending.
func MergeSchedule(performances, schedule []player.MatchPerformance) []player.MatchPerformance {
	byDay := make(map[int]player.MatchPerformance, len(performances)+len(schedule))
	for _, row := range schedule {
		byDay[row.Day] = row
	}
	for _, row := range performances {
		if existing, ok := byDay[row.Day]; ok {
			if row.Opponent == "" {
				row.Opponent = existing.Opponent
			}
			if row.Result == "" {
				row.Result = existing.Result
			}
		}
		byDay[row.Day] = row
	}

	out := make([]player.MatchPerformance, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
