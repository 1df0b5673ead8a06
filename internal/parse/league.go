package parse

import (
	"github.com/kickmate/manager-api/internal/domain/league"
	"github.com/kickmate/manager-api/internal/platform/id"
	"github.com/kickmate/manager-api/internal/record"
)

// Leagues parses a leagues response into typed leagues. Entries are never
// dropped: a league without an id receives a generated placeholder.
func Leagues(root record.Record) []league.League {
	items := record.FindRecords(root, leagueListKeys, leagueSig)
	out := make([]league.League, 0, len(items))
	for _, item := range items {
		out = append(out, parseLeague(item))
	}
	return out
}

func parseLeague(rec record.Record) league.League {
	leagueID, ok := rec.StringAny("id", "i")
	if !ok {
		leagueID = id.Placeholder()
	}

	out := league.League{
		ID:              leagueID,
		Name:            rec.StringOr("", "name", "n"),
		CreatorName:     rec.StringOr("", "creator", "creatorName", "cn"),
		AdminName:       rec.StringOr("", "admin", "adminName", "an"),
		Season:          rec.StringOr("", "season", "s", "saison"),
		CurrentMatchday: rec.IntOr(0, "currentMatchday", "cmd", "day", "md", "spieltag"),
	}

	if user := resolveCurrentUser(rec); user != nil {
		out.CurrentUser = LeagueUser(user)
	}

	return out
}

// resolveCurrentUser finds the signed-in user's sub-record inside a league
// entry. Besides the direct keys, the historically overloaded wrappers
// "it" and "anol" may hold the user record itself or a dictionary nesting
// it one level down; both shapes are tried.
func resolveCurrentUser(rec record.Record) record.Record {
	if user := rec.ChildAny("currentUser", "cu", "user"); user != nil {
		return user
	}

	for _, wrapper := range []string{"it", "anol"} {
		child := rec.Child(wrapper)
		if child == nil {
			continue
		}
		if looksLikeUser(child) {
			return child
		}
		for _, key := range sortedKeys(child) {
			nested := child.Child(key)
			if nested != nil && looksLikeUser(nested) {
				return nested
			}
		}
	}

	return nil
}

func looksLikeUser(rec record.Record) bool {
	if _, ok := rec.StringAny("id", "i", "userId", "ui"); !ok {
		return false
	}
	return rec.Has("budget") || rec.Has("b") || rec.Has("teamValue") || rec.Has("tv") ||
		rec.Has("points") || rec.Has("p") || rec.Has("name") || rec.Has("n")
}

// LeagueUser parses a user standing from a league or ranking entry.
// Response variants carry different field subsets; anything absent stays
// at its zero value rather than failing the parse.
func LeagueUser(rec record.Record) league.LeagueUser {
	userID, ok := rec.StringAny("id", "i", "userId", "ui")
	if !ok {
		userID = id.Placeholder()
	}

	return league.LeagueUser{
		ID:              userID,
		Name:            rec.StringOr("", "name", "n", "userName", "unm"),
		TeamName:        rec.StringOr("", "teamName", "tn"),
		Budget:          int64(rec.FloatOr(0, "budget", "b")),
		TeamValue:       int64(rec.FloatOr(0, "teamValue", "tv")),
		Points:          rec.IntOr(0, "points", "p", "sp", "punkte"),
		Placement:       rec.IntOr(0, "placement", "pl", "spl", "platz"),
		Won:             rec.IntOr(0, "won", "w"),
		Drawn:           rec.IntOr(0, "drawn", "d"),
		Lost:            rec.IntOr(0, "lost", "l"),
		SE11:            rec.IntOr(0, "se11", "se"),
		TTM:             rec.IntOr(0, "ttm"),
		MPST:            rec.IntOr(0, "mpst"),
		LineupPlayerIDs: stringList(rec, "lineup", "lp"),
	}
}

func stringList(rec record.Record, keys ...string) []string {
	for _, key := range keys {
		raw, ok := rec[key]
		if !ok {
			continue
		}
		items, ok := raw.([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(items))
		for _, item := range items {
			if v, ok := record.CoerceString(item); ok && v != "" {
				out = append(out, v)
			}
		}
		return out
	}
	return nil
}
