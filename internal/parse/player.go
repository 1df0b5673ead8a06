package parse

import (
	"github.com/kickmate/manager-api/internal/domain/player"
	"github.com/kickmate/manager-api/internal/platform/id"
	"github.com/kickmate/manager-api/internal/record"
)

// Literal placeholders applied when no name field survives the fallback
// chains; an entity is never left unnamed.
const (
	placeholderFirstName = "Unknown"
	placeholderLastName  = "Player"
)

// Player parses a single player record from a list or detail response.
func Player(rec record.Record) player.Player {
	playerID, ok := rec.StringAny("id", "i")
	if !ok {
		playerID = id.Placeholder()
	}

	out := player.Player{
		ID:               playerID,
		TeamID:           rec.StringOr("", "teamId", "tid"),
		TeamName:         rec.StringOr("", "teamName", "tn"),
		Number:           rec.IntOr(0, "number", "nr", "shirtNumber"),
		Position:         player.Position(rec.IntOr(0, "position", "pos")),
		AveragePoints:    rec.FloatOr(0, "averagePoints", "ap"),
		TotalPoints:      rec.IntOr(0, "totalPoints", "tp", "p"),
		MarketValue:      int64(rec.FloatOr(0, "marketValue", "mv", "marktwert")),
		MarketValueTrend: rec.IntOr(0, "marketValueTrend", "mvt", "tr"),
		Status:           rec.IntOr(0, "status", "st"),
		Injured:          rec.BoolOr(false, "injured", "inj"),
	}
	out.FirstName, out.LastName = resolveName(rec)

	return out
}

// resolveName applies the naming policy: detailed first/last names win;
// a sole name field counts as the last name; when everything is empty the
// literal placeholders go in.
func resolveName(rec record.Record) (string, string) {
	first := rec.StringOr("", "firstName", "fn", "vorname")
	last := rec.StringOr("", "lastName", "ln", "nachname")
	if last == "" {
		last = rec.StringOr("", "name", "n")
	}
	if first == "" && last == "" {
		return placeholderFirstName, placeholderLastName
	}
	return first, last
}

// MergeDetail enriches a shallow list entry with fields from a detail
// response. Detail names win; other fields only fill gaps, so a partial
// detail payload can never erase data the list already provided.
func MergeDetail(base player.Player, detail record.Record) player.Player {
	if detail == nil {
		return base
	}

	enriched := Player(detail)
	if enriched.FirstName != placeholderFirstName || enriched.LastName != placeholderLastName {
		if enriched.FirstName != "" {
			base.FirstName = enriched.FirstName
		}
		if enriched.LastName != "" {
			base.LastName = enriched.LastName
		}
	}
	if base.TeamID == "" {
		base.TeamID = enriched.TeamID
	}
	if base.TeamName == "" {
		base.TeamName = enriched.TeamName
	}
	if base.Number == 0 {
		base.Number = enriched.Number
	}
	if base.Position == player.PositionUnknown {
		base.Position = enriched.Position
	}
	if base.AveragePoints == 0 {
		base.AveragePoints = enriched.AveragePoints
	}
	if base.TotalPoints == 0 {
		base.TotalPoints = enriched.TotalPoints
	}
	if base.MarketValue == 0 {
		base.MarketValue = enriched.MarketValue
	}
	if base.MarketValueTrend == 0 {
		base.MarketValueTrend = enriched.MarketValueTrend
	}
	if base.Status == 0 {
		base.Status = enriched.Status
	}
	base.Injured = base.Injured || enriched.Injured

	return base
}

// Players parses a player list response.
func Players(root record.Record) []player.Player {
	items := record.FindRecords(root, playerListKeys, playerSig)
	out := make([]player.Player, 0, len(items))
	for _, item := range items {
		out = append(out, Player(item))
	}
	return out
}

// TeamProfile parses a team detail response into the cached profile shape.
func TeamProfile(root record.Record) player.TeamProfile {
	out := player.TeamProfile{
		TeamID:    root.StringOr("", "teamId", "tid", "id", "i"),
		Name:      root.StringOr("", "teamName", "tn", "name", "n"),
		Badge:     root.StringOr("", "badge", "bd", "image", "img"),
		Placement: root.IntOr(0, "placement", "pl"),
	}

	// The profile root itself carries id/name, so only explicit container
	// keys are considered for the squad list; structural search would wrap
	// the profile as a single player.
	for _, key := range playerListKeys {
		items := root.Records(key)
		if len(items) == 0 {
			continue
		}
		for _, item := range items {
			out.Players = append(out.Players, Player(item))
		}
		break
	}
	return out
}
