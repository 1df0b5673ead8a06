package parse

import (
	"github.com/kickmate/manager-api/internal/domain/player"
	"github.com/kickmate/manager-api/internal/record"
)

// Market parses a transfer-market response into listings.
func Market(root record.Record) []player.MarketPlayer {
	items := record.FindRecords(root, marketListKeys, marketSig)
	out := make([]player.MarketPlayer, 0, len(items))
	for _, item := range items {
		out = append(out, MarketPlayer(item))
	}
	return out
}

// MarketPlayer parses one market listing: the embedded player plus the
// listing terms and parties.
func MarketPlayer(rec record.Record) player.MarketPlayer {
	out := player.MarketPlayer{
		Player: Player(rec),
		Price:  int64(rec.FloatOr(0, "price", "prc")),
		Expiry: int64(rec.FloatOr(0, "expiry", "exp", "e")),
		Offers: rec.IntOr(0, "offers", "ofc", "offerCount"),
	}

	if seller := rec.ChildAny("seller", "slr", "u"); seller != nil {
		out.Seller = player.MarketSeller{
			ID:   seller.StringOr("", "id", "i"),
			Name: seller.StringOr("", "name", "n", "unm"),
		}
	}

	out.Owner = parseOwner(rec.ChildAny("owner", "usr", "user"))

	return out
}

// parseOwner returns an owner only when the nested record carries both an
// id and a name; a market entry may be unowned and stays that way rather
// than getting a defaulted owner.
func parseOwner(rec record.Record) *player.Owner {
	if rec == nil {
		return nil
	}

	ownerID, okID := rec.StringAny("id", "i")
	ownerName, okName := rec.StringAny("name", "n", "unm")
	if !okID || !okName || ownerID == "" || ownerName == "" {
		return nil
	}

	return &player.Owner{
		ID:       ownerID,
		Name:     ownerName,
		Image:    rec.StringOr("", "image", "img", "uim", "profileImage"),
		Verified: rec.BoolOr(false, "verified", "vf", "isVerified"),
		Status:   rec.IntOr(0, "status", "st"),
	}
}
