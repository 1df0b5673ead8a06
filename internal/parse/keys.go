// Package parse turns untyped provider Records into domain entities. Each
// parser encodes a priority-ordered candidate key table covering the
// provider's historical payload shapes: current full names, the 1-3 letter
// abbreviated names of newer revisions, and a handful of legacy German
// labels. Parsing never fails; a field whose chain is exhausted takes its
// documented default, and only identity-less records are dropped entirely.
package parse

import "github.com/kickmate/manager-api/internal/record"

// Well-known container keys, tried in order before structural search.
var (
	leagueListKeys  = []string{"leagues", "data", "it"}
	rankingListKeys = []string{"users", "ranking", "us", "it"}
	marketListKeys  = []string{"market", "players", "data", "it"}
	historyListKeys = []string{"history", "marketValues", "mvh", "data", "it"}
	matchListKeys   = []string{"performance", "matches", "ph", "data", "it"}
	playerListKeys  = []string{"players", "it", "data"}
)

// Array signatures used to validate candidates found by structural search.
var (
	leagueSig  = record.Signature{"name", "n", "creator", "id", "i"}
	rankingSig = record.Signature{"points", "p", "sp", "mdp", "placement", "id", "i"}
	marketSig  = record.Signature{"price", "seller", "expiry", "offers", "firstName", "lastName", "name", "id"}
	historySig = record.Signature{"day", "d", "value", "v", "mv", "m"}
	matchSig   = record.Signature{"day", "d", "md", "points", "p", "cur"}
	playerSig  = record.Signature{"firstName", "lastName", "name", "id"}
)
