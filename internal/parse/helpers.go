package parse

import (
	"sort"

	"github.com/kickmate/manager-api/internal/record"
)

// sortedKeys keeps nested lookups deterministic; Go map iteration order is
// randomized and the provider offers no ordering of its own.
func sortedKeys(rec record.Record) []string {
	keys := make([]string, 0, len(rec))
	for key := range rec {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
