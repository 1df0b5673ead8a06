package record

import "sort"

// Signature is the small set of field names expected in records of a given
// entity type. A candidate array is accepted when the key set of its first
// element intersects the signature; this keeps structural search from
// pulling in unrelated nested arrays such as metadata or comment lists.
type Signature []string

func (s Signature) matches(r Record) bool {
	if len(s) == 0 {
		return true
	}
	for _, field := range s {
		if r.Has(field) {
			return true
		}
	}
	return false
}

// identityKeys detect a single-record response so it can be wrapped as a
// one-element list.
var identityKeys = []string{"id", "i", "name", "n"}

// FindRecords locates the array of records matching sig inside root when
// the containing key is not fixed. Strategy order is a contract:
//
//  1. wellKnown keys, in caller order; the first whose value is an array of
//     records passing the signature wins.
//  2. If root itself carries an identity key and passes the signature, it
//     is wrapped as a single-element result.
//  3. Bounded two-level search: top-level keys in sorted order; an
//     array-of-records value is a candidate directly, an object value is
//     scanned one level deeper (its keys also in sorted order). Sorting
//     makes the "first match wins" tie-break deterministic where the
//     provider offers several plausible arrays.
//
// Exhausting all strategies returns an empty slice: "no data", not an error.
func FindRecords(root Record, wellKnown []string, sig Signature) []Record {
	if root == nil {
		return []Record{}
	}

	for _, key := range wellKnown {
		if items := toRecords(root[key]); len(items) > 0 && sig.matches(items[0]) {
			return items
		}
	}

	for _, key := range identityKeys {
		if root.Has(key) {
			if sig.matches(root) {
				return []Record{root}
			}
			break
		}
	}

	keys := make([]string, 0, len(root))
	for key := range root {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if items := toRecords(root[key]); len(items) > 0 {
			if sig.matches(items[0]) {
				return items
			}
			continue
		}
		child := root.Child(key)
		if child == nil {
			continue
		}
		childKeys := make([]string, 0, len(child))
		for childKey := range child {
			childKeys = append(childKeys, childKey)
		}
		sort.Strings(childKeys)
		for _, childKey := range childKeys {
			items := toRecords(child[childKey])
			if len(items) == 0 {
				continue
			}
			if sig.matches(items[0]) {
				return items
			}
			// Only the first array per wrapper is a candidate.
			break
		}
	}

	return []Record{}
}
