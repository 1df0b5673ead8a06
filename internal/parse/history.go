package parse

import (
	"github.com/kickmate/manager-api/internal/domain/valuation"
	"github.com/kickmate/manager-api/internal/record"
)

// MarketValueHistory parses a market-value history response into dated
// value points. Rows missing either the day or the value are dropped; a
// defaulted point would corrupt the change computation downstream.
func MarketValueHistory(root record.Record) []valuation.MarketValueEntry {
	items := record.FindRecords(root, historyListKeys, historySig)
	out := make([]valuation.MarketValueEntry, 0, len(items))
	for _, item := range items {
		day, okDay := item.IntAny("day", "d", "dt")
		value, okValue := item.FloatAny("value", "v", "mv", "m")
		if !okDay || !okValue {
			continue
		}
		out = append(out, valuation.MarketValueEntry{Day: day, Value: int64(value)})
	}
	return out
}
