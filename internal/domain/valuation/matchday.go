package valuation

import "github.com/kickmate/manager-api/internal/domain/player"

// DefaultMatchday is used when every inference strategy comes up empty.
const DefaultMatchday = 1

// InferCurrentMatchday decides which matchday is "current" from an
// unordered set of performance rows. Strategies are tried in authority
// order: an explicit current flag beats inference from played rows, which
// beats the caller-supplied fallback.
func InferCurrentMatchday(matches []player.MatchPerformance, fallback int) int {
	for _, m := range matches {
		if m.Current && m.Day > 0 {
			return m.Day
		}
	}

	lastPlayed := 0
	for _, m := range matches {
		if m.Played && m.Day > lastPlayed {
			lastPlayed = m.Day
		}
	}
	if lastPlayed > 0 {
		return lastPlayed + 1
	}

	if fallback > 0 {
		return fallback
	}
	return DefaultMatchday
}
