package valuation

import (
	"testing"

	"github.com/kickmate/manager-api/internal/domain/player"
)

func TestInferCurrentMatchday(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		matches  []player.MatchPerformance
		fallback int
		want     int
	}{
		{
			name: "current flag beats played inference",
			matches: []player.MatchPerformance{
				{Day: 9, Played: true},
				{Day: 7, Current: true},
			},
			fallback: 3,
			want:     7,
		},
		{
			name: "last played plus one",
			matches: []player.MatchPerformance{
				{Day: 4, Played: true},
				{Day: 9, Played: true},
				{Day: 11, Played: false},
			},
			fallback: 3,
			want:     10,
		},
		{
			name:     "caller fallback",
			matches:  []player.MatchPerformance{{Day: 11}},
			fallback: 5,
			want:     5,
		},
		{
			name:     "constant default",
			matches:  nil,
			fallback: 0,
			want:     DefaultMatchday,
		},
		{
			name: "current flag without day is ignored",
			matches: []player.MatchPerformance{
				{Day: 0, Current: true},
				{Day: 6, Played: true},
			},
			fallback: 2,
			want:     7,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferCurrentMatchday(tc.matches, tc.fallback); got != tc.want {
				t.Fatalf("got=%d, want %d", got, tc.want)
			}
		})
	}
}
