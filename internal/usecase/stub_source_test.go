package usecase

import (
	"context"
	"sync"

	"github.com/kickmate/manager-api/internal/record"
)

// stubSource serves canned JSON per endpoint key and counts calls. Keys
// are the endpoint name, suffixed with the entity id where one applies.
type stubSource struct {
	mu    sync.Mutex
	raw   map[string]string
	errs  map[string]error
	calls map[string]int

	lastRankingMatchday int
}

func newStubSource() *stubSource {
	return &stubSource{
		raw:   make(map[string]string),
		errs:  make(map[string]error),
		calls: make(map[string]int),
	}
}

func (s *stubSource) respond(key string) (record.Record, error) {
	s.mu.Lock()
	s.calls[key]++
	raw, okRaw := s.raw[key]
	err := s.errs[key]
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !okRaw {
		return record.Record{}, nil
	}
	return record.Decode([]byte(raw))
}

func (s *stubSource) callCount(key string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[key]
}

func (s *stubSource) Leagues(context.Context) (record.Record, error) {
	return s.respond("leagues")
}

func (s *stubSource) Ranking(_ context.Context, _ string, matchday int) (record.Record, error) {
	s.mu.Lock()
	s.lastRankingMatchday = matchday
	s.mu.Unlock()
	return s.respond("ranking")
}

func (s *stubSource) Market(context.Context, string) (record.Record, error) {
	return s.respond("market")
}

func (s *stubSource) UserStats(context.Context, string) (record.Record, error) {
	return s.respond("stats")
}

func (s *stubSource) MarketValueHistory(_ context.Context, _ string, playerID string) (record.Record, error) {
	return s.respond("history:" + playerID)
}

func (s *stubSource) PlayerPerformance(_ context.Context, _ string, playerID string) (record.Record, error) {
	return s.respond("performance:" + playerID)
}

func (s *stubSource) TeamProfile(_ context.Context, _ string, teamID string) (record.Record, error) {
	return s.respond("profile:" + teamID)
}

func (s *stubSource) TeamSchedule(_ context.Context, _ string, teamID string) (record.Record, error) {
	return s.respond("schedule:" + teamID)
}

func (s *stubSource) PlayerDetail(_ context.Context, _ string, playerID string) (record.Record, error) {
	return s.respond("detail:" + playerID)
}
