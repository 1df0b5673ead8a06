package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync/atomic"
)

// Generator creates opaque IDs for entities the provider shipped without one.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return "gen-" + hex.EncodeToString(buf), nil
}

var placeholderSeq atomic.Uint64

// Placeholder returns a generated id that never fails; when the random
// source is unavailable it falls back to a process-local sequence, which
// still avoids collisions within one parse pass.
func Placeholder() string {
	out, err := NewRandomGenerator().NewID()
	if err != nil {
		return fmt.Sprintf("gen-seq-%d", placeholderSeq.Add(1))
	}
	return out
}
