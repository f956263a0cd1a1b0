package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// RandomSource yields uniformly distributed 64-bit values
type RandomSource interface {
	Uint64() uint64
}

// SeededSource is a deterministic source. Position counts draws so a run
// can be reproduced from seed and position.
type SeededSource struct {
	mu   sync.Mutex
	seed int64
	src  *rand.Rand
	pos  int64
}

// NewSeededSource creates a deterministic source from seed
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{
		seed: seed,
		src:  rand.New(rand.NewSource(seed)), //nolint:gosec // Item ids, not security critical
	}
}

// Uint64 returns the next value
func (s *SeededSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pos++
	return s.src.Uint64()
}

// Position returns the number of draws so far
func (s *SeededSource) Position() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}

// CryptoSource draws from crypto/rand
type CryptoSource struct{}

// Uint64 returns the next value. Falls back to math/rand if the system source fails.
func (CryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return rand.Uint64() //nolint:gosec // fallback only
	}
	return binary.BigEndian.Uint64(buf[:])
}

// NewRandomSource returns a seeded source when seed is non-zero, crypto otherwise
func NewRandomSource(seed int64) RandomSource {
	if seed != 0 {
		return NewSeededSource(seed)
	}
	return CryptoSource{}
}

// ScriptedSource replays fixed values, then repeats the last one.
// Useful for driving collision loops deterministically.
type ScriptedSource struct {
	mu     sync.Mutex
	values []uint64
	pos    int
}

// NewScriptedSource creates a source replaying values
func NewScriptedSource(values ...uint64) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Uint64 returns the next scripted value
func (s *ScriptedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return 0
	}
	if s.pos >= len(s.values) {
		return s.values[len(s.values)-1]
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

// Draws returns how many scripted values have been consumed
func (s *ScriptedSource) Draws() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pos
}
