package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededSourceDeterministic(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Uint64(), b.Uint64(), "draw %d", i)
	}
	assert.Equal(t, int64(20), a.Position())
}

func TestSeededSourceDiffersBySeed(t *testing.T) {
	a := NewSeededSource(1)
	b := NewSeededSource(2)
	assert.NotEqual(t, a.Uint64(), b.Uint64())
}

func TestScriptedSource(t *testing.T) {
	s := NewScriptedSource(5, 6)

	assert.Equal(t, uint64(5), s.Uint64())
	assert.Equal(t, uint64(6), s.Uint64())
	assert.Equal(t, uint64(6), s.Uint64())
	assert.Equal(t, 2, s.Draws())

	empty := NewScriptedSource()
	assert.Equal(t, uint64(0), empty.Uint64())
}

func TestNewRandomSource(t *testing.T) {
	_, seeded := NewRandomSource(7).(*SeededSource)
	assert.True(t, seeded)

	_, crypto := NewRandomSource(0).(CryptoSource)
	assert.True(t, crypto)
}
