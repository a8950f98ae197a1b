package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_Bounds(t *testing.T) {
	const base = 3 * time.Minute
	for i := 0; i < 100; i++ {
		got := Duration(base, 0.5)
		assert.GreaterOrEqual(t, got, base)
		assert.LessOrEqual(t, got, base+base/2)
	}
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestTTL(t *testing.T) {
	assert.Equal(t, time.Duration(0), TTL(0))
	assert.Equal(t, -time.Second, TTL(-time.Second))

	got := TTL(time.Minute)
	assert.GreaterOrEqual(t, got, time.Minute)
	assert.LessOrEqual(t, got, time.Minute+12*time.Second)
}

func TestDuration_ZeroFactor(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}
