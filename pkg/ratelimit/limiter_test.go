package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedWindow(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	l := NewWithClock(5, time.Minute, clock)

	t.Run("Sixth request within the window is rejected", func(t *testing.T) {
		for i := 1; i <= 5; i++ {
			ok, _ := l.Allow("1.2.3.4")
			assert.True(t, ok, "request %d should be allowed", i)
		}
		ok, resetAt := l.Allow("1.2.3.4")
		assert.False(t, ok)
		assert.Equal(t, now.Add(time.Minute), resetAt)
	})

	t.Run("Limited call still burns budget", func(t *testing.T) {
		// The 6th call above counted; the 7th is also rejected
		ok, _ := l.Allow("1.2.3.4")
		assert.False(t, ok)
	})

	t.Run("First request after the reset starts a fresh window at count 1", func(t *testing.T) {
		now = now.Add(time.Minute + time.Second)
		ok, resetAt := l.Allow("1.2.3.4")
		assert.True(t, ok)
		assert.Equal(t, now.Add(time.Minute), resetAt)

		// Fresh window: four more fit before the limit
		for i := 0; i < 4; i++ {
			ok, _ = l.Allow("1.2.3.4")
			assert.True(t, ok)
		}
		ok, _ = l.Allow("1.2.3.4")
		assert.False(t, ok)
	})

	t.Run("Keys are independent", func(t *testing.T) {
		ok, _ := l.Allow("5.6.7.8")
		assert.True(t, ok)
	})
}

func TestSweepDropsExpiredWindows(t *testing.T) {
	now := time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC)
	l := NewWithClock(5, time.Minute, func() time.Time { return now })

	l.Allow("a")
	l.Allow("b")
	assert.Len(t, l.entries, 2)

	now = now.Add(2 * time.Minute)
	l.sweep()
	assert.Empty(t, l.entries)
}
