package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInvalidAuthRateLimiter(t *testing.T) {
	rl := &InvalidAuthRateLimiter{attempts: make(map[string]*attemptInfo)}

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow("203.0.113.10"), "attempt %d should pass", i+1)
	}
	assert.False(t, rl.Allow("203.0.113.10"), "sixth attempt should be blocked")

	// Other IPs are tracked independently.
	assert.True(t, rl.Allow("203.0.113.11"))
}

func TestInvalidAuthRateLimiterWindowReset(t *testing.T) {
	rl := &InvalidAuthRateLimiter{attempts: make(map[string]*attemptInfo)}

	for i := 0; i < 5; i++ {
		rl.Allow("198.51.100.1")
	}
	assert.False(t, rl.Allow("198.51.100.1"))

	// Expire the window manually instead of sleeping.
	rl.mu.Lock()
	rl.attempts["198.51.100.1"].firstAt = time.Now().Add(-2 * time.Minute)
	rl.mu.Unlock()

	assert.True(t, rl.Allow("198.51.100.1"))
}
