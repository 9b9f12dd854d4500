package middleware

import (
	"testing"
	"time"
)

func TestRateLimiterWindow(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	if !rl.Allow("a") || !rl.Allow("a") {
		t.Fatalf("first two requests must pass")
	}
	if rl.Allow("a") {
		t.Fatalf("third request within window must be rejected")
	}
	if !rl.Allow("b") {
		t.Fatalf("distinct keys have distinct buckets")
	}

	time.Sleep(60 * time.Millisecond)
	if !rl.Allow("a") {
		t.Fatalf("window expiry must reset the bucket")
	}
}
