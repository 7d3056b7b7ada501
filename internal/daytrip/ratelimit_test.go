package daytrip

import (
	"testing"
	"time"
)

func TestRateLimiter(t *testing.T) {
	rl := NewIPRateLimiter(2, time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected allow")
	}
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected allow")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("expected deny")
	}
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewIPRateLimiter(1, time.Minute)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected allow")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("buckets must be independent per IP")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("expected deny for exhausted bucket")
	}
}

func TestRateLimiter_Refill(t *testing.T) {
	rl := NewIPRateLimiter(1, 10*time.Millisecond)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected allow")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("expected deny")
	}
	time.Sleep(15 * time.Millisecond)
	if !rl.Allow("1.1.1.1") {
		t.Fatal("expected allow after refill")
	}
}
