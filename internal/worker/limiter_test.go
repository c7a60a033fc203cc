package worker

import (
	"context"
	"testing"
	"time"
)

// allow takes a token for key without waiting
func allow(l *Limiter, key string) bool {
	return l.getLimiter(normalizeKey(key)).Allow()
}

func TestLimiter_New(t *testing.T) {
	limiter := NewLimiter(10, 5)
	if limiter.defaultBurst != 5 {
		t.Errorf("expected burst 5, got %d", limiter.defaultBurst)
	}

	l2 := NewLimiter(10, -1)
	if l2.defaultBurst != 5 {
		t.Errorf("expected default burst 5 for negative input, got %d", l2.defaultBurst)
	}
}

func TestLimiter_Wait(t *testing.T) {
	limiter := NewLimiter(100, 1)
	ctx := context.Background()

	if err := limiter.Wait(ctx, "golang"); err != nil {
		t.Errorf("wait failed: %v", err)
	}

	if err := limiter.Wait(ctx, "rust"); err != nil {
		t.Errorf("wait failed: %v", err)
	}
}

func TestLimiter_RateLimit(t *testing.T) {
	// 1 rps, burst 1
	limiter := NewLimiter(1, 1)

	if !allow(limiter, "golang") {
		t.Errorf("first reply should be allowed")
	}

	if allow(limiter, "golang") {
		t.Errorf("expected allow to fail (exhausted tokens)")
	}

	if allow(limiter, "r/GoLang") {
		t.Errorf("expected r/GoLang to share the golang limiter")
	}

	if !allow(limiter, "rust") {
		t.Errorf("expected allow for other subreddit")
	}
}

func TestLimiter_WaitCancelled(t *testing.T) {
	limiter := NewLimiter(0.01, 1)
	allow(limiter, "slow")

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := limiter.Wait(ctx, "slow"); err == nil {
		t.Errorf("expected wait to fail when the context expires first")
	}
}

func TestLimiter_Unlimited(t *testing.T) {
	limiter := NewLimiter(0, 1)

	for i := 0; i < 100; i++ {
		if !allow(limiter, "busy") {
			t.Fatalf("request %d should pass with throttling disabled", i)
		}
	}
}

func TestLimiter_SetRate(t *testing.T) {
	limiter := NewLimiter(10, 10)

	limiter.SetRate("AskReddit", 0.1, 1)

	if !allow(limiter, "askreddit") {
		t.Errorf("first request should pass")
	}

	if allow(limiter, "askreddit") {
		t.Errorf("second request should fail")
	}

	if !allow(limiter, "golang") {
		t.Errorf("other subreddit should pass")
	}

	limiter.SetRate("r/Memes", 0, 1)
	for i := 0; i < 10; i++ {
		if !allow(limiter, "memes") {
			t.Fatalf("request %d should pass once the override lifts the limit", i)
		}
	}
}

func TestNormalizeKey(t *testing.T) {
	tests := map[string]string{
		"golang":   "golang",
		"r/Golang": "golang",
		"  Rust ":  "rust",
		"":         "",
	}

	for in, want := range tests {
		if got := normalizeKey(in); got != want {
			t.Errorf("normalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}
