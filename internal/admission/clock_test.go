package admission

import (
	"testing"
	"time"
)

func TestFixedClock_SetAndAdvance(t *testing.T) {
	t.Parallel()

	clk := NewFixedClock(5)
	if got := clk.Now(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}

	clk.Set(10)
	if got := clk.Now(); got != 10 {
		t.Fatalf("expected 10 after Set, got %d", got)
	}

	clk.Advance(3)
	if got := clk.Now(); got != 13 {
		t.Fatalf("expected 13 after Advance, got %d", got)
	}
}

func TestWallClock_NonDecreasingAndRecent(t *testing.T) {
	t.Parallel()

	clk := WallClock{}
	a := clk.Now()
	b := clk.Now()
	if b < a {
		t.Fatalf("wall clock went backwards: %d then %d", a, b)
	}

	now := time.Now().UnixMilli()
	if diff := now - b; diff < 0 || diff > int64(time.Minute/time.Millisecond) {
		t.Fatalf("wall clock tick %d too far from system time %d", b, now)
	}
}
