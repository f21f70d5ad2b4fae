package model

import "testing"

func TestScoreZeroAtOrigin(t *testing.T) {
	if got := Score(0, 0, 0); got != 0 {
		t.Fatalf("Score(0,0,0) = %d, want 0", got)
	}
}

func TestScoreMonotonicPerDifficulty(t *testing.T) {
	base := Score(3, 4, 5)
	if Score(4, 4, 5) <= base {
		t.Error("score must grow with easy count")
	}
	if Score(3, 5, 5) <= base {
		t.Error("score must grow with medium count")
	}
	if Score(3, 4, 6) <= base {
		t.Error("score must grow with hard count")
	}
	if base < 0 {
		t.Error("score must be non-negative")
	}
}
