package quiz

import (
	"errors"
	"testing"
)

func TestHintLevelsAreSequential(t *testing.T) {
	var h Hints

	for want := 1; want <= MaxHints; want++ {
		level, err := h.Begin()
		if err != nil {
			t.Fatalf("hint %d: %v", want, err)
		}
		if level != want {
			t.Fatalf("hint %d requested level %d", want, level)
		}
		h.Resolve("hint text")
	}

	if _, err := h.Begin(); !errors.Is(err, ErrNoMoreHints) {
		t.Fatalf("fourth hint must be rejected client-side, got %v", err)
	}
	if h.Count() != MaxHints {
		t.Fatalf("expected %d hints, got %d", MaxHints, h.Count())
	}
}

func TestHintFailureIsRetryableAtSameLevel(t *testing.T) {
	var h Hints

	level, err := h.Begin()
	if err != nil {
		t.Fatalf("begin: %v", err)
	}
	h.Fail()

	if h.Count() != 0 {
		t.Fatal("failed fetch must leave hint count unchanged")
	}
	retry, err := h.Begin()
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if retry != level {
		t.Fatalf("retry should reuse level %d, got %d", level, retry)
	}
}

func TestNoConcurrentHintFetches(t *testing.T) {
	var h Hints

	if _, err := h.Begin(); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if _, err := h.Begin(); !errors.Is(err, ErrHintInFlight) {
		t.Fatalf("expected in-flight rejection, got %v", err)
	}
}

func TestHintsBlockedOnceAnswered(t *testing.T) {
	a := New(testChallenge(), false)
	if !a.CanRequestHint() {
		t.Fatal("fresh attempt should allow hints")
	}
	if err := a.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	if a.CanRequestHint() {
		t.Fatal("hints are only reachable while unanswered")
	}
}
