package share

import (
	"strings"
	"testing"
	"time"
)

var day = time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)

func TestDailySummaryCorrect(t *testing.T) {
	text := DailySummary("List Slicing", true, 5, day)

	if !strings.Contains(text, "Aug 28, 2026") {
		t.Fatalf("missing date: %q", text)
	}
	if !strings.Contains(text, "solved") || !strings.Contains(text, "List Slicing") {
		t.Fatalf("missing result line: %q", text)
	}
	if !strings.Contains(text, "5-day streak") {
		t.Fatalf("missing streak line: %q", text)
	}
}

func TestDailySummaryIncorrectOmitsStreak(t *testing.T) {
	text := DailySummary("List Slicing", false, 1, day)

	if !strings.Contains(text, "attempted") {
		t.Fatalf("expected attempted wording: %q", text)
	}
	if strings.Contains(text, "streak") {
		t.Fatalf("single-day runs should not brag about streaks: %q", text)
	}
}
