package quiz

import (
	"errors"
	"testing"

	"github.com/abhisek/codecade/internal/api"
)

func testChallenge() *api.Challenge {
	return &api.Challenge{
		ID:              7,
		Title:           "List Slicing",
		Question:        "What does nums[1:3] return for nums = [1, 2, 3, 4]?",
		Options:         []string{"[1, 2]", "[2, 3]", "[2, 3, 4]", "[1, 2, 3]"},
		CorrectAnswerID: 2,
		Explanation:     "Slicing is half-open.",
	}
}

func TestSingleSubmission(t *testing.T) {
	for idx := range testChallenge().Options {
		a := New(testChallenge(), false)

		if err := a.Select(idx); err != nil {
			t.Fatalf("first select of option %d: %v", idx, err)
		}
		if a.Phase() != PhaseSubmitting {
			t.Fatalf("expected Submitting after select, got %v", a.Phase())
		}

		a.ResolveServer(&api.Verdict{IsCorrect: idx == 2, CorrectAnswerID: 2})
		if !a.Answered() {
			t.Fatal("expected Answered after server verdict")
		}

		// Any further click is a no-op.
		for second := range testChallenge().Options {
			if err := a.Select(second); !errors.Is(err, ErrAlreadyAnswered) {
				t.Fatalf("second select must be rejected, got %v", err)
			}
		}
		if a.Selected() != idx {
			t.Fatalf("selection changed after terminal phase: %d", a.Selected())
		}
	}
}

func TestSelectOutOfRange(t *testing.T) {
	a := New(testChallenge(), false)
	if err := a.Select(4); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if a.Phase() != PhaseUnanswered {
		t.Fatal("failed selection must not change phase")
	}
}

func TestCorrectSelectionShowsExplanation(t *testing.T) {
	a := New(testChallenge(), false)
	if err := a.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	a.ResolveServer(&api.Verdict{
		IsCorrect:       true,
		CorrectAnswerID: 2,
		Explanation:     "Correct! Well done!",
		Feedback:        "Great job!",
	})

	if !a.IsCorrect() {
		t.Fatal("expected correct verdict")
	}
	if a.Explanation() == "" {
		t.Fatal("explanation must be shown once answered")
	}
	if a.CorrectIndex() != 2 {
		t.Fatalf("expected correct index 2, got %d", a.CorrectIndex())
	}
}

func TestIncorrectSelectionHighlightsBoth(t *testing.T) {
	a := New(testChallenge(), false)
	if err := a.Select(0); err != nil {
		t.Fatalf("select: %v", err)
	}
	a.ResolveServer(&api.Verdict{IsCorrect: false, CorrectAnswerID: 2, Explanation: "Slicing is half-open."})

	if a.IsCorrect() {
		t.Fatal("expected incorrect verdict")
	}
	// The view needs both the user's pick and the correct option.
	if a.Selected() != 0 || a.CorrectIndex() != 2 {
		t.Fatalf("expected pick 0 and correct 2, got %d and %d", a.Selected(), a.CorrectIndex())
	}
	if a.Explanation() == "" {
		t.Fatal("explanation must be shown for incorrect answers too")
	}
}

func TestValidationFailureDegradesToLocalVerdict(t *testing.T) {
	a := New(testChallenge(), false)
	if err := a.Select(2); err != nil {
		t.Fatalf("select: %v", err)
	}
	a.ResolveLocal()

	if !a.Answered() {
		t.Fatal("attempt stays answered when the callback fails")
	}
	if a.ServerConfirmed() {
		t.Fatal("local resolution must not claim server confirmation")
	}
	if !a.IsCorrect() {
		t.Fatal("local computation should mark index 2 correct")
	}
}

func TestReviewModeAcceptsNoSubmission(t *testing.T) {
	a := New(testChallenge(), true)
	if !a.Answered() {
		t.Fatal("review attempts start answered")
	}
	if err := a.Select(1); !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("review mode must reject selection, got %v", err)
	}
	if a.Explanation() == "" {
		t.Fatal("review mode always shows the explanation")
	}
}
