// Package quiz holds the per-challenge interaction state machine: exactly one
// answer submission per attempt, graduated hints before answering, and
// reconciliation of the server verdict with the locally computed result.
package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/codecade/internal/api"
)

// Phase is the attempt lifecycle state.
type Phase int

const (
	// PhaseUnanswered accepts option selection and hint requests.
	PhaseUnanswered Phase = iota
	// PhaseSubmitting means an answer is locked in and awaiting validation.
	PhaseSubmitting
	// PhaseAnswered is terminal. No further selections are accepted.
	PhaseAnswered
)

// ErrAlreadyAnswered is returned when a second submission is attempted.
var ErrAlreadyAnswered = errors.New("challenge already answered")

// Attempt tracks one user's pass at one challenge instance.
type Attempt struct {
	Challenge *api.Challenge
	Review    bool

	phase    Phase
	selected int

	verdict      *api.Verdict
	localCorrect bool

	hints Hints
}

// New creates an attempt for a challenge. In review mode the attempt starts
// answered with the explanation visible and accepts no submission.
func New(ch *api.Challenge, review bool) *Attempt {
	a := &Attempt{
		Challenge: ch,
		Review:    review,
		selected:  -1,
	}
	if review {
		a.phase = PhaseAnswered
	}
	return a
}

// Phase returns the current lifecycle state.
func (a *Attempt) Phase() Phase { return a.phase }

// Selected returns the locked-in option index, or -1 before selection.
func (a *Attempt) Selected() int { return a.selected }

// Select locks in an option. It transitions Unanswered to Submitting and is
// rejected in every other phase, so at most one submission ever happens.
func (a *Attempt) Select(index int) error {
	if a.phase != PhaseUnanswered {
		return ErrAlreadyAnswered
	}
	if index < 0 || index >= len(a.Challenge.Options) {
		return fmt.Errorf("option index %d out of range", index)
	}
	a.selected = index
	a.localCorrect = index == a.Challenge.CorrectAnswerID
	a.phase = PhaseSubmitting
	return nil
}

// ResolveServer records the server verdict and finishes the attempt.
func (a *Attempt) ResolveServer(v *api.Verdict) {
	if a.phase != PhaseSubmitting {
		return
	}
	a.verdict = v
	a.phase = PhaseAnswered
}

// ResolveLocal finishes the attempt without server confirmation. The
// selection is deliberately not rolled back: the view degrades to the locally
// computed correctness when validation fails.
func (a *Attempt) ResolveLocal() {
	if a.phase != PhaseSubmitting {
		return
	}
	a.phase = PhaseAnswered
}

// Answered reports whether the attempt reached its terminal phase.
func (a *Attempt) Answered() bool { return a.phase == PhaseAnswered }

// ServerConfirmed reports whether the shown correctness came from the server.
func (a *Attempt) ServerConfirmed() bool { return a.verdict != nil }

// IsCorrect returns the authoritative correctness: the server verdict when
// available, the local computation otherwise.
func (a *Attempt) IsCorrect() bool {
	if a.verdict != nil {
		return a.verdict.IsCorrect
	}
	return a.localCorrect
}

// CorrectIndex returns the index to highlight as correct once answered.
func (a *Attempt) CorrectIndex() int {
	if a.verdict != nil {
		return a.verdict.CorrectAnswerID
	}
	return a.Challenge.CorrectAnswerID
}

// Feedback returns the server feedback line, if any.
func (a *Attempt) Feedback() string {
	if a.verdict != nil {
		return a.verdict.Feedback
	}
	return ""
}

// Explanation returns the text shown once answered. The server may replace
// the stored explanation in its verdict.
func (a *Attempt) Explanation() string {
	if a.verdict != nil && a.verdict.Explanation != "" {
		return a.verdict.Explanation
	}
	return a.Challenge.Explanation
}

// Hints exposes the hint ladder for this attempt.
func (a *Attempt) Hints() *Hints { return &a.hints }

// CanRequestHint reports whether a hint request is allowed right now: only
// while unanswered, not mid-fetch, and under the ladder cap.
func (a *Attempt) CanRequestHint() bool {
	return a.phase == PhaseUnanswered && a.hints.CanRequest()
}
