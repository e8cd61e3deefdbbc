package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/quiz"
	"github.com/abhisek/codecade/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// ChoiceList renders a challenge attempt: question, options, hints, and the
// revealed verdict. Answer state lives in the attempt; the component only
// tracks the cursor.
type ChoiceList struct {
	Cursor int
	theme  *theme.Theme
}

// NewChoiceList creates a choice list for up to four options.
func NewChoiceList(th *theme.Theme) ChoiceList {
	return ChoiceList{theme: th}
}

// SetTheme swaps the color scheme.
func (c *ChoiceList) SetTheme(th *theme.Theme) {
	c.theme = th
}

// Update moves the cursor while the attempt is still open. It returns the
// chosen index and true when the user locks in an answer.
func (c ChoiceList) Update(msg tea.Msg, a *quiz.Attempt) (ChoiceList, int, bool) {
	if a == nil || a.Phase() != quiz.PhaseUnanswered {
		return c, -1, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, -1, false
	}

	n := len(a.Challenge.Options)
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < n-1 {
			c.Cursor++
		}
	case "enter":
		return c, c.Cursor, true
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < n {
			c.Cursor = idx
			return c, idx, true
		}
	}

	return c, -1, false
}

// View renders the attempt.
func (c ChoiceList) View(a *quiz.Attempt) string {
	if a == nil {
		return ""
	}
	th := c.theme

	var b strings.Builder
	b.WriteString(th.Body.Bold(true).Render(a.Challenge.Question))
	b.WriteString("\n\n")

	answered := a.Answered()
	submitting := a.Phase() == quiz.PhaseSubmitting

	for i, opt := range a.Challenge.Options {
		label := optionLabels[i]
		prefix := "  "
		if !answered && !submitting && i == c.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case answered && i == a.CorrectIndex():
			// The correct option and a wrong pick are distinguished at the
			// same time.
			b.WriteString(th.Correct.Render(line))
		case answered && i == a.Selected():
			b.WriteString(th.Incorrect.Render(line))
		case answered:
			b.WriteString(th.Hint.Render(line))
		case submitting && i == a.Selected():
			b.WriteString(th.Selected.Render(line + "  …"))
		case i == c.Cursor:
			b.WriteString(th.Selected.Render(line))
		default:
			b.WriteString(th.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	if hints := a.Hints().All(); len(hints) > 0 {
		b.WriteString("\n")
		for i, h := range hints {
			b.WriteString(th.Hint.Render(fmt.Sprintf("Hint %d: %s", i+1, h)))
			b.WriteString("\n")
		}
	}

	if answered {
		b.WriteString("\n")
		b.WriteString(c.renderVerdict(a))
	}

	return b.String()
}

func (c ChoiceList) renderVerdict(a *quiz.Attempt) string {
	th := c.theme
	var b strings.Builder

	if !a.Review {
		if a.IsCorrect() {
			b.WriteString(th.Correct.Render("✓ Correct!"))
		} else {
			b.WriteString(th.Incorrect.Render("✗ Not quite."))
		}
		if !a.ServerConfirmed() {
			b.WriteString(th.Hint.Render("  (local result; server unreachable)"))
		}
		if fb := a.Feedback(); fb != "" {
			b.WriteString("\n" + th.Body.Render(fb))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(th.Body.Render(a.Explanation()))

	if tc := a.Challenge.TimeComplexity; tc != "" {
		b.WriteString("\n" + th.Hint.Render("Time: "+tc))
		if sc := a.Challenge.SpaceComplexity; sc != "" {
			b.WriteString(th.Hint.Render("  Space: "+sc))
		}
	}
	return b.String()
}
