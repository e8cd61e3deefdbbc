// Package daily is the once-a-day challenge flow with streak tracking.
// Whether today's attempt is still open comes from the server, so the same
// account sees the same gate on every device.
package daily

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/quiz"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/share"
	"github.com/abhisek/codecade/internal/ui/components"
	"github.com/abhisek/codecade/internal/ui/layout"
	"github.com/abhisek/codecade/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAttempt
	phaseDone   // attempted today, or result recorded just now
	phaseClosed // server says today's attempt is spent, no local result
	phaseError
)

// dailyLoadedMsg carries the fetched daily state.
type dailyLoadedMsg struct {
	state *api.DailyState
	err   error
}

// verdictMsg carries the answer validation result.
type verdictMsg struct {
	verdict *api.Verdict
	err     error
}

// completedMsg carries the recorded daily result with updated streak figures.
type completedMsg struct {
	result *api.DailyResult
	err    error
}

// reconciledMsg carries the re-fetched daily state after completion, so the
// shown streak matches what the server actually recorded.
type reconciledMsg struct {
	state *api.DailyState
	err   error
}

// sharedMsg reports the clipboard copy outcome.
type sharedMsg struct {
	err error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// DailyScreen drives the daily challenge flow.
type DailyScreen struct {
	client *api.Client
	theme  *theme.Theme

	phase   phase
	state   *api.DailyState
	attempt *quiz.Attempt
	choices components.ChoiceList
	result  *api.DailyResult
	spinner components.Spinner

	shareNote string
	errMsg    string
}

var _ screen.Screen = (*DailyScreen)(nil)
var _ screen.KeyHintProvider = (*DailyScreen)(nil)
var _ screen.ThemeAware = (*DailyScreen)(nil)

// New creates a new DailyScreen.
func New(client *api.Client, th *theme.Theme) *DailyScreen {
	return &DailyScreen{
		client:  client,
		theme:   th,
		choices: components.NewChoiceList(th),
	}
}

func (d *DailyScreen) Init() tea.Cmd {
	client := d.client
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		state, err := client.Daily(ctx)
		return dailyLoadedMsg{state: state, err: err}
	}
	return tea.Batch(fetch, spinnerTick())
}

func (d *DailyScreen) Title() string {
	return "Daily Challenge"
}

// SetTheme swaps the color scheme.
func (d *DailyScreen) SetTheme(th *theme.Theme) {
	d.theme = th
	d.choices.SetTheme(th)
}

func (d *DailyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case dailyLoadedMsg:
		if msg.err != nil {
			d.errMsg = msg.err.Error()
			d.phase = phaseError
			return d, nil
		}
		d.state = msg.state
		if !msg.state.CanAttempt {
			d.phase = phaseClosed
			return d, nil
		}
		d.attempt = quiz.New(&d.state.Challenge, false)
		d.choices.Cursor = 0
		d.phase = phaseAttempt
		return d, nil

	case verdictMsg:
		return d.handleVerdict(msg)

	case completedMsg:
		// A failed completion still shows the answer outcome; the streak
		// figures just stay at their pre-attempt values.
		d.phase = phaseDone
		if msg.err != nil {
			return d, nil
		}
		d.result = msg.result
		return d, d.reconcile()

	case reconciledMsg:
		if msg.err == nil && msg.state != nil {
			d.state.Streak = msg.state.Streak
			d.state.CanAttempt = msg.state.CanAttempt
		}
		return d, nil

	case sharedMsg:
		if msg.err != nil {
			d.shareNote = "Could not reach the clipboard."
		} else {
			d.shareNote = "Copied to clipboard!"
		}
		return d, nil

	case spinnerTickMsg:
		if d.phase == phaseLoading {
			d.spinner.Advance()
			return d, spinnerTick()
		}
		return d, nil

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	return d, nil
}

func (d *DailyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch d.phase {
	case phaseAttempt:
		var idx int
		var submit bool
		d.choices, idx, submit = d.choices.Update(msg, d.attempt)
		if !submit {
			return d, nil
		}
		if err := d.attempt.Select(idx); err != nil {
			return d, nil
		}
		return d, d.submitAnswer(idx)

	case phaseDone, phaseClosed:
		if msg.String() == "s" {
			return d, d.shareResult()
		}
		return d, nil

	case phaseError:
		if msg.String() == "r" {
			d.phase = phaseLoading
			d.errMsg = ""
			return d, d.Init()
		}
	}
	return d, nil
}

func (d *DailyScreen) submitAnswer(idx int) tea.Cmd {
	client := d.client
	id := d.state.Challenge.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		v, err := client.ValidateAnswer(ctx, id, idx)
		return verdictMsg{verdict: v, err: err}
	}
}

func (d *DailyScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	if d.attempt == nil {
		return d, nil
	}
	if msg.err != nil {
		d.attempt.ResolveLocal()
	} else {
		d.attempt.ResolveServer(msg.verdict)
	}

	// Record the result so the server advances (or resets) the streak.
	client := d.client
	dailyID := d.state.Daily.ID
	correct := d.attempt.IsCorrect()
	return d, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		result, err := client.CompleteDaily(ctx, dailyID, correct)
		return completedMsg{result: result, err: err}
	}
}

// reconcile re-fetches the daily state so streak figures reflect server truth.
func (d *DailyScreen) reconcile() tea.Cmd {
	client := d.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		state, err := client.Daily(ctx)
		return reconciledMsg{state: state, err: err}
	}
}

func (d *DailyScreen) shareResult() tea.Cmd {
	correct := false
	streak := d.state.Streak
	if d.result != nil {
		correct = d.result.IsCorrect
		streak = d.result.NewStreak
	} else if d.attempt != nil {
		correct = d.attempt.IsCorrect()
	}
	text := share.DailySummary(d.state.Challenge.Title, correct, streak, time.Now())
	return func() tea.Msg {
		return sharedMsg{err: share.Copy(text)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(components.SpinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (d *DailyScreen) KeyHints() []layout.KeyHint {
	switch d.phase {
	case phaseAttempt:
		if d.attempt != nil && d.attempt.Answered() {
			return nil
		}
		return []layout.KeyHint{
			{Key: "↑↓ / 1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
		}
	case phaseDone, phaseClosed:
		return []layout.KeyHint{
			{Key: "S", Description: "Share"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
		}
	}
	return nil
}

func (d *DailyScreen) View(width, height int) string {
	th := d.theme

	switch d.phase {
	case phaseLoading:
		line := d.spinner.View(th, "Fetching today's challenge…")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line)

	case phaseError:
		content := lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("Daily challenge unavailable") +
			"\n\n" + th.Body.Render(d.errMsg) +
			"\n\n" + th.Hint.Render("Press R to retry, Esc to go back.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, th.Card.Render(content))

	case phaseClosed:
		return d.viewClosed(width, height)

	case phaseDone:
		return d.viewDone(width, height)

	default:
		return d.viewAttempt(width, height)
	}
}

func (d *DailyScreen) viewAttempt(width, height int) string {
	th := d.theme
	ch := &d.state.Challenge

	var b strings.Builder
	b.WriteString(th.Title.Render("Daily Challenge"))
	b.WriteString("\n")
	b.WriteString(th.Hint.Render(fmt.Sprintf("%s · %s", ch.Topic, ch.Difficulty)))
	if d.state.Streak > 0 {
		b.WriteString(th.Hint.Render(fmt.Sprintf(" · 🔥 %d-day streak", d.state.Streak)))
	}
	b.WriteString("\n\n")
	b.WriteString(d.choices.View(d.attempt))

	maxWidth := width - 8
	if maxWidth > 100 {
		maxWidth = 100
	}
	card := th.Card.Width(maxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (d *DailyScreen) viewClosed(width, height int) string {
	th := d.theme

	var b strings.Builder
	b.WriteString(th.Title.Render("Already done for today"))
	b.WriteString("\n\n")
	b.WriteString(th.Body.Render("You have completed today's challenge. Come back tomorrow!"))
	b.WriteString("\n\n")
	b.WriteString(th.Correct.Render(fmt.Sprintf("🔥 Current streak: %d days", d.state.Streak)))
	if d.shareNote != "" {
		b.WriteString("\n\n" + th.Hint.Render(d.shareNote))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, th.Card.Render(b.String()))
}

func (d *DailyScreen) viewDone(width, height int) string {
	th := d.theme

	var b strings.Builder
	b.WriteString(d.choices.View(d.attempt))
	b.WriteString("\n\n")

	if d.result != nil {
		if d.result.StreakBonus > 0 {
			b.WriteString(th.Correct.Render(fmt.Sprintf("+%d streak bonus", d.result.StreakBonus)))
			b.WriteString("\n")
		}
		b.WriteString(th.Body.Render(fmt.Sprintf("🔥 Streak: %d days", d.result.NewStreak)))
	} else {
		b.WriteString(th.Hint.Render("Result recorded locally; streak will catch up next fetch."))
	}
	if d.shareNote != "" {
		b.WriteString("\n\n" + th.Hint.Render(d.shareNote))
	}

	maxWidth := width - 8
	if maxWidth > 100 {
		maxWidth = 100
	}
	card := th.Card.Width(maxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
