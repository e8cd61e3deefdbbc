// Package generate is the challenge creation and answering flow: pick a topic
// and difficulty, request a challenge, answer it, and walk the hint ladder.
package generate

import (
	"context"
	"errors"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/latest"
	"github.com/abhisek/codecade/internal/quiz"
	"github.com/abhisek/codecade/internal/quota"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/ui/components"
	"github.com/abhisek/codecade/internal/ui/layout"
	"github.com/abhisek/codecade/internal/ui/theme"
)

// presetTopics mirrors the platform's daily rotation topics, offered as
// one-keystroke choices before the free-text option.
var presetTopics = []string{
	"Python lists", "JavaScript arrays", "SQL queries",
	"React hooks", "Algorithms", "Data structures",
	"Python dictionaries", "JavaScript promises", "Database design",
	"Object-oriented programming", "Functional programming", "Recursion",
}

type phase int

const (
	phaseForm phase = iota
	phaseLoading
	phaseAttempt
	phaseError
)

// GenerateScreen drives the generate-and-answer flow.
type GenerateScreen struct {
	client *api.Client
	theme  *theme.Theme

	phase      phase
	topicIdx   int // len(presetTopics) selects the custom input
	difficulty int
	custom     components.TextInput

	quota     quota.State
	haveQuota bool

	seq     *latest.Tracker
	cancel  context.CancelFunc
	pending string // topic being generated, for the loading line
	spinner components.Spinner

	attempt *quiz.Attempt
	choices components.ChoiceList

	errMsg  string
	hintErr string
}

var _ screen.Screen = (*GenerateScreen)(nil)
var _ screen.KeyHintProvider = (*GenerateScreen)(nil)
var _ screen.ThemeAware = (*GenerateScreen)(nil)

// New creates a new GenerateScreen.
func New(client *api.Client, th *theme.Theme) *GenerateScreen {
	return &GenerateScreen{
		client:     client,
		theme:      th,
		difficulty: 1, // medium
		custom:     components.NewTextInput(th, "Any topic, e.g. goroutines", 60),
		seq:        &latest.Tracker{},
		choices:    components.NewChoiceList(th),
	}
}

func (g *GenerateScreen) Init() tea.Cmd {
	client := g.client
	return func() tea.Msg {
		state, err := client.Quota(context.Background())
		return quotaCheckedMsg{state: state, err: err}
	}
}

func (g *GenerateScreen) Title() string {
	return "Generate"
}

// SetTheme swaps the color scheme.
func (g *GenerateScreen) SetTheme(th *theme.Theme) {
	g.theme = th
	g.choices.SetTheme(th)
}

func (g *GenerateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quotaCheckedMsg:
		if msg.err == nil {
			g.quota = msg.state
			g.haveQuota = true
		}
		return g, nil

	case screen.QuotaUpdatedMsg:
		g.quota = msg.State
		g.haveQuota = true
		return g, nil

	case challengeReadyMsg:
		return g.handleChallengeReady(msg)

	case challengeFailedMsg:
		return g.handleChallengeFailed(msg)

	case verdictMsg:
		return g.handleVerdict(msg)

	case hintMsg:
		return g.handleHint(msg)

	case spinnerTickMsg:
		if g.phase == phaseLoading {
			g.spinner.Advance()
			return g, spinnerTick()
		}
		return g, nil

	case tea.KeyMsg:
		return g.handleKey(msg)
	}

	if g.phase == phaseForm && g.custom.Focused() {
		var cmd tea.Cmd
		g.custom, cmd = g.custom.Update(msg)
		return g, cmd
	}

	return g, nil
}

func (g *GenerateScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch g.phase {
	case phaseForm:
		return g.handleFormKey(msg)
	case phaseLoading:
		if msg.String() == "x" {
			g.cancelPending()
			g.phase = phaseForm
		}
		return g, nil
	case phaseAttempt:
		return g.handleAttemptKey(msg)
	case phaseError:
		if msg.String() == "r" {
			return g, g.generate()
		}
		return g, nil
	}
	return g, nil
}

func (g *GenerateScreen) handleFormKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if g.custom.Focused() {
		switch msg.String() {
		case "enter":
			return g, g.generate()
		case "tab":
			g.custom.Blur()
			return g, nil
		}
		var cmd tea.Cmd
		g.custom, cmd = g.custom.Update(msg)
		return g, cmd
	}

	switch msg.String() {
	case "up", "k":
		if g.topicIdx > 0 {
			g.topicIdx--
		}
	case "down", "j":
		if g.topicIdx < len(presetTopics) {
			g.topicIdx++
		}
	case "left", "h":
		if g.difficulty > 0 {
			g.difficulty--
		}
	case "right", "l":
		if g.difficulty < len(api.Difficulties)-1 {
			g.difficulty++
		}
	case "enter":
		if g.topicIdx == len(presetTopics) {
			return g, g.custom.Focus()
		}
		return g, g.generate()
	}
	return g, nil
}

func (g *GenerateScreen) handleAttemptKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "n":
		if g.attempt.Answered() {
			g.attempt = nil
			g.phase = phaseForm
			g.hintErr = ""
			return g, nil
		}
	case "?":
		return g, g.requestHint()
	}

	var idx int
	var submit bool
	g.choices, idx, submit = g.choices.Update(msg, g.attempt)
	if !submit {
		return g, nil
	}
	if err := g.attempt.Select(idx); err != nil {
		return g, nil
	}
	return g, g.submitAnswer(idx)
}

// topic returns the topic the form currently points at.
func (g *GenerateScreen) topic() string {
	if g.topicIdx == len(presetTopics) {
		return g.custom.Value()
	}
	return presetTopics[g.topicIdx]
}

// generate starts a challenge request. A previous in-flight request is
// cancelled and its eventual response discarded by the sequence tracker.
func (g *GenerateScreen) generate() tea.Cmd {
	topic := g.topic()
	if topic == "" {
		return nil
	}
	if g.haveQuota && g.quota.Exhausted() {
		// The exhausted form view already explains; never issue the request.
		return nil
	}

	g.cancelPending()
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	seq := g.seq.Next()
	g.pending = topic
	g.phase = phaseLoading
	g.attempt = nil // the previous challenge never flashes behind a new request
	g.errMsg = ""
	g.hintErr = ""

	client := g.client
	difficulty := api.Difficulties[g.difficulty]

	fetch := func() tea.Msg {
		ch, err := client.GenerateChallenge(ctx, topic, difficulty)
		if err != nil {
			return challengeFailedMsg{seq: seq, err: err}
		}
		return challengeReadyMsg{seq: seq, challenge: ch}
	}
	return tea.Batch(fetch, spinnerTick())
}

func (g *GenerateScreen) cancelPending() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
}

func (g *GenerateScreen) handleChallengeReady(msg challengeReadyMsg) (screen.Screen, tea.Cmd) {
	if !g.seq.Accept(msg.seq) {
		return g, nil
	}
	g.cancel = nil
	g.attempt = quiz.New(msg.challenge, false)
	g.choices.Cursor = 0
	g.phase = phaseAttempt
	g.hintErr = ""
	return g, g.refreshQuota()
}

func (g *GenerateScreen) handleChallengeFailed(msg challengeFailedMsg) (screen.Screen, tea.Cmd) {
	if !g.seq.Accept(msg.seq) {
		return g, nil
	}
	g.cancel = nil

	if errors.Is(msg.err, context.Canceled) {
		return g, nil
	}

	var quotaErr *api.ErrQuotaExceeded
	if errors.As(msg.err, &quotaErr) {
		g.quota.Remaining = 0
		if !quotaErr.NextReset.IsZero() {
			g.quota.NextReset = quotaErr.NextReset
		}
		g.haveQuota = true
		g.phase = phaseForm
		return g, func() tea.Msg { return screen.QuotaUpdatedMsg{State: g.quota} }
	}

	g.errMsg = msg.err.Error()
	g.phase = phaseError
	return g, nil
}

// refreshQuota pulls the post-generation quota so the header banner follows
// the decrement.
func (g *GenerateScreen) refreshQuota() tea.Cmd {
	client := g.client
	return func() tea.Msg {
		state, err := client.Quota(context.Background())
		if err != nil {
			return nil
		}
		return screen.QuotaUpdatedMsg{State: state}
	}
}

func (g *GenerateScreen) submitAnswer(idx int) tea.Cmd {
	client := g.client
	id := g.attempt.Challenge.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		v, err := client.ValidateAnswer(ctx, id, idx)
		return verdictMsg{challengeID: id, verdict: v, err: err}
	}
}

func (g *GenerateScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	if g.attempt == nil || g.attempt.Challenge.ID != msg.challengeID {
		return g, nil
	}
	if msg.err != nil {
		// Validation failed; the locally computed result is shown instead.
		g.attempt.ResolveLocal()
		return g, nil
	}
	g.attempt.ResolveServer(msg.verdict)
	return g, nil
}

func (g *GenerateScreen) requestHint() tea.Cmd {
	if g.attempt == nil || !g.attempt.CanRequestHint() {
		return nil
	}
	level, err := g.attempt.Hints().Begin()
	if err != nil {
		return nil
	}
	g.hintErr = ""

	client := g.client
	id := g.attempt.Challenge.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		text, err := client.Hint(ctx, id, level)
		return hintMsg{challengeID: id, text: text, err: err}
	}
}

func (g *GenerateScreen) handleHint(msg hintMsg) (screen.Screen, tea.Cmd) {
	if g.attempt == nil || g.attempt.Challenge.ID != msg.challengeID {
		return g, nil
	}
	if msg.err != nil {
		g.attempt.Hints().Fail()
		g.hintErr = "Hint unavailable right now. Press ? to retry."
		return g, nil
	}
	g.attempt.Hints().Resolve(msg.text)
	return g, nil
}

func spinnerTick() tea.Cmd {
	return tea.Tick(components.SpinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (g *GenerateScreen) KeyHints() []layout.KeyHint {
	switch g.phase {
	case phaseForm:
		if g.custom.Focused() {
			return []layout.KeyHint{
				{Key: "Enter", Description: "Generate"},
				{Key: "Tab", Description: "Back to list"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Topic"},
			{Key: "←→", Description: "Difficulty"},
			{Key: "Enter", Description: "Generate"},
		}
	case phaseLoading:
		return []layout.KeyHint{
			{Key: "X", Description: "Cancel"},
		}
	case phaseAttempt:
		if g.attempt != nil && g.attempt.Answered() {
			return []layout.KeyHint{
				{Key: "N", Description: "New challenge"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓ / 1-4", Description: "Answer"},
			{Key: "Enter", Description: "Submit"},
			{Key: "?", Description: "Hint"},
		}
	case phaseError:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
		}
	}
	return nil
}
