// Package stats is the progress dashboard: aggregate figures, achievements,
// streak details, and the recent-activity heatmap.
package stats

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/export"
	"github.com/abhisek/codecade/internal/latest"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/ui/components"
	"github.com/abhisek/codecade/internal/ui/layout"
	"github.com/abhisek/codecade/internal/ui/theme"
)

// timeframes in cycle order.
var timeframes = []string{api.TimeframeAll, api.TimeframeMonth, api.TimeframeWeek}

// reportLoadedMsg carries a fetched report, tagged so a slow response for an
// abandoned timeframe is dropped.
type reportLoadedMsg struct {
	seq    uint64
	report *api.StatsReport
	err    error
}

// streakLoadedMsg carries the detailed streak figures.
type streakLoadedMsg struct {
	info *api.StreakInfo
	err  error
}

// certificateDoneMsg carries the certificate export outcome.
type certificateDoneMsg struct {
	path string
	err  error
}

// spinnerTickMsg animates the loading spinner.
type spinnerTickMsg time.Time

// StatsScreen drives the dashboard.
type StatsScreen struct {
	client *api.Client
	theme  *theme.Theme

	timeframe int
	report    *api.StatsReport
	streak    *api.StreakInfo
	seq       *latest.Tracker

	badgeCursor int
	showBadge   bool // modal over the grid

	loading bool
	spinner components.Spinner
	note    string
	errMsg  string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)
var _ screen.ThemeAware = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(client *api.Client, th *theme.Theme) *StatsScreen {
	return &StatsScreen{
		client: client,
		theme:  th,
		seq:    &latest.Tracker{},
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchReport(), s.fetchStreak(), spinnerTick())
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

// SetTheme swaps the color scheme.
func (s *StatsScreen) SetTheme(th *theme.Theme) {
	s.theme = th
}

func (s *StatsScreen) fetchReport() tea.Cmd {
	seq := s.seq.Next()
	s.loading = true
	client := s.client
	timeframe := timeframes[s.timeframe]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		report, err := client.Stats(ctx, timeframe)
		return reportLoadedMsg{seq: seq, report: report, err: err}
	}
}

func (s *StatsScreen) fetchStreak() tea.Cmd {
	client := s.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		info, err := client.Streak(ctx)
		return streakLoadedMsg{info: info, err: err}
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		if !s.seq.Accept(msg.seq) {
			return s, nil
		}
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.report = msg.report
		if s.badgeCursor >= len(msg.report.Achievements) {
			s.badgeCursor = 0
		}
		return s, nil

	case streakLoadedMsg:
		if msg.err == nil {
			s.streak = msg.info
		}
		return s, nil

	case certificateDoneMsg:
		if msg.err != nil {
			s.note = "Certificate failed: " + msg.err.Error()
		} else {
			s.note = "Certificate written to " + msg.path
		}
		return s, nil

	case spinnerTickMsg:
		if s.loading {
			s.spinner.Advance()
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *StatsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showBadge {
		switch msg.String() {
		case "enter", "q":
			s.showBadge = false
		case "c":
			return s, s.writeCertificate()
		}
		return s, nil
	}

	s.note = ""
	switch msg.String() {
	case "t":
		s.timeframe = (s.timeframe + 1) % len(timeframes)
		return s, s.fetchReport()
	case "left", "h":
		if s.badgeCursor > 0 {
			s.badgeCursor--
		}
	case "right", "l":
		if s.report != nil && s.badgeCursor < len(s.report.Achievements)-1 {
			s.badgeCursor++
		}
	case "enter":
		if s.report != nil && len(s.report.Achievements) > 0 {
			s.showBadge = true
		}
	case "r":
		return s, tea.Batch(s.fetchReport(), s.fetchStreak(), spinnerTick())
	}
	return s, nil
}

func (s *StatsScreen) writeCertificate() tea.Cmd {
	if s.report == nil || s.badgeCursor >= len(s.report.Achievements) {
		return nil
	}
	badge := s.report.Achievements[s.badgeCursor]
	if !badge.Unlocked {
		s.note = "Only unlocked badges have certificates."
		return nil
	}
	return func() tea.Msg {
		path, err := export.WriteCertificate(export.CertificateInput{
			Name:        badge.Name,
			Description: badge.Description,
			Icon:        badge.Icon,
		}, "", time.Now())
		return certificateDoneMsg{path: path, err: err}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(components.SpinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.showBadge {
		return []layout.KeyHint{
			{Key: "C", Description: "Certificate"},
			{Key: "Enter", Description: "Close"},
		}
	}
	return []layout.KeyHint{
		{Key: "T", Description: "Timeframe"},
		{Key: "←→", Description: "Badges"},
		{Key: "Enter", Description: "Badge details"},
		{Key: "R", Description: "Refresh"},
	}
}
