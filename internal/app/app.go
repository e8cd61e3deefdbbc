// Package app wires the API client, theme, and screen router into the root
// Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/config"
	"github.com/abhisek/codecade/internal/latest"
	"github.com/abhisek/codecade/internal/quota"
	"github.com/abhisek/codecade/internal/router"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/screens/home"
	"github.com/abhisek/codecade/internal/ui/layout"
	"github.com/abhisek/codecade/internal/ui/theme"
)

// Options configures the application.
type Options struct {
	Config config.Config
	Client *api.Client
}

// quotaFetchedMsg carries the result of the startup quota fetch, tagged so
// a slow response never overwrites a newer one.
type quotaFetchedMsg struct {
	seq   uint64
	state quota.State
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	client *api.Client
	theme  *theme.Theme

	quota     quota.State
	warnAt    int
	quotaSeq  *latest.Tracker
	haveQuota bool

	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	th := theme.ByName(opts.Config.Theme)
	homeScreen := home.New(opts.Client, th)
	return AppModel{
		router:   router.New(homeScreen),
		client:   opts.Client,
		theme:    th,
		warnAt:   opts.Config.WarnThreshold,
		quotaSeq: &latest.Tracker{},
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.fetchQuota()
}

func (m AppModel) fetchQuota() tea.Cmd {
	seq := m.quotaSeq.Next()
	client := m.client
	return func() tea.Msg {
		state, err := client.Quota(context.Background())
		if err != nil {
			// The banner simply stays hidden until a screen reports quota.
			return nil
		}
		return quotaFetchedMsg{seq: seq, state: state}
	}
}

func (m AppModel) applyTheme(s screen.Screen) {
	if ta, ok := s.(screen.ThemeAware); ok {
		ta.SetTheme(m.theme)
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case quotaFetchedMsg:
		if m.quotaSeq.Accept(msg.seq) {
			m.quota = msg.state
			m.haveQuota = true
		}
		return m, nil

	case router.PushScreenMsg:
		// Screens are sometimes built before a theme toggle lands; align
		// them with the current theme as they enter the stack.
		m.applyTheme(msg.Screen)
		return m, m.router.Update(msg)

	case router.ReplaceScreenMsg:
		m.applyTheme(msg.Screen)
		return m, m.router.Update(msg)

	case screen.QuotaUpdatedMsg:
		// Screens report quota from their own responses; that is always
		// fresher than any in-flight startup fetch.
		m.quotaSeq.Next()
		m.quota = msg.State
		m.haveQuota = true
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			m.theme = m.theme.Toggle()
			m.router.Each(func(s screen.Screen) {
				if ta, ok := s.(screen.ThemeAware); ok {
					ta.SetTheme(m.theme)
				}
			})
			return m, m.router.Update(screen.ThemeChangedMsg{})
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.theme, m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	banner := ""
	if m.haveQuota {
		banner = layout.QuotaBanner(m.theme, m.quota, m.warnAt)
	}
	header := layout.RenderHeader(m.theme, title, banner, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(m.theme, footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		hints := provider.KeyHints()
		if m.router.Depth() > 1 {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
		return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+T", Description: "Theme"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
