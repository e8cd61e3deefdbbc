// Package home is the entry screen: the main menu plus a short tagline.
package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/router"
	"github.com/abhisek/codecade/internal/screen"
	"github.com/abhisek/codecade/internal/screens/daily"
	"github.com/abhisek/codecade/internal/screens/generate"
	historyscreen "github.com/abhisek/codecade/internal/screens/history"
	"github.com/abhisek/codecade/internal/screens/stats"
	"github.com/abhisek/codecade/internal/ui/components"
	"github.com/abhisek/codecade/internal/ui/theme"
)

const logo = `
 ██████╗ ██████╗ ██████╗ ███████╗ ██████╗ █████╗ ██████╗ ███████╗
██╔════╝██╔═══██╗██╔══██╗██╔════╝██╔════╝██╔══██╗██╔══██╗██╔════╝
██║     ██║   ██║██║  ██║█████╗  ██║     ███████║██║  ██║█████╗
██║     ██║   ██║██║  ██║██╔══╝  ██║     ██╔══██║██║  ██║██╔══╝
╚██████╗╚██████╔╝██████╔╝███████╗╚██████╗██║  ██║██████╔╝███████╗
 ╚═════╝ ╚═════╝ ╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝╚═════╝ ╚══════╝`

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	theme *theme.Theme
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.ThemeAware = (*HomeScreen)(nil)

// New creates a new HomeScreen. The menu actions read h.theme at push
// time, so screens opened after a theme toggle pick up the new scheme.
func New(client *api.Client, th *theme.Theme) *HomeScreen {
	h := &HomeScreen{theme: th}

	items := []components.MenuItem{
		{Label: "GENERATE CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: generate.New(client, h.theme)}
			}
		}},
		{Label: "DAILY CHALLENGE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: daily.New(client, h.theme)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(client, h.theme)}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(client, h.theme)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(th, items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// SetTheme swaps the color scheme.
func (h *HomeScreen) SetTheme(th *theme.Theme) {
	h.theme = th
	h.menu.SetTheme(th)
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	th := h.theme

	sections := []string{
		lipgloss.NewStyle().Foreground(th.Primary).Render(strings.TrimPrefix(logo, "\n")),
		th.Subtitle.Render("AI-generated coding challenges, one keystroke away"),
		h.menu.View(),
	}

	content := strings.Join(sections, "\n\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
