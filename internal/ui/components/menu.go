package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/ui/theme"
)

// MenuItem represents a single item in a navigation menu.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical navigation menu.
type Menu struct {
	Items    []MenuItem
	Selected int
	theme    *theme.Theme
}

// NewMenu creates a new menu with the given items, starting on the first
// enabled one.
func NewMenu(th *theme.Theme, items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{Items: items, Selected: selected, theme: th}
}

// SetTheme swaps the color scheme.
func (m *Menu) SetTheme(th *theme.Theme) {
	m.theme = th
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		switch {
		case item.Disabled:
			s += m.theme.Hint.Render("    "+item.Label) + "\n"
		case i == m.Selected:
			s += m.theme.Selected.Render("  ▸ "+item.Label) + "\n"
		default:
			s += m.theme.Unselected.Render("    "+item.Label) + "\n"
		}
	}
	return s
}
