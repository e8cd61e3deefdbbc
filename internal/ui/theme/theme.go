// Package theme defines the color schemes. A Theme is an explicit object
// passed down from the app shell rather than ambient global state, so the
// light/dark toggle swaps one value instead of mutating package vars.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme is one resolved color scheme with its derived styles.
type Theme struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Warning   color.Color
	Text      color.Color
	TextDim   color.Color
	BgCard    color.Color
	Border    color.Color

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Body       lipgloss.Style
	Hint       lipgloss.Style
	Card       lipgloss.Style
	Bar        lipgloss.Style
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
}

// Dark is the default scheme.
func Dark() *Theme {
	t := &Theme{
		Name:      "dark",
		Primary:   lipgloss.Color("#8B5CF6"), // Violet
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Warning:   lipgloss.Color("#EAB308"), // Amber
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
	}
	return t.build()
}

// Light is the alternate scheme for bright terminals.
func Light() *Theme {
	t := &Theme{
		Name:      "light",
		Primary:   lipgloss.Color("#7C3AED"),
		Secondary: lipgloss.Color("#0D9488"),
		Accent:    lipgloss.Color("#EA580C"),
		Success:   lipgloss.Color("#16A34A"),
		Error:     lipgloss.Color("#E11D48"),
		Warning:   lipgloss.Color("#CA8A04"),
		Text:      lipgloss.Color("#0F172A"),
		TextDim:   lipgloss.Color("#64748B"),
		BgCard:    lipgloss.Color("#E2E8F0"),
		Border:    lipgloss.Color("#94A3B8"),
	}
	return t.build()
}

// ByName resolves a configured theme name, defaulting to dark.
func ByName(name string) *Theme {
	if name == "light" {
		return Light()
	}
	return Dark()
}

// Toggle returns the other scheme.
func (t *Theme) Toggle() *Theme {
	if t.Name == "dark" {
		return Light()
	}
	return Dark()
}

func (t *Theme) build() *Theme {
	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Align(lipgloss.Center)
	t.Subtitle = lipgloss.NewStyle().Foreground(t.TextDim).Align(lipgloss.Center)
	t.Body = lipgloss.NewStyle().Foreground(t.Text)
	t.Hint = lipgloss.NewStyle().Foreground(t.TextDim).Italic(true)
	t.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 2)
	t.Bar = lipgloss.NewStyle().Background(t.BgCard).Padding(0, 2)
	t.Selected = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	t.Unselected = lipgloss.NewStyle().Foreground(t.Text)
	t.Correct = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
	t.Incorrect = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	return t
}
