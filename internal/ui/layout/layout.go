package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/quota"
	"github.com/abhisek/codecade/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(th *theme.Theme, width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(th.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// QuotaBanner renders the header quota indicator. Coloring is a pure
// function of remaining/total against the warning threshold.
func QuotaBanner(th *theme.Theme, state quota.State, threshold int) string {
	switch quota.LevelFor(state.Remaining, threshold) {
	case quota.LevelExhausted:
		msg := "◆ quota exhausted"
		if !state.NextReset.IsZero() {
			msg += " · resets " + state.NextReset.Format("Jan 2")
		}
		return lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render(msg)
	case quota.LevelWarning:
		return lipgloss.NewStyle().Foreground(th.Warning).Bold(true).
			Render(fmt.Sprintf("◆ %d/%d left", state.Remaining, state.Total))
	default:
		return lipgloss.NewStyle().Foreground(th.Accent).
			Render(fmt.Sprintf("◆ %d/%d left", state.Remaining, state.Total))
	}
}

// RenderHeader renders the application header bar with the quota banner on
// the right.
func RenderHeader(th *theme.Theme, title, banner string, width int) string {
	left := lipgloss.NewStyle().
		Foreground(th.Primary).
		Bold(true).
		Render("  Codecade")

	center := lipgloss.NewStyle().
		Foreground(th.Text).
		Render(title)

	right := banner

	leftLen := lipgloss.Width(left)
	centerLen := lipgloss.Width(center)
	rightLen := lipgloss.Width(right)

	innerWidth := width - 4 // border padding
	if innerWidth < 0 {
		innerWidth = 0
	}

	leftGap := (innerWidth-centerLen)/2 - leftLen
	if leftGap < 1 {
		leftGap = 1
	}
	rightGap := innerWidth - leftLen - leftGap - centerLen - rightLen
	if rightGap < 1 {
		rightGap = 1
	}

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Render(content)
}

// RenderFooter renders the footer with key hints.
func RenderFooter(th *theme.Theme, hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		part := lipgloss.NewStyle().Foreground(th.Text).Bold(true).Render(h.Key) +
			" " +
			lipgloss.NewStyle().Foreground(th.TextDim).Render(h.Description)
		parts = append(parts, part)
	}

	content := "  " + strings.Join(parts, "   ")

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Border).
		Render(content)
}

// RenderFrame composes the full frame: header + content + footer.
func RenderFrame(header, content, footer string, width, height int) string {
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)

	contentHeight := height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	styledContent := lipgloss.NewStyle().
		Width(width).
		Height(contentHeight).
		Render(content)

	return header + "\n" + styledContent + "\n" + footer
}
