package generate

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
)

func (g *GenerateScreen) View(width, height int) string {
	switch g.phase {
	case phaseLoading:
		return g.viewLoading(width, height)
	case phaseAttempt:
		return g.viewAttempt(width, height)
	case phaseError:
		return g.viewError(width, height)
	default:
		return g.viewForm(width, height)
	}
}

func (g *GenerateScreen) viewForm(width, height int) string {
	th := g.theme
	var b strings.Builder

	b.WriteString(th.Body.Bold(true).Render("Pick a topic"))
	b.WriteString("\n\n")

	for i, topic := range presetTopics {
		if i == g.topicIdx && !g.custom.Focused() {
			b.WriteString(th.Selected.Render("  ▸ " + topic))
		} else {
			b.WriteString(th.Unselected.Render("    " + topic))
		}
		b.WriteString("\n")
	}

	customIdx := len(presetTopics)
	if g.topicIdx == customIdx || g.custom.Focused() {
		b.WriteString(th.Selected.Render("  ▸ Custom: "))
	} else {
		b.WriteString(th.Unselected.Render("    Custom: "))
	}
	b.WriteString(g.custom.View())
	b.WriteString("\n\n")

	b.WriteString(th.Body.Render("Difficulty: "))
	for i, d := range api.Difficulties {
		if i == g.difficulty {
			b.WriteString(th.Selected.Render(" [" + d + "] "))
		} else {
			b.WriteString(th.Hint.Render("  " + d + "  "))
		}
	}

	if g.haveQuota && g.quota.Exhausted() {
		b.WriteString("\n\n")
		msg := "Daily quota exhausted. Generation is paused until it resets"
		if !g.quota.NextReset.IsZero() {
			msg += " on " + g.quota.NextReset.Format("Jan 2")
		}
		msg += "."
		b.WriteString(lipgloss.NewStyle().Foreground(th.Error).Render(msg))
		b.WriteString("\n")
		b.WriteString(th.Hint.Render("History, stats, and the daily challenge remain available."))
	}

	card := th.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (g *GenerateScreen) viewLoading(width, height int) string {
	line := g.spinner.View(g.theme, fmt.Sprintf("Generating a %s challenge on %s…",
		api.Difficulties[g.difficulty], g.pending))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line)
}

func (g *GenerateScreen) viewAttempt(width, height int) string {
	th := g.theme
	ch := g.attempt.Challenge

	header := th.Title.Render(ch.Title) + "\n" +
		th.Hint.Render(fmt.Sprintf("%s · %s", ch.Topic, ch.Difficulty))

	body := g.choices.View(g.attempt)
	if g.hintErr != "" {
		body += "\n" + lipgloss.NewStyle().Foreground(th.Warning).Render(g.hintErr)
	}

	maxWidth := width - 8
	if maxWidth > 100 {
		maxWidth = 100
	}
	card := th.Card.Width(maxWidth).Render(header + "\n\n" + body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (g *GenerateScreen) viewError(width, height int) string {
	th := g.theme
	content := lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("Generation failed") +
		"\n\n" + th.Body.Render(g.errMsg) +
		"\n\n" + th.Hint.Render("Press R to retry, Esc to go back.")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, th.Card.Render(content))
}
