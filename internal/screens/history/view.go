package history

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
	"github.com/abhisek/codecade/internal/ui/components"
)

func (h *HistoryScreen) View(width, height int) string {
	th := h.theme

	if h.review != nil {
		return h.viewReview(width, height)
	}

	var b strings.Builder

	b.WriteString(h.viewFilterBar())
	b.WriteString("\n\n")

	switch {
	case h.loading && len(h.rows) == 0:
		b.WriteString(h.spinner.View(th, "Loading history…"))
	case h.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(th.Error).Render(h.errMsg))
	case len(h.rows) == 0:
		b.WriteString(th.Hint.Render("No challenges match. Try clearing the filters."))
	default:
		b.WriteString(h.viewRows(width))
	}

	b.WriteString("\n\n")
	b.WriteString(th.Hint.Render(fmt.Sprintf("Page %d/%d", h.pager.Page()+1, h.pager.PageCount())))
	if h.note != "" {
		b.WriteString("   " + th.Hint.Render(h.note))
	}

	maxWidth := width - 6
	if maxWidth > 110 {
		maxWidth = 110
	}
	card := th.Card.Width(maxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (h *HistoryScreen) viewFilterBar() string {
	th := h.theme

	sortLabel := "newest"
	if h.pager.Sort() == api.SortOldest {
		sortLabel = "oldest"
	}
	diffLabel := h.pager.Difficulty()
	if diffLabel == "" {
		diffLabel = "all"
	}

	parts := []string{
		th.Hint.Render("sort: ") + th.Body.Render(sortLabel),
		th.Hint.Render("difficulty: ") + th.Body.Render(diffLabel),
		th.Hint.Render("search: ") + h.search.View(),
	}
	return strings.Join(parts, "   ")
}

func (h *HistoryScreen) viewRows(width int) string {
	th := h.theme
	var b strings.Builder

	titleWidth := width - 50
	if titleWidth < 20 {
		titleWidth = 20
	}

	for i, ch := range h.rows {
		star := "  "
		if h.bookmarks[ch.ID] {
			star = "★ "
		}

		title := truncate(ch.Title, titleWidth)
		line := fmt.Sprintf("%s%-*s  %-10s  %s", star, titleWidth, title, ch.Difficulty, ch.Topic)

		if i == h.cursor {
			b.WriteString(th.Selected.Render("▸ " + line))
		} else {
			b.WriteString(th.Unselected.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// truncate shortens s to at most max runes, ending with an ellipsis.
// Byte slicing would split multibyte titles mid-rune.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func (h *HistoryScreen) viewReview(width, height int) string {
	th := h.theme
	ch := h.review.Challenge

	header := th.Title.Render(ch.Title) + "\n" +
		th.Hint.Render(fmt.Sprintf("%s · %s", ch.Topic, ch.Difficulty))

	choices := components.NewChoiceList(th)
	body := choices.View(h.review)

	maxWidth := width - 8
	if maxWidth > 100 {
		maxWidth = 100
	}
	card := th.Card.Width(maxWidth).Render(header + "\n\n" + body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
