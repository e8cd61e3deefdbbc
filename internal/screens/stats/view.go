package stats

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codecade/internal/api"
)

// heatLevels maps activity counts to shaded cells, lightest to darkest.
var heatLevels = []string{"·", "░", "▒", "▓", "█"}

func (s *StatsScreen) View(width, height int) string {
	th := s.theme

	if s.loading && s.report == nil {
		line := s.spinner.View(th, "Crunching your numbers…")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, line)
	}
	if s.errMsg != "" && s.report == nil {
		content := lipgloss.NewStyle().Foreground(th.Error).Bold(true).Render("Stats unavailable") +
			"\n\n" + th.Body.Render(s.errMsg) +
			"\n\n" + th.Hint.Render("Press R to retry, Esc to go back.")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, th.Card.Render(content))
	}
	if s.report == nil {
		return ""
	}

	if s.showBadge {
		return s.viewBadgeModal(width, height)
	}

	var b strings.Builder
	b.WriteString(th.Hint.Render("Timeframe: ") + th.Body.Bold(true).Render(timeframes[s.timeframe]))
	b.WriteString("\n\n")
	b.WriteString(s.viewFigures())
	b.WriteString("\n\n")
	b.WriteString(s.viewBadges())
	b.WriteString("\n\n")
	b.WriteString(s.viewHeatmap())
	if s.note != "" {
		b.WriteString("\n\n" + th.Hint.Render(s.note))
	}

	maxWidth := width - 6
	if maxWidth > 110 {
		maxWidth = 110
	}
	card := th.Card.Width(maxWidth).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (s *StatsScreen) viewFigures() string {
	th := s.theme
	r := s.report
	var b strings.Builder

	b.WriteString(th.Body.Render(fmt.Sprintf("Challenges solved: %d", r.TotalChallenges)))

	if len(r.ByDifficulty) > 0 {
		var parts []string
		for _, d := range api.Difficulties {
			if n, ok := r.ByDifficulty[d]; ok {
				parts = append(parts, fmt.Sprintf("%s %d", d, n))
			}
		}
		if len(parts) > 0 {
			b.WriteString(th.Hint.Render("   (" + strings.Join(parts, " · ") + ")"))
		}
	}
	b.WriteString("\n")

	if len(r.SuccessRate) > 0 {
		keys := make([]string, 0, len(r.SuccessRate))
		for k := range r.SuccessRate {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s %d%%", k, r.SuccessRate[k]))
		}
		b.WriteString(th.Body.Render("Success rate: " + strings.Join(parts, " · ")))
		b.WriteString("\n")
	}

	if len(r.FavoriteTopics) > 0 {
		var parts []string
		for i, t := range r.FavoriteTopics {
			if i == 3 {
				break
			}
			parts = append(parts, fmt.Sprintf("%s (%d)", t.Name, t.Count))
		}
		b.WriteString(th.Body.Render("Favorite topics: " + strings.Join(parts, ", ")))
		b.WriteString("\n")
	}

	streakLine := fmt.Sprintf("🔥 Streak: %d days", r.Streak)
	if s.streak != nil {
		streakLine += fmt.Sprintf("   Longest: %d   Active days: %d",
			s.streak.LongestStreak, s.streak.TotalActiveDays)
	}
	b.WriteString(th.Correct.Render(streakLine))
	return b.String()
}

func (s *StatsScreen) viewBadges() string {
	th := s.theme
	var b strings.Builder

	unlocked := 0
	for _, a := range s.report.Achievements {
		if a.Unlocked {
			unlocked++
		}
	}
	b.WriteString(th.Body.Bold(true).Render(
		fmt.Sprintf("Achievements %d/%d", unlocked, len(s.report.Achievements))))
	b.WriteString("\n")

	for i, a := range s.report.Achievements {
		cell := a.Icon
		if !a.Unlocked {
			cell = "🔒"
		}
		if i == s.badgeCursor {
			b.WriteString(th.Selected.Render("[" + cell + "]"))
		} else {
			b.WriteString(th.Unselected.Render(" " + cell + " "))
		}
	}
	return b.String()
}

func (s *StatsScreen) viewHeatmap() string {
	th := s.theme
	days := s.report.RecentActivity
	if len(days) == 0 {
		return th.Hint.Render("No recent activity.")
	}

	var cells strings.Builder
	for _, day := range days {
		level := day.Count
		if level >= len(heatLevels) {
			level = len(heatLevels) - 1
		}
		cells.WriteString(heatLevels[level])
		cells.WriteString(" ")
	}

	return th.Body.Bold(true).Render("Recent activity") + "\n" +
		th.Body.Render(strings.TrimRight(cells.String(), " "))
}

func (s *StatsScreen) viewBadgeModal(width, height int) string {
	th := s.theme
	a := s.report.Achievements[s.badgeCursor]

	var b strings.Builder
	icon := a.Icon
	if !a.Unlocked {
		icon = "🔒"
	}
	b.WriteString(th.Title.Render(icon + " " + a.Name))
	b.WriteString("\n\n")
	b.WriteString(th.Body.Render(a.Description))
	b.WriteString("\n\n")
	switch {
	case a.Unlocked:
		b.WriteString(th.Correct.Render("Unlocked"))
		b.WriteString("\n" + th.Hint.Render("Press C to save a certificate."))
	case a.Total > 0:
		b.WriteString(th.Hint.Render(fmt.Sprintf("Progress: %d/%d", a.Progress, a.Total)))
	default:
		b.WriteString(th.Hint.Render("Locked"))
	}
	if s.note != "" {
		b.WriteString("\n\n" + th.Hint.Render(s.note))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, th.Card.Render(b.String()))
}
