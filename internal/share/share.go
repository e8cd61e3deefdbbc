// Package share composes share text and copies it to the system clipboard.
// Sharing is a pure side effect; it never talks to the platform.
package share

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
)

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

// DailySummary composes the share text for a completed daily challenge.
func DailySummary(title string, correct bool, streak int, day time.Time) string {
	var b strings.Builder

	result := "solved"
	mark := "✅"
	if !correct {
		result = "attempted"
		mark = "❌"
	}

	fmt.Fprintf(&b, "Codecade Daily · %s\n", day.Format("Jan 2, 2006"))
	fmt.Fprintf(&b, "%s I %s today's challenge: %s\n", mark, result, title)
	if streak > 1 {
		fmt.Fprintf(&b, "🔥 %d-day streak\n", streak)
	}
	b.WriteString("Play at codecade.dev")
	return b.String()
}
