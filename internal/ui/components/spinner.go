package components

import (
	"time"

	"github.com/abhisek/codecade/internal/ui/theme"
)

// SpinnerInterval is how often screens should schedule spinner ticks.
const SpinnerInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner is a frame cycler for loading states. Screens own the tick
// scheduling; the spinner only tracks which frame to draw.
type Spinner struct {
	frame int
}

// Advance moves to the next frame.
func (s *Spinner) Advance() {
	s.frame = (s.frame + 1) % len(spinnerFrames)
}

// View renders the current frame with a label.
func (s Spinner) View(th *theme.Theme, label string) string {
	return th.Selected.Render(spinnerFrames[s.frame]) + " " + th.Body.Render(label)
}
