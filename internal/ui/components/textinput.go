package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codecade/internal/ui/theme"
)

// TextInput wraps bubbles/textinput with Codecade styling.
type TextInput struct {
	Model textinput.Model
	theme *theme.Theme
}

// NewTextInput creates a new styled text input.
func NewTextInput(th *theme.Theme, placeholder string, charLimit int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	return TextInput{Model: ti, theme: th}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	return t.Model.View()
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Focus puts the input into edit mode.
func (t *TextInput) Focus() tea.Cmd {
	return t.Model.Focus()
}

// Blur takes the input out of edit mode.
func (t *TextInput) Blur() {
	t.Model.Blur()
}

// Focused reports whether the input is in edit mode.
func (t TextInput) Focused() bool {
	return t.Model.Focused()
}

// Reset clears the current value.
func (t *TextInput) Reset() {
	t.Model.Reset()
}
