package components

import (
	"strconv"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// NumberInput wraps bubbles/textinput for entering a question id.
type NumberInput struct {
	Model textinput.Model
}

// NewNumberInput creates a focused numeric input.
func NewNumberInput(placeholder string, maxDigits int) NumberInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	if maxDigits > 0 {
		ti.CharLimit = maxDigits
	}
	return NumberInput{Model: ti}
}

// Init returns the initial command.
func (n NumberInput) Init() tea.Cmd {
	return n.Model.Focus()
}

// Update handles messages, swallowing non-digit key presses.
func (n NumberInput) Update(msg tea.Msg) (NumberInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && (key[0] < '0' || key[0] > '9') {
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.Model, cmd = n.Model.Update(msg)
	return n, cmd
}

// View renders the input.
func (n NumberInput) View() string {
	return n.Model.View()
}

// Value returns the entered number. ok is false while the input is
// empty or unparsable.
func (n NumberInput) Value() (int, bool) {
	v, err := strconv.Atoi(n.Model.Value())
	if err != nil {
		return 0, false
	}
	return v, true
}

// Reset clears the input.
func (n *NumberInput) Reset() {
	n.Model.SetValue("")
}
