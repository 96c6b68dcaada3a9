package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/highlight"
	"github.com/abhisek/querydrill/internal/ui/theme"
)

// PickerItem is a single option with its highlight classification.
type PickerItem struct {
	Label  string
	Status highlight.Status
}

// Picker is a vertical option list whose items are colored by their
// highlight status. It carries no domain state; the owning screen maps
// the cursor back to catalog entities.
type Picker struct {
	Title  string
	Items  []PickerItem
	Cursor int
}

// NewPicker creates a picker over the given items.
func NewPicker(title string, items []PickerItem) Picker {
	return Picker{Title: title, Items: items}
}

// SetItems replaces the items, clamping the cursor.
func (p *Picker) SetItems(items []PickerItem) {
	p.Items = items
	if p.Cursor >= len(items) {
		p.Cursor = len(items) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
}

// Move shifts the cursor by delta within bounds.
func (p *Picker) Move(delta int) {
	next := p.Cursor + delta
	if next < 0 || next >= len(p.Items) {
		return
	}
	p.Cursor = next
}

// MoveTo places the cursor on the item with the given label, if present.
func (p *Picker) MoveTo(label string) {
	for i, item := range p.Items {
		if item.Label == label {
			p.Cursor = i
			return
		}
	}
}

// Current returns the item under the cursor.
func (p Picker) Current() (PickerItem, bool) {
	if p.Cursor < 0 || p.Cursor >= len(p.Items) {
		return PickerItem{}, false
	}
	return p.Items[p.Cursor], true
}

// statusStyle maps a highlight status to its item style.
func statusStyle(s highlight.Status) lipgloss.Style {
	switch s {
	case highlight.StatusCorrect:
		return theme.SolvedItem
	case highlight.StatusAttempted:
		return theme.AttemptedItem
	default:
		return theme.NeutralItem
	}
}

// statusBadge returns the marker rendered after an item label.
func statusBadge(s highlight.Status) string {
	switch s {
	case highlight.StatusCorrect:
		return " ✔"
	case highlight.StatusAttempted:
		return " …"
	default:
		return ""
	}
}

// View renders the picker. The cursor row is only emphasized when the
// picker is focused.
func (p Picker) View(focused bool) string {
	var b strings.Builder

	title := theme.Subtitle.Render(p.Title)
	if focused {
		title = theme.Title.Render(p.Title)
	}
	b.WriteString(title + "\n\n")

	for i, item := range p.Items {
		style := statusStyle(item.Status)
		line := "    " + item.Label + statusBadge(item.Status)
		if i == p.Cursor && focused {
			line = "  ▸ " + item.Label + statusBadge(item.Status)
			style = style.Bold(true)
		} else if i == p.Cursor {
			line = "  ▹ " + item.Label + statusBadge(item.Status)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}
