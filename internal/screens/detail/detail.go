// Package detail renders a single resolved question: its task
// description and the expected result table of the target query.
package detail

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/router"
	"github.com/abhisek/querydrill/internal/screen"
	"github.com/abhisek/querydrill/internal/ui/layout"
	"github.com/abhisek/querydrill/internal/ui/theme"
)

// DetailScreen shows one resolved question.
type DetailScreen struct {
	rq        catalog.ResolvedQuestion
	sessionID string
}

var _ screen.Screen = (*DetailScreen)(nil)

// New creates a detail screen for the given resolved question.
func New(rq catalog.ResolvedQuestion, sessionID string) *DetailScreen {
	return &DetailScreen{rq: rq, sessionID: sessionID}
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "q", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	badge := theme.Title.Render(fmt.Sprintf(
		"Exercise %s · Variant %s", s.rq.Exercise.DisplayNumber, s.rq.Variant,
	))
	idLine := theme.Hint.Render(fmt.Sprintf("question #%d · session %s", s.rq.ID, s.sessionID))

	desc := lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(width - 4).
		Render(s.rq.Description)

	table := renderTable(s.rq.EvaluableResult)

	return lipgloss.JoinVertical(lipgloss.Left,
		badge,
		"",
		desc,
		"",
		theme.Subtitle.Render("Expected result"),
		table,
		"",
		idLine,
	)
}

// renderTable renders the evaluable result as an aligned text table.
func renderTable(r catalog.EvaluableResult) string {
	widths := make([]int, len(r.Columns))
	for i, col := range r.Columns {
		widths[i] = len(col)
	}
	for _, row := range r.Data {
		for i, cell := range row {
			if i >= len(widths) {
				// Rows wider than the header are shown as-is; the catalog
				// format does not require equal lengths.
				widths = append(widths, 0)
			}
			if l := len(cell.String()); l > widths[i] {
				widths[i] = l
			}
		}
	}

	pad := func(s string, w int) string {
		if len(s) >= w {
			return s
		}
		return s + strings.Repeat(" ", w-len(s))
	}

	var b strings.Builder
	headerCells := make([]string, len(r.Columns))
	for i, col := range r.Columns {
		headerCells[i] = pad(col, widths[i])
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("  "+strings.Join(headerCells, "  ")) + "\n")

	sepCells := make([]string, len(widths))
	for i, w := range widths {
		sepCells[i] = strings.Repeat("─", w)
	}
	b.WriteString(theme.Hint.Render("  "+strings.Join(sepCells, "  ")) + "\n")

	for _, row := range r.Data {
		cells := make([]string, len(row))
		for i, cell := range row {
			w := 0
			if i < len(widths) {
				w = widths[i]
			}
			cells[i] = pad(cell.String(), w)
		}
		b.WriteString(theme.Body.Render("  "+strings.Join(cells, "  ")) + "\n")
	}

	return b.String()
}

func (s *DetailScreen) Title() string {
	return fmt.Sprintf("Exercise %s%s", s.rq.Exercise.DisplayNumber, s.rq.Variant)
}

// KeyHints returns the key binding hints for the footer.
func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}
