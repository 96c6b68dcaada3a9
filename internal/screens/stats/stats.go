// Package stats summarizes the user's progress over the whole catalog.
package stats

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
	"github.com/abhisek/querydrill/internal/router"
	"github.com/abhisek/querydrill/internal/screen"
	"github.com/abhisek/querydrill/internal/ui/layout"
	"github.com/abhisek/querydrill/internal/ui/theme"
)

// StatsScreen lists every exercise with its classification and the
// per-variant breakdown.
type StatsScreen struct {
	ix   *catalog.Index
	prog highlight.Progress
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a stats screen.
func New(ix *catalog.Index, prog highlight.Progress) *StatsScreen {
	return &StatsScreen{ix: ix, prog: prog}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		if kmsg.String() == "q" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	var lines []string
	var solved, attempted int

	for _, ex := range s.ix.Exercises() {
		status := highlight.ClassifyExercise(ex, s.prog)
		switch status {
		case highlight.StatusCorrect:
			solved++
		case highlight.StatusAttempted:
			attempted++
		}

		var variants []string
		for _, label := range ex.VariantLabels() {
			vs := highlight.ClassifyVariant(s.ix, ex.ID, label, s.prog)
			variants = append(variants, renderVariant(label, vs))
		}

		line := fmt.Sprintf("  %-12s %s    %s",
			"Exercise "+ex.DisplayNumber,
			renderStatus(status),
			strings.Join(variants, " "),
		)
		lines = append(lines, line)
	}

	summary := theme.Subtitle.Render(fmt.Sprintf(
		"%d of %d exercises solved, %d attempted",
		solved, len(s.ix.Exercises()), attempted,
	))

	return lipgloss.JoinVertical(lipgloss.Left,
		summary,
		"",
		strings.Join(lines, "\n"),
	)
}

// renderStatus renders the exercise-level classification, padded so the
// variant columns line up.
func renderStatus(st highlight.Status) string {
	label := st.Label()
	padded := fmt.Sprintf("%-9s", label)
	switch st {
	case highlight.StatusCorrect:
		return theme.SolvedItem.Render(padded)
	case highlight.StatusAttempted:
		return theme.AttemptedItem.Render(padded)
	default:
		return theme.Hint.Render(padded)
	}
}

func renderVariant(label string, st highlight.Status) string {
	switch st {
	case highlight.StatusCorrect:
		return theme.SolvedItem.Render(label + "✔")
	case highlight.StatusAttempted:
		return theme.AttemptedItem.Render(label + "…")
	default:
		return theme.Hint.Render(label + " ")
	}
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

// KeyHints returns the key binding hints for the footer.
func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}
