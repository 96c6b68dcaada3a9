// Package browse implements the exercise/variant selector surface.
// It issues discrete picks into the selection machine and renders each
// option with its highlight classification; when the machine reports a
// newly resolved question, the detail screen is pushed.
package browse

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
	"github.com/abhisek/querydrill/internal/router"
	"github.com/abhisek/querydrill/internal/screen"
	"github.com/abhisek/querydrill/internal/screens/detail"
	"github.com/abhisek/querydrill/internal/selection"
	"github.com/abhisek/querydrill/internal/ui/components"
	"github.com/abhisek/querydrill/internal/ui/layout"
	"github.com/abhisek/querydrill/internal/ui/theme"
)

type pane int

const (
	paneExercises pane = iota
	paneVariants
)

// BrowseScreen renders the two pickers and owns one selection machine.
type BrowseScreen struct {
	ix      *catalog.Index
	machine *selection.Machine
	prog    highlight.Progress

	exercises   components.Picker
	exerciseIDs []int
	variants    components.Picker
	focus       pane

	gotoActive bool
	gotoInput  components.NumberInput
	gotoErr    string

	// notified buffers machine notifications raised during the current
	// Update call; it is drained into a push command before returning.
	notified []catalog.ResolvedQuestion
}

var (
	_ screen.Screen    = (*BrowseScreen)(nil)
	_ router.Refresher = (*BrowseScreen)(nil)
)

// New creates a browse screen over the catalog and progress sets.
func New(ix *catalog.Index, prog highlight.Progress) *BrowseScreen {
	s := &BrowseScreen{
		ix:   ix,
		prog: prog,
	}
	s.machine = selection.NewMachine(ix, func(rq catalog.ResolvedQuestion) {
		s.notified = append(s.notified, rq)
	})
	s.machine.SetProgress(prog)

	items := make([]components.PickerItem, 0, len(ix.Exercises()))
	for _, ex := range ix.Exercises() {
		s.exerciseIDs = append(s.exerciseIDs, ex.ID)
		items = append(items, components.PickerItem{
			Label:  "Exercise " + ex.DisplayNumber,
			Status: highlight.ClassifyExercise(ex, prog),
		})
	}
	s.exercises = components.NewPicker("Exercises", items)
	s.variants = components.NewPicker("Variants", nil)
	return s
}

func (s *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (s *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.gotoActive {
		return s.updateGoto(msg)
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "k":
			s.focusedPicker().Move(-1)
		case "down", "j":
			s.focusedPicker().Move(1)
		case "tab", "left", "right", "h", "l":
			s.toggleFocus()
		case "g":
			s.gotoActive = true
			s.gotoErr = ""
			s.gotoInput = components.NewNumberInput("question id", 6)
			return s, s.gotoInput.Init()
		case "enter":
			s.commitPick()
		case "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s, s.drainNotifications()
}

// updateGoto handles input while the goto-by-id overlay is open.
func (s *BrowseScreen) updateGoto(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.gotoActive = false
			return s, nil
		case "enter":
			id, ok := s.gotoInput.Value()
			if !ok {
				return s, nil
			}
			if !s.jumpToQuestion(id) {
				s.gotoErr = "no such question id"
				s.gotoInput.Reset()
				return s, nil
			}
			s.gotoActive = false
			return s, s.drainNotifications()
		}
	}

	var cmd tea.Cmd
	s.gotoInput, cmd = s.gotoInput.Update(msg)
	return s, cmd
}

// commitPick applies the focused picker's cursor to the machine.
func (s *BrowseScreen) commitPick() {
	switch s.focus {
	case paneExercises:
		if s.exercises.Cursor < len(s.exerciseIDs) {
			if err := s.machine.ChooseExercise(s.exerciseIDs[s.exercises.Cursor]); err != nil {
				return
			}
			s.rebuildVariants()
			s.focus = paneVariants
		}
	case paneVariants:
		if item, ok := s.variants.Current(); ok {
			_ = s.machine.ChooseVariant(item.Label)
		}
	}
}

// jumpToQuestion selects a question by global id, issuing the exercise
// and variant picks as one action.
func (s *BrowseScreen) jumpToQuestion(id int) bool {
	ex, q, err := s.ix.QuestionByID(id)
	if err != nil {
		return false
	}
	if err := s.machine.ChooseExercise(ex.ID); err != nil {
		return false
	}
	if err := s.machine.ChooseVariant(q.Variant); err != nil {
		return false
	}
	s.syncPickers()
	return true
}

// rebuildVariants refreshes the variant picker from the current
// exercise and places the cursor on the machine's selected variant.
func (s *BrowseScreen) rebuildVariants() {
	exerciseID, variant, ok := s.machine.Selected()
	if !ok {
		s.variants.SetItems(nil)
		return
	}
	labels := s.machine.VariantOptions()
	items := make([]components.PickerItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, components.PickerItem{
			Label:  label,
			Status: highlight.ClassifyVariant(s.ix, exerciseID, label, s.prog),
		})
	}
	s.variants.SetItems(items)
	s.variants.MoveTo(variant)
}

// syncPickers aligns both pickers with the machine's selection.
func (s *BrowseScreen) syncPickers() {
	exerciseID, _, ok := s.machine.Selected()
	if !ok {
		return
	}
	for i, id := range s.exerciseIDs {
		if id == exerciseID {
			s.exercises.Cursor = i
			break
		}
	}
	s.rebuildVariants()
}

// Refresh re-syncs the pickers after the detail screen pops back.
func (s *BrowseScreen) Refresh() tea.Cmd {
	s.syncPickers()
	return nil
}

// drainNotifications turns buffered machine notifications into a push
// of the detail screen for the most recent one.
func (s *BrowseScreen) drainNotifications() tea.Cmd {
	if len(s.notified) == 0 {
		return nil
	}
	rq := s.notified[len(s.notified)-1]
	s.notified = s.notified[:0]
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: detail.New(rq, s.machine.SessionID())}
	}
}

func (s *BrowseScreen) focusedPicker() *components.Picker {
	if s.focus == paneVariants {
		return &s.variants
	}
	return &s.exercises
}

func (s *BrowseScreen) toggleFocus() {
	if s.focus == paneExercises && len(s.variants.Items) > 0 {
		s.focus = paneVariants
	} else {
		s.focus = paneExercises
	}
}

func (s *BrowseScreen) View(width, height int) string {
	left := s.exercises.View(s.focus == paneExercises)
	right := s.variants.View(s.focus == paneVariants)

	colWidth := width / 2
	if colWidth < 20 {
		colWidth = 20
	}
	leftCol := lipgloss.NewStyle().Width(colWidth).Render(left)
	rightCol := lipgloss.NewStyle().Width(colWidth).Render(right)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftCol, rightCol)

	if s.gotoActive {
		prompt := theme.Body.Render("Go to question id: ") + s.gotoInput.View()
		if s.gotoErr != "" {
			prompt += "  " + lipgloss.NewStyle().Foreground(theme.Error).Render(s.gotoErr)
		}
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", prompt)
	}

	return body
}

func (s *BrowseScreen) Title() string {
	return "Browse"
}

// KeyHints returns the key binding hints for the footer.
func (s *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Tab", Description: "Pane"},
		{Key: "Enter", Description: "Select"},
		{Key: "g", Description: "Go to id"},
		{Key: "Esc", Description: "Back"},
	}
}
