// Package selection owns the (exercise, variant) choice of one UI
// session and notifies an observer whenever the effectively selected
// question changes.
package selection

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
)

// Observer receives each newly resolved question exactly once per
// change. It is called synchronously from the transition that caused
// the change.
type Observer func(catalog.ResolvedQuestion)

// Machine is the selection state machine. It starts empty, moves to
// exercise-chosen on the first pick, and to resolved once exercise and
// variant together name an existing question. One instance per session;
// not safe for concurrent use, which the single-threaded event model
// never requires.
type Machine struct {
	ix        *catalog.Index
	observer  Observer
	sessionID string
	progress  highlight.Progress

	exerciseID  int
	hasExercise bool
	variant     string
	hasVariant  bool

	// resolved caches the last notified question so that re-resolving
	// the same (exercise, variant) pair stays silent.
	resolved *catalog.ResolvedQuestion
}

// NewMachine creates a machine over the given catalog index. The
// observer may be nil, in which case changes are tracked but not
// delivered.
func NewMachine(ix *catalog.Index, observer Observer) *Machine {
	return &Machine{
		ix:        ix,
		observer:  observer,
		sessionID: uuid.New().String(),
	}
}

// SessionID returns the machine's session identifier.
func (m *Machine) SessionID() string {
	return m.sessionID
}

// Progress returns the progress sets currently in effect.
func (m *Machine) Progress() highlight.Progress {
	return m.progress
}

// SetProgress replaces the progress sets. Resolution does not depend on
// progress, so this never emits a notification; it only affects the
// default-variant policy of future exercise picks and the highlight
// classifications read by the rendering layer.
func (m *Machine) SetProgress(p highlight.Progress) {
	m.progress = p
	m.resolve()
}

// ChooseExercise selects an exercise by id. If the previously selected
// variant does not exist in the new exercise, the default variant is
// picked in the same transition, so the variant never dangles.
// Re-choosing the current exercise keeps the current variant.
func (m *Machine) ChooseExercise(id int) error {
	ex, err := m.ix.Exercise(id)
	if err != nil {
		return fmt.Errorf("choose exercise: %w", err)
	}

	if m.hasExercise && m.exerciseID == id {
		m.resolve()
		return nil
	}

	m.exerciseID = id
	m.hasExercise = true

	if !m.hasVariant || !slices.Contains(ex.VariantLabels(), m.variant) {
		m.variant = DefaultVariant(ex, m.progress)
		m.hasVariant = true
	}

	m.resolve()
	return nil
}

// ChooseVariant selects a variant label within the current exercise.
func (m *Machine) ChooseVariant(label string) error {
	if !m.hasExercise {
		return fmt.Errorf("choose variant %q: no exercise chosen", label)
	}
	m.variant = label
	m.hasVariant = true
	m.resolve()
	return nil
}

// Selected returns the current (exercise id, variant) pair. ok is false
// until an exercise has been chosen.
func (m *Machine) Selected() (exerciseID int, variant string, ok bool) {
	if !m.hasExercise {
		return 0, "", false
	}
	return m.exerciseID, m.variant, true
}

// VariantOptions returns the variant labels of the current exercise in
// catalog order, or nil if no exercise is chosen.
func (m *Machine) VariantOptions() []string {
	if !m.hasExercise {
		return nil
	}
	ex, err := m.ix.Exercise(m.exerciseID)
	if err != nil {
		return nil
	}
	return ex.VariantLabels()
}

// Resolved returns the last successfully resolved question.
func (m *Machine) Resolved() (catalog.ResolvedQuestion, bool) {
	if m.resolved == nil {
		return catalog.ResolvedQuestion{}, false
	}
	return *m.resolved, true
}

// resolve re-derives the resolved question from the current selection.
// A failed lookup (stale variant) leaves all state untouched. A
// successful lookup notifies the observer only if the question actually
// changed, compared by question id and owning exercise id.
func (m *Machine) resolve() {
	if !m.hasExercise || !m.hasVariant {
		return
	}
	rq, err := m.ix.Resolve(m.exerciseID, m.variant)
	if err != nil {
		return
	}
	if m.resolved != nil && m.resolved.ID == rq.ID && m.resolved.Exercise.ID == rq.Exercise.ID {
		return
	}
	m.resolved = &rq
	if m.observer != nil {
		m.observer(rq)
	}
}
