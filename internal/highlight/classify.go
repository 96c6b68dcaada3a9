// Package highlight classifies catalog entries against the user's
// progress so the UI can mark them solved, attempted, or untouched.
package highlight

import (
	"github.com/abhisek/querydrill/internal/catalog"
)

// Status is the tri-state highlight classification.
type Status int

const (
	StatusNeutral   Status = iota // Never attempted
	StatusAttempted               // Attempted, not yet solved
	StatusCorrect                 // Solved at least once
)

// Label returns the display label for a status.
func (s Status) Label() string {
	switch s {
	case StatusCorrect:
		return "Solved"
	case StatusAttempted:
		return "Attempted"
	default:
		return ""
	}
}

// Progress holds the question ids the user has written answers for and
// the ids answered correctly. A nil set is treated as empty, so the
// zero value means no progress.
type Progress struct {
	Written map[int]bool
	Correct map[int]bool
}

// NewProgress builds a Progress from id slices.
func NewProgress(written, correct []int) Progress {
	p := Progress{
		Written: make(map[int]bool, len(written)),
		Correct: make(map[int]bool, len(correct)),
	}
	for _, id := range written {
		p.Written[id] = true
	}
	for _, id := range correct {
		p.Correct[id] = true
	}
	return p
}

// ClassifyExercise classifies a whole exercise: solved if any of its
// questions was answered correctly, attempted if any was written but
// none solved, neutral otherwise. Solved always wins over attempted.
func ClassifyExercise(ex catalog.Exercise, p Progress) Status {
	attempted := false
	for _, q := range ex.Questions {
		if p.Correct[q.ID] {
			return StatusCorrect
		}
		if p.Written[q.ID] {
			attempted = true
		}
	}
	if attempted {
		return StatusAttempted
	}
	return StatusNeutral
}

// ClassifyVariant classifies a single variant within an exercise.
// An unknown exercise or variant label classifies as neutral.
func ClassifyVariant(ix *catalog.Index, exerciseID int, variant string, p Progress) Status {
	q, err := ix.QuestionByVariant(exerciseID, variant)
	if err != nil {
		// Lookups only fail with ErrNotFound; a missing target is neutral.
		return StatusNeutral
	}
	switch {
	case p.Correct[q.ID]:
		return StatusCorrect
	case p.Written[q.ID]:
		return StatusAttempted
	default:
		return StatusNeutral
	}
}
