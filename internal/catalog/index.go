package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by all lookups that miss.
var ErrNotFound = errors.New("not found")

// questionPos locates a question inside the exercises slice.
type questionPos struct {
	exercise int
	question int
}

// Index holds the immutable catalog with precomputed lookup maps.
// It is never mutated after New returns, so it is safe to share.
type Index struct {
	exercises    []Exercise
	exerciseByID map[int]int
	questionByID map[int]questionPos
}

// New builds an Index from exercises, validating structural invariants
// first. The slice is retained; callers must not mutate it afterwards.
func New(exercises []Exercise) (*Index, error) {
	if err := validateExercises(exercises); err != nil {
		return nil, err
	}

	ix := &Index{
		exercises:    exercises,
		exerciseByID: make(map[int]int, len(exercises)),
		questionByID: make(map[int]questionPos),
	}
	for i, ex := range exercises {
		ix.exerciseByID[ex.ID] = i
		for j, q := range ex.Questions {
			ix.questionByID[q.ID] = questionPos{exercise: i, question: j}
		}
	}
	return ix, nil
}

// Exercises returns all exercises in catalog order.
func (ix *Index) Exercises() []Exercise {
	return ix.exercises
}

// Exercise returns the exercise with the given id.
func (ix *Index) Exercise(id int) (Exercise, error) {
	i, ok := ix.exerciseByID[id]
	if !ok {
		return Exercise{}, fmt.Errorf("exercise %d: %w", id, ErrNotFound)
	}
	return ix.exercises[i], nil
}

// QuestionByID returns a question and its owning exercise by global
// question id.
func (ix *Index) QuestionByID(id int) (Exercise, Question, error) {
	pos, ok := ix.questionByID[id]
	if !ok {
		return Exercise{}, Question{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	ex := ix.exercises[pos.exercise]
	return ex, ex.Questions[pos.question], nil
}

// QuestionByVariant returns the question with the given variant label
// within an exercise.
func (ix *Index) QuestionByVariant(exerciseID int, variant string) (Question, error) {
	ex, err := ix.Exercise(exerciseID)
	if err != nil {
		return Question{}, err
	}
	for _, q := range ex.Questions {
		if q.Variant == variant {
			return q, nil
		}
	}
	return Question{}, fmt.Errorf("exercise %d variant %q: %w", exerciseID, variant, ErrNotFound)
}

// Resolve combines the exercise and variant lookups and enriches the
// question with its exercise ref and the evaluable result view.
func (ix *Index) Resolve(exerciseID int, variant string) (ResolvedQuestion, error) {
	ex, err := ix.Exercise(exerciseID)
	if err != nil {
		return ResolvedQuestion{}, err
	}
	q, err := ix.QuestionByVariant(exerciseID, variant)
	if err != nil {
		return ResolvedQuestion{}, err
	}
	return ResolvedQuestion{
		Question: q,
		Exercise: ExerciseRef{ID: ex.ID, DisplayNumber: ex.DisplayNumber},
		EvaluableResult: EvaluableResult{
			Columns: q.Result.Columns,
			Data:    q.Result.Values,
		},
	}, nil
}
