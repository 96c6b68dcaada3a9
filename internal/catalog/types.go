package catalog

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Exercise is a numbered group of related question variants.
type Exercise struct {
	ID            int        `json:"id"`
	DisplayNumber string     `json:"number"`
	Questions     []Question `json:"questions"`
}

// Question is a single exercise variant with its expected result table.
type Question struct {
	ID          int    `json:"id"`
	Variant     string `json:"variant"`
	Description string `json:"description"`
	Result      Table  `json:"result"`
}

// Table is the expected output of the target query.
type Table struct {
	Columns []string `json:"columns"`
	Values  [][]Cell `json:"values"`
}

// Cell is a single table value, either text or numeric.
type Cell struct {
	Text    string
	Number  float64
	Numeric bool
}

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (c *Cell) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = Cell{Text: s}
		return nil
	}
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*c = Cell{Number: n, Numeric: true}
		return nil
	}
	return fmt.Errorf("cell must be a string or a number, got %s", data)
}

// MarshalJSON writes the cell back in its original JSON type.
func (c Cell) MarshalJSON() ([]byte, error) {
	if c.Numeric {
		return json.Marshal(c.Number)
	}
	return json.Marshal(c.Text)
}

// String renders the cell for display.
func (c Cell) String() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	}
	return c.Text
}

// ExerciseRef is the lightweight exercise identity attached to a
// resolved question.
type ExerciseRef struct {
	ID            int
	DisplayNumber string
}

// EvaluableResult is the reshaped result view handed to answer
// evaluation consumers.
type EvaluableResult struct {
	Columns []string
	Data    [][]Cell
}

// ResolvedQuestion is a question enriched with its owning exercise and
// the evaluable view of its result table.
type ResolvedQuestion struct {
	Question
	Exercise        ExerciseRef
	EvaluableResult EvaluableResult
}

// QuestionIDs returns the ids of all questions in the exercise, in
// catalog order.
func (e Exercise) QuestionIDs() []int {
	ids := make([]int, len(e.Questions))
	for i, q := range e.Questions {
		ids[i] = q.ID
	}
	return ids
}

// VariantLabels returns the variant labels of the exercise, in catalog
// order.
func (e Exercise) VariantLabels() []string {
	labels := make([]string, len(e.Questions))
	for i, q := range e.Questions {
		labels[i] = q.Variant
	}
	return labels
}
