package catalog

import (
	"fmt"
	"strings"
)

// validateExercises performs all structural checks on the catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateExercises(exercises []Exercise) error {
	var errs []string

	exerciseIDs := make(map[int]bool, len(exercises))
	questionIDs := make(map[int]bool)

	for _, ex := range exercises {
		if exerciseIDs[ex.ID] {
			errs = append(errs, fmt.Sprintf("duplicate exercise id %d", ex.ID))
		}
		exerciseIDs[ex.ID] = true

		if len(ex.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("exercise %d has no questions", ex.ID))
		}

		variants := make(map[string]bool, len(ex.Questions))
		for _, q := range ex.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question id %d", q.ID))
			}
			questionIDs[q.ID] = true

			if q.Variant == "" {
				errs = append(errs, fmt.Sprintf("question %d has an empty variant label", q.ID))
			}
			if variants[q.Variant] {
				errs = append(errs, fmt.Sprintf("exercise %d has duplicate variant %q", ex.ID, q.Variant))
			}
			variants[q.Variant] = true
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
