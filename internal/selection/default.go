package selection

import (
	"sort"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
)

// FallbackVariant is chosen when the user has no progress in an
// exercise: the conventional first variant.
const FallbackVariant = "A"

// DefaultVariant picks the variant to preselect when an exercise is
// freshly chosen. Variants that were attempted but not yet solved come
// first, then solved ones, then the fallback. Labels are ordered
// lexicographically, so the policy is deterministic for fixed inputs.
func DefaultVariant(ex catalog.Exercise, p highlight.Progress) string {
	var pending, solved []string
	for _, q := range ex.Questions {
		switch {
		case p.Correct[q.ID]:
			solved = append(solved, q.Variant)
		case p.Written[q.ID]:
			pending = append(pending, q.Variant)
		}
	}
	sort.Strings(pending)
	sort.Strings(solved)

	if len(pending) > 0 {
		return pending[0]
	}
	if len(solved) > 0 {
		return solved[0]
	}
	return FallbackVariant
}
