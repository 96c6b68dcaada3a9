package selection

import (
	"errors"
	"slices"
	"testing"

	"github.com/abhisek/querydrill/internal/catalog"
	"github.com/abhisek/querydrill/internal/highlight"
)

func testIndex(t *testing.T) *catalog.Index {
	t.Helper()
	ix, err := catalog.New([]catalog.Exercise{
		{ID: 1, DisplayNumber: "1", Questions: []catalog.Question{
			{ID: 10, Variant: "A"},
			{ID: 11, Variant: "B"},
			{ID: 12, Variant: "C"},
		}},
		{ID: 2, DisplayNumber: "2", Questions: []catalog.Question{
			{ID: 20, Variant: "A"},
			{ID: 21, Variant: "B"},
		}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ix
}

// recorder collects observer notifications.
type recorder struct {
	notified []catalog.ResolvedQuestion
}

func (r *recorder) observe(rq catalog.ResolvedQuestion) {
	r.notified = append(r.notified, rq)
}

func TestChooseExercise_PicksDefaultAndNotifies(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)
	m.SetProgress(highlight.NewProgress([]int{11}, nil))

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, variant, ok := m.Selected()
	if !ok || variant != "B" {
		t.Errorf("got variant %q, want %q", variant, "B")
	}
	if len(rec.notified) != 1 {
		t.Fatalf("got %d notifications, want 1", len(rec.notified))
	}
	if rec.notified[0].ID != 11 || rec.notified[0].Exercise.ID != 1 {
		t.Errorf("notified wrong question: %+v", rec.notified[0])
	}
}

func TestChooseExercise_UnknownID(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)

	err := m.ChooseExercise(99)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if _, _, ok := m.Selected(); ok {
		t.Error("failed pick must not change the selection")
	}
	if len(rec.notified) != 0 {
		t.Errorf("got %d notifications, want 0", len(rec.notified))
	}
}

func TestChooseVariant_BeforeExercise(t *testing.T) {
	m := NewMachine(testIndex(t), nil)
	if err := m.ChooseVariant("A"); err == nil {
		t.Fatal("expected error when no exercise is chosen")
	}
}

func TestChooseVariant_Idempotent(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseVariant("C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseVariant("C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One for the default pick on ChooseExercise, one for C. The repeat
	// must stay silent.
	if len(rec.notified) != 2 {
		t.Fatalf("got %d notifications, want 2", len(rec.notified))
	}
	if rec.notified[1].ID != 12 {
		t.Errorf("got question %d, want 12", rec.notified[1].ID)
	}
}

func TestChooseVariant_StaleLabelIsSilent(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before, _ := m.Resolved()

	if err := m.ChooseVariant("Z"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	after, ok := m.Resolved()
	if !ok || after.ID != before.ID {
		t.Errorf("cached question changed on failed resolution: %+v", after)
	}
	if len(rec.notified) != 1 {
		t.Errorf("got %d notifications, want 1", len(rec.notified))
	}
}

func TestChooseExercise_HealsDanglingVariant(t *testing.T) {
	m := NewMachine(testIndex(t), nil)

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseVariant("C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Exercise 2 has no variant C.
	if err := m.ChooseExercise(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, variant, _ := m.Selected()
	if !slices.Contains(m.VariantOptions(), variant) {
		t.Errorf("variant %q is not an option of exercise 2 (%v)", variant, m.VariantOptions())
	}
}

func TestChooseExercise_KeepsVariantValidInBoth(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseVariant("B"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseExercise(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, variant, _ := m.Selected()
	if variant != "B" {
		t.Errorf("got variant %q, want %q", variant, "B")
	}
	// Same label, different exercise: that is a change and must notify.
	last := rec.notified[len(rec.notified)-1]
	if last.ID != 21 || last.Exercise.ID != 2 {
		t.Errorf("notified wrong question: %+v", last)
	}
}

func TestChooseExercise_ReselectSameKeepsVariant(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)
	m.SetProgress(highlight.NewProgress([]int{11}, nil))

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.ChooseVariant("C"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notifications := len(rec.notified)

	// Re-picking the same exercise must not recompute the default
	// (which would be "B") or re-notify.
	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, variant, _ := m.Selected()
	if variant != "C" {
		t.Errorf("got variant %q, want %q", variant, "C")
	}
	if len(rec.notified) != notifications {
		t.Errorf("no-op reselect emitted %d extra notifications", len(rec.notified)-notifications)
	}
}

func TestSetProgress_NeverNotifies(t *testing.T) {
	var rec recorder
	m := NewMachine(testIndex(t), rec.observe)

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	notifications := len(rec.notified)

	m.SetProgress(highlight.NewProgress([]int{10, 11}, []int{12}))
	m.SetProgress(highlight.Progress{})

	if len(rec.notified) != notifications {
		t.Errorf("progress change emitted %d extra notifications", len(rec.notified)-notifications)
	}
}

func TestVariantOptions(t *testing.T) {
	m := NewMachine(testIndex(t), nil)
	if opts := m.VariantOptions(); opts != nil {
		t.Errorf("got %v before any pick, want nil", opts)
	}

	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"A", "B", "C"}
	if got := m.VariantOptions(); !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSessionID_Unique(t *testing.T) {
	ix := testIndex(t)
	a := NewMachine(ix, nil)
	b := NewMachine(ix, nil)
	if a.SessionID() == "" || a.SessionID() == b.SessionID() {
		t.Errorf("session ids not unique: %q vs %q", a.SessionID(), b.SessionID())
	}
}

func TestNilObserver(t *testing.T) {
	m := NewMachine(testIndex(t), nil)
	if err := m.ChooseExercise(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := m.Resolved(); !ok {
		t.Error("resolution must still run without an observer")
	}
}
