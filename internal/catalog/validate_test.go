package catalog

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	if err := validateExercises(testExercises()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DuplicateQuestionID(t *testing.T) {
	exercises := testExercises()
	exercises[1].Questions[0].ID = 10 // collides with exercise 1
	err := validateExercises(exercises)
	if err == nil {
		t.Fatal("expected error for duplicate question id")
	}
	if !strings.Contains(err.Error(), "duplicate question id 10") {
		t.Errorf("error does not mention the duplicate id: %v", err)
	}
}

func TestValidate_DuplicateExerciseID(t *testing.T) {
	exercises := testExercises()
	exercises[1].ID = 1
	err := validateExercises(exercises)
	if err == nil {
		t.Fatal("expected error for duplicate exercise id")
	}
	if !strings.Contains(err.Error(), "duplicate exercise id 1") {
		t.Errorf("error does not mention the duplicate id: %v", err)
	}
}

func TestValidate_DuplicateVariantWithinExercise(t *testing.T) {
	exercises := testExercises()
	exercises[0].Questions[1].Variant = "A"
	err := validateExercises(exercises)
	if err == nil {
		t.Fatal("expected error for duplicate variant")
	}
	if !strings.Contains(err.Error(), `duplicate variant "A"`) {
		t.Errorf("error does not mention the duplicate variant: %v", err)
	}
}

func TestValidate_EmptyExercise(t *testing.T) {
	exercises := testExercises()
	exercises[0].Questions = nil
	err := validateExercises(exercises)
	if err == nil {
		t.Fatal("expected error for empty exercise")
	}
	if !strings.Contains(err.Error(), "has no questions") {
		t.Errorf("error does not mention the empty exercise: %v", err)
	}
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	exercises := testExercises()
	exercises[1].ID = 1
	exercises[1].Questions[1].ID = 10
	err := validateExercises(exercises)
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "duplicate exercise id") || !strings.Contains(msg, "duplicate question id") {
		t.Errorf("expected both problems reported, got: %v", err)
	}
}
