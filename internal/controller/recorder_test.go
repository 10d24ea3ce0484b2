package controller

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
)

var ignoreID = cmpopts.IgnoreFields(Call{}, "ID")

func TestRecorder_RecordsCalls(t *testing.T) {
	rec := NewRecorder(false)

	rec.Add("Earth", 100, 0, 10, 2, "blue")
	rec.AddOrbiting("Moon", 10, 0, 5, 1, "grey", "Earth")
	rec.Remove("Earth")

	want := []Call{
		{Op: OpAdd, Name: "Earth", OrbitalDistance: 100, Size: 10, Speed: 2, Colour: "blue"},
		{Op: OpAddOrbiting, Name: "Moon", OrbitalDistance: 10, Size: 5, Speed: 1, Colour: "grey", ParentName: "Earth"},
		{Op: OpRemove, Name: "Earth"},
	}
	if diff := cmp.Diff(want, rec.Calls, ignoreID); diff != "" {
		t.Errorf("Recorded calls mismatch (-want +got):\n%s", diff)
	}

	seen := make(map[string]bool)
	for _, call := range rec.Calls {
		if _, err := uuid.Parse(call.ID); err != nil {
			t.Errorf("Call ID %q is not a UUID: %v", call.ID, err)
		}
		if seen[call.ID] {
			t.Errorf("Duplicate call ID %s", call.ID)
		}
		seen[call.ID] = true
	}

	rec.Reset()
	if len(rec.Calls) != 0 {
		t.Errorf("Expected no calls after Reset, got %d", len(rec.Calls))
	}
}

func TestRecorder_Logging(t *testing.T) {
	rec := NewRecorder(true)

	rec.Add("Sun", 0, 0, 40, 0, "yellow")
	rec.AddOrbiting("Moon", 10, 0, 5, 1, "grey", "Earth")
	rec.Remove("Sun")

	if len(rec.Calls) != 3 {
		t.Errorf("Expected 3 calls, got %d", len(rec.Calls))
	}
}

func TestAddStationary(t *testing.T) {
	rec := NewRecorder(false)

	AddStationary(rec, "Sun", 40, "yellow")

	want := []Call{{Op: OpAdd, Name: "Sun", Size: 40, Colour: "yellow"}}
	if diff := cmp.Diff(want, rec.Calls, ignoreID); diff != "" {
		t.Errorf("AddStationary mismatch (-want +got):\n%s", diff)
	}
}
