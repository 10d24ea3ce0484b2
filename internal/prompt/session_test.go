package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ytget/solarsystem-gui/internal/controller"
)

var ignoreID = cmpopts.IgnoreFields(controller.Call{}, "ID")

// scriptedDriver answers prompts from fixed queues and records what it was asked
type scriptedDriver struct {
	choices  []int
	inputs   []string
	messages []string
	defaults []string
	err      error
}

func (d *scriptedDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if len(d.choices) == 0 {
		if d.err != nil {
			return 0, d.err
		}
		return indexOf(cfg.Options, ActionQuit), nil
	}
	choice := d.choices[0]
	d.choices = d.choices[1:]
	return choice, nil
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	d.defaults = append(d.defaults, cfg.Default)
	if len(d.inputs) == 0 {
		return "", ErrAborted
	}
	value := d.inputs[0]
	d.inputs = d.inputs[1:]
	// survey answers an empty line with the default
	if value == "" {
		return cfg.Default, nil
	}
	return value, nil
}

func newTestSession(driver PromptDriver) (*Session, *controller.Recorder, *bytes.Buffer) {
	var out bytes.Buffer
	s := NewSession(driver)
	s.SetOutput(&out)
	rec := controller.NewRecorder(false)
	s.RegisterController(rec)
	return s, rec, &out
}

func TestSession_AddAndRemove(t *testing.T) {
	driver := &scriptedDriver{
		choices: []int{0, 0, 1},
		inputs: []string{
			"Earth", "100", "0", "10", "2", "blue", "",
			"Moon", "10", "0", "5", "1", "grey", "Earth",
			"Earth",
		},
	}
	s, rec, out := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := []controller.Call{
		{Op: controller.OpAdd, Name: "Earth", OrbitalDistance: 100, Size: 10, Speed: 2, Colour: "blue"},
		{Op: controller.OpAddOrbiting, Name: "Moon", OrbitalDistance: 10, Size: 5, Speed: 1, Colour: "grey", ParentName: "Earth"},
		{Op: controller.OpRemove, Name: "Earth"},
	}
	if diff := cmp.Diff(want, rec.Calls, ignoreID); diff != "" {
		t.Errorf("Controller calls mismatch (-want +got):\n%s", diff)
	}
	if out.Len() != 0 {
		t.Errorf("Expected no error output, got %q", out.String())
	}
}

func TestSession_InvalidAddMarksField(t *testing.T) {
	driver := &scriptedDriver{
		choices: []int{0, 0},
		inputs: []string{
			"Moon", "10", "0", "0", "1", "grey", "",
			"Moon", "10", "0", "5", "1", "grey", "",
		},
	}
	s, rec, out := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	if !strings.Contains(out.String(), InvalidTitle) || !strings.Contains(out.String(), "Invalid data entered: Invalid size (zero or below).") {
		t.Errorf("Unexpected error output %q", out.String())
	}
	if len(rec.Calls) != 1 {
		t.Errorf("Only the second add should reach the controller, got %d calls", len(rec.Calls))
	}

	// Second round marks Size and offers the previous text as default
	if driver.messages[7+3] != "* Size" {
		t.Errorf("Expected marked size prompt, got %q", driver.messages[7+3])
	}
	if driver.defaults[7] != "Moon" {
		t.Errorf("Expected previous name as default, got %q", driver.defaults[7])
	}
	if driver.messages[7] != "Name" {
		t.Errorf("Valid fields should not be marked, got %q", driver.messages[7])
	}
}

func TestSession_BlankOptionalFieldsAfterEarlierValues(t *testing.T) {
	driver := &scriptedDriver{
		choices: []int{0, 0},
		inputs: []string{
			"Moon", "10", "45", "5", "1", "grey", "Earth",
			"Comet", "", "", "2", "", "white", "",
		},
	}
	s, rec, _ := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := []controller.Call{
		{Op: controller.OpAddOrbiting, Name: "Moon", OrbitalDistance: 10, InitialAngle: 45, Size: 5, Speed: 1, Colour: "grey", ParentName: "Earth"},
		{Op: controller.OpAdd, Name: "Comet", Size: 2, Colour: "white"},
	}
	if diff := cmp.Diff(want, rec.Calls, ignoreID); diff != "" {
		t.Errorf("Controller calls mismatch (-want +got):\n%s", diff)
	}

	// Optional fields are offered without a default
	for _, i := range []int{8, 9, 11, 13} {
		if driver.defaults[i] != "" {
			t.Errorf("Prompt %d (%s) should have no default, got %q", i, driver.messages[i], driver.defaults[i])
		}
	}
}

func TestSession_RequiredFieldKeepsDefault(t *testing.T) {
	driver := &scriptedDriver{
		choices: []int{0, 0},
		inputs: []string{
			"Moon", "", "", "5", "", "grey", "",
			"", "", "", "", "", "", "",
		},
	}
	s, rec, _ := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}

	want := []controller.Call{
		{Op: controller.OpAdd, Name: "Moon", Size: 5, Colour: "grey"},
		{Op: controller.OpAdd, Name: "Moon", Size: 5, Colour: "grey"},
	}
	if diff := cmp.Diff(want, rec.Calls, ignoreID); diff != "" {
		t.Errorf("Controller calls mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_InvalidRemove(t *testing.T) {
	driver := &scriptedDriver{choices: []int{1}, inputs: []string{"  "}}
	s, rec, out := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run() unexpected error: %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Remove with blank name must not reach the controller")
	}
	if !strings.Contains(out.String(), "Name is empty.") {
		t.Errorf("Unexpected error output %q", out.String())
	}
}

func TestSession_AbortIsNotAnError(t *testing.T) {
	driver := &scriptedDriver{choices: []int{0}, inputs: []string{"Moon"}}
	s, rec, _ := newTestSession(driver)

	if err := s.Run(context.Background()); err != nil {
		t.Errorf("Interrupt should end the session cleanly, got %v", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("Aborted add must not reach the controller")
	}
}

func TestSession_DriverError(t *testing.T) {
	boom := errors.New("terminal gone")
	driver := &scriptedDriver{err: boom}
	s, _, _ := newTestSession(driver)

	if err := s.Run(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected driver error, got %v", err)
	}
}

func TestSession_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, _, _ := newTestSession(&scriptedDriver{choices: []int{0}})
	if err := s.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestIndexAction(t *testing.T) {
	if indexAction(-1) != ActionQuit || indexAction(len(actions)) != ActionQuit {
		t.Error("Out of range choices should quit")
	}
	if indexAction(1) != ActionRemove {
		t.Errorf("Expected %s, got %s", ActionRemove, indexAction(1))
	}
}
