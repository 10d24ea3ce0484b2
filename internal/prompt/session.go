package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ytget/solarsystem-gui/internal/controller"
	"github.com/ytget/solarsystem-gui/internal/form"
	"github.com/ytget/solarsystem-gui/internal/model"
	"github.com/ytget/solarsystem-gui/internal/validate"
)

// Error popup text, matching the desktop window
const (
	InvalidTitle  = "Solar System: Invalid Information!"
	InvalidPrefix = "Invalid data entered: "
)

// Menu actions, in the order they are offered
const (
	ActionAdd    = "Add"
	ActionRemove = "Remove"
	ActionQuit   = "Quit"
)

var actions = []string{ActionAdd, ActionRemove, ActionQuit}

// fieldHelp explains each field kind in the prompt help text
var fieldHelp = map[model.FieldKind]string{
	model.KindRequiredString: "Required.",
	model.KindPositiveDouble: "Required number above zero.",
	model.KindOptionalDouble: "Number, blank means 0.",
	model.KindOptionalString: "Name of the object to orbit, blank for the centre.",
}

// Session runs the add/remove loop in a terminal
type Session struct {
	driver PromptDriver
	form   *form.Form
	out    io.Writer
	styles [model.FieldCount]form.Style
}

// NewSession creates a session that prompts through driver and writes error
// reports to stderr.
func NewSession(driver PromptDriver) *Session {
	s := &Session{driver: driver, out: os.Stderr}
	s.form = form.New(s)
	return s
}

// SetOutput redirects error reports
func (s *Session) SetOutput(w io.Writer) {
	s.out = w
}

// RegisterController sets the controller that receives add and remove
// requests.
func (s *Session) RegisterController(c controller.Controller) {
	s.form.RegisterController(c)
}

// Run prompts for actions until the user quits, interrupts or ctx ends.
// Quitting and interrupting are not errors.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		choice, err := s.driver.Select(ctx, SelectConfig{Message: "Action", Options: actions})
		if err != nil {
			return s.finish(err)
		}

		switch indexAction(choice) {
		case ActionAdd:
			if err := s.ask(ctx, model.FieldName, model.FieldCount); err != nil {
				return s.finish(err)
			}
			_ = s.form.OnAddClicked()
		case ActionRemove:
			if err := s.ask(ctx, model.FieldName, model.FieldName+1); err != nil {
				return s.finish(err)
			}
			_ = s.form.OnRemoveClicked()
		default:
			return nil
		}
	}
}

// ask prompts for fields [from, to). Required fields offer their previous
// text as default; optional fields never do, since survey answers an empty
// line with the default and a blank optional value must stay reachable.
func (s *Session) ask(ctx context.Context, from, to int) error {
	for i := from; i < to; i++ {
		spec := model.Fields[i]
		value, err := s.driver.Input(ctx, InputConfig{
			Message: s.fieldMessage(i),
			Default: s.defaultFor(i),
			Help:    fieldHelp[spec.Kind],
		})
		if err != nil {
			return fmt.Errorf("read %s: %w", spec.Name, err)
		}
		s.form.SetValue(i, value)
	}
	return nil
}

func (s *Session) defaultFor(i int) string {
	if !model.Fields[i].Kind.IsRequired() {
		return ""
	}
	return s.form.Value(i)
}

// fieldMessage prefixes fields that failed the last attempt with a marker
func (s *Session) fieldMessage(i int) string {
	if s.styles[i] == form.StyleError {
		return "* " + model.Fields[i].Name
	}
	return model.Fields[i].Name
}

func (s *Session) finish(err error) error {
	if errors.Is(err, ErrAborted) {
		return nil
	}
	return err
}

// ApplyStyles implements form.View
func (s *Session) ApplyStyles(styles [model.FieldCount]form.Style) {
	s.styles = styles
}

// ReportInvalid implements form.View
func (s *Session) ReportInvalid(fe *validate.FieldError) {
	fmt.Fprintf(s.out, "%s\n%s%s\n", InvalidTitle, InvalidPrefix, fe.Reason)
}

func indexAction(i int) string {
	if i < 0 || i >= len(actions) {
		return ActionQuit
	}
	return actions[i]
}
