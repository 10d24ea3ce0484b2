package form

import (
	"fmt"
	"log"

	"github.com/ytget/solarsystem-gui/internal/controller"
	"github.com/ytget/solarsystem-gui/internal/model"
	"github.com/ytget/solarsystem-gui/internal/validate"
)

// NoControllerMessage is logged when a valid submit has nowhere to go
const NoControllerMessage = "--- No SolarSystemController Registered ---"

// View draws form state. Implementations run on the UI goroutine.
type View interface {
	// ApplyStyles sets the label and input style of every field.
	ApplyStyles(styles [model.FieldCount]Style)

	// ReportInvalid tells the user why the last submit was rejected.
	ReportInvalid(err *validate.FieldError)
}

// Form is the state behind the body editor. It is not safe for concurrent
// use; every method is expected to run on the UI goroutine.
type Form struct {
	values     [model.FieldCount]string
	invalid    [model.FieldCount]bool
	controller controller.Controller
	view       View
}

// New creates a form that renders through view
func New(view View) *Form {
	return &Form{view: view}
}

// RegisterController sets the controller that receives add and remove
// calls. The last registration wins; nil unregisters.
func (f *Form) RegisterController(c controller.Controller) {
	f.controller = c
}

// HasController returns true if a controller is registered
func (f *Form) HasController() bool {
	return f.controller != nil
}

// SetValue stores the raw text of field i
func (f *Form) SetValue(i int, text string) {
	if !model.ValidIndex(i) {
		return
	}
	f.values[i] = text
}

// Value returns the raw text of field i
func (f *Form) Value(i int) string {
	if !model.ValidIndex(i) {
		return ""
	}
	return f.values[i]
}

// Values returns a copy of all raw field values
func (f *Form) Values() [model.FieldCount]string {
	return f.values
}

// Reset clears every field value
func (f *Form) Reset() {
	f.values = [model.FieldCount]string{}
}

// Invalid returns the indices currently marked as invalid
func (f *Form) Invalid() []int {
	var out []int
	for i, bad := range f.invalid {
		if bad {
			out = append(out, i)
		}
	}
	return out
}

// ClearValidationStyling drops all error marks and redraws every field with
// the normal style.
func (f *Form) ClearValidationStyling() {
	f.invalid = [model.FieldCount]bool{}
	f.render()
}

// OnAddClicked validates the fields and sends an add to the controller. It
// returns the validation error that blocked the add, if any.
func (f *Form) OnAddClicked() error {
	f.ClearValidationStyling()

	req, err := validate.Add(f.values)
	if err != nil {
		return f.fail("add", err)
	}

	if f.controller == nil {
		log.Println(NoControllerMessage)
		return nil
	}

	log.Printf("Adding body %s", req)
	if req.HasParent() {
		f.controller.AddOrbiting(req.Name, req.OrbitalDistance, req.InitialAngle, req.Size, req.Speed, req.Colour, req.ParentName)
	} else {
		f.controller.Add(req.Name, req.OrbitalDistance, req.InitialAngle, req.Size, req.Speed, req.Colour)
	}
	return nil
}

// OnRemoveClicked validates the name field and sends a remove to the
// controller.
func (f *Form) OnRemoveClicked() error {
	f.ClearValidationStyling()

	req, err := validate.Remove(f.values)
	if err != nil {
		return f.fail("remove", err)
	}

	if f.controller == nil {
		log.Println(NoControllerMessage)
		return nil
	}

	log.Printf("Removing body %s", req.Name)
	f.controller.Remove(req.Name)
	return nil
}

// fail marks the offending field, redraws and reports the error
func (f *Form) fail(action string, err error) error {
	fe, ok := validate.AsFieldError(err)
	if !ok {
		return fmt.Errorf("%s: %w", action, err)
	}

	log.Printf("Rejected %s: %v", action, fe)
	f.invalid[fe.Index] = true
	f.render()
	if f.view != nil {
		f.view.ReportInvalid(fe)
	}
	return fe
}

func (f *Form) render() {
	if f.view == nil {
		return
	}
	f.view.ApplyStyles(Styles(f.invalid))
}
