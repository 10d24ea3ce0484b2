package controller

import (
	"log"

	"github.com/google/uuid"
)

// Op identifies the controller operation a Call captured
type Op string

const (
	OpAdd         Op = "add"
	OpAddOrbiting Op = "add_orbiting"
	OpRemove      Op = "remove"
)

// Call is one recorded controller invocation
type Call struct {
	ID              string
	Op              Op
	Name            string
	OrbitalDistance float64
	InitialAngle    float64
	Size            float64
	Speed           float64
	Colour          string
	ParentName      string
}

// Recorder is a Controller that keeps every call it receives. With Log set
// each call is also written to the standard logger, which makes it usable as
// a stand-in when no simulation is attached.
type Recorder struct {
	Log   bool
	Calls []Call
}

// NewRecorder creates a recorder, logging calls when logCalls is true
func NewRecorder(logCalls bool) *Recorder {
	return &Recorder{Log: logCalls}
}

// Add implements Controller
func (r *Recorder) Add(name string, orbitalDistance, initialAngle, size, speed float64, colour string) {
	r.record(Call{
		Op:              OpAdd,
		Name:            name,
		OrbitalDistance: orbitalDistance,
		InitialAngle:    initialAngle,
		Size:            size,
		Speed:           speed,
		Colour:          colour,
	})
}

// AddOrbiting implements Controller
func (r *Recorder) AddOrbiting(name string, orbitalDistance, initialAngle, size, speed float64, colour, parentName string) {
	r.record(Call{
		Op:              OpAddOrbiting,
		Name:            name,
		OrbitalDistance: orbitalDistance,
		InitialAngle:    initialAngle,
		Size:            size,
		Speed:           speed,
		Colour:          colour,
		ParentName:      parentName,
	})
}

// Remove implements Controller
func (r *Recorder) Remove(name string) {
	r.record(Call{Op: OpRemove, Name: name})
}

// Reset forgets all recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}

func (r *Recorder) record(call Call) {
	call.ID = uuid.NewString()
	r.Calls = append(r.Calls, call)

	if !r.Log {
		return
	}

	switch call.Op {
	case OpRemove:
		log.Printf("Controller call %s: remove %s", call.ID, call.Name)
	case OpAddOrbiting:
		log.Printf("Controller call %s: add %s (distance=%g angle=%g size=%g speed=%g colour=%s) orbiting %s",
			call.ID, call.Name, call.OrbitalDistance, call.InitialAngle, call.Size, call.Speed, call.Colour, call.ParentName)
	default:
		log.Printf("Controller call %s: add %s (distance=%g angle=%g size=%g speed=%g colour=%s)",
			call.ID, call.Name, call.OrbitalDistance, call.InitialAngle, call.Size, call.Speed, call.Colour)
	}
}
