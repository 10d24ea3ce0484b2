package model

import "fmt"

// AddRequest carries a validated body description to a controller
type AddRequest struct {
	Name            string
	OrbitalDistance float64 // 0 when left blank
	InitialAngle    float64 // 0 when left blank
	Size            float64 // always > 0
	Speed           float64 // 0 when left blank
	Colour          string
	ParentName      string // empty means orbit the scene centre
}

// HasParent returns true if the body orbits a named object
func (r AddRequest) HasParent() bool {
	return r.ParentName != ""
}

// String returns a compact description used in log lines
func (r AddRequest) String() string {
	s := fmt.Sprintf("%s (distance=%g angle=%g size=%g speed=%g colour=%s)",
		r.Name, r.OrbitalDistance, r.InitialAngle, r.Size, r.Speed, r.Colour)
	if r.HasParent() {
		s += " orbiting " + r.ParentName
	}
	return s
}

// RemoveRequest names a body to remove
type RemoveRequest struct {
	Name string
}
