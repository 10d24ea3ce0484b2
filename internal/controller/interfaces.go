package controller

// Controller receives add and remove requests from the form.
type Controller interface {
	// Add creates an object that orbits the centre of the scene.
	Add(name string, orbitalDistance, initialAngle, size, speed float64, colour string)

	// AddOrbiting creates an object that orbits the existing object parentName.
	AddOrbiting(name string, orbitalDistance, initialAngle, size, speed float64, colour, parentName string)

	// Remove deletes the named object. Unknown names are the implementation's concern.
	Remove(name string)
}

// AddStationary adds an object that does not move: distance, angle and speed
// are all zero.
func AddStationary(c Controller, name string, size float64, colour string) {
	c.Add(name, 0, 0, size, 0, colour)
}
