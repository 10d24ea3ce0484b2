package controller

// Package controller defines the boundary between the form and whatever owns
// the solar-system model. The form only consumes Controller; the model,
// orbit computation and rendering live in the implementation a caller
// registers.
