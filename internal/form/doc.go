package form

// Package form holds the toolkit-independent core of the body editor: the raw
// text of each field, submit handling for Add and Remove, and the styling diff
// a View has to draw. Validation lives in package validate and dispatch goes
// through a controller.Controller, so any front end (Fyne window, terminal)
// can host the same behaviour.
