package prompt

// Package prompt is a terminal front end for the body editor. It asks for the
// same fields as the desktop window through survey prompts and drives the
// shared form.Form, so validation and controller dispatch behave the same.
