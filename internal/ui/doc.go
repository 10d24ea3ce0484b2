package ui

// Package ui contains the Fyne-based desktop window for the body editor. It
// lays out the labelled fields and the Add/Remove buttons, feeds entry text
// into form.Form and draws the styling and error popups the form asks for.
// All UI strings are localized via Localization.
