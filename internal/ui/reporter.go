package ui

import (
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"github.com/ncruces/zenity"

	"github.com/ytget/solarsystem-gui/internal/config"
)

// Reporter shows a modal message about rejected input
type Reporter interface {
	Report(title, message string)
}

// windowReporter shows the message as a dialog inside the window
type windowReporter struct {
	window fyne.Window
}

func (r *windowReporter) Report(title, message string) {
	dialog.NewInformation(title, message, r.window).Show()
}

// nativeReporter shows an OS message box. zenity blocks until it is
// dismissed. If no native dialog is available the window dialog is used.
type nativeReporter struct {
	fallback Reporter
}

func (r *nativeReporter) Report(title, message string) {
	if err := zenity.Error(message, zenity.Title(title)); err != nil && !errors.Is(err, zenity.ErrCanceled) {
		log.Printf("Native dialog failed, falling back to window dialog: %v", err)
		r.fallback.Report(title, message)
	}
}

// newReporter picks the reporter for the configured dialog style
func newReporter(style config.ErrorDialogStyle, window fyne.Window) Reporter {
	inWindow := &windowReporter{window: window}
	if style == config.ErrorDialogNative {
		return &nativeReporter{fallback: inWindow}
	}
	return inWindow
}
