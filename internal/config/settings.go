package config

import (
	"fyne.io/fyne/v2"
)

// ErrorDialogStyle selects how validation errors are shown
type ErrorDialogStyle string

const (
	// ErrorDialogWindow shows a dialog inside the application window
	ErrorDialogWindow ErrorDialogStyle = "window"

	// ErrorDialogNative shows a native OS message box
	ErrorDialogNative ErrorDialogStyle = "native"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage       = "app_language"
	KeyErrorDialog    = "error_dialog"
	KeyResizable      = "resizable"
	KeyClearOnSuccess = "clear_on_success"
)

// Default values
const (
	DefaultLanguage       = "system"
	DefaultErrorDialog    = ErrorDialogWindow
	DefaultResizable      = false
	DefaultClearOnSuccess = false
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetErrorDialog returns how validation errors are displayed
func (s *Settings) GetErrorDialog() ErrorDialogStyle {
	style := ErrorDialogStyle(s.app.Preferences().String(KeyErrorDialog))
	if !style.valid() {
		s.SetErrorDialog(DefaultErrorDialog)
		return DefaultErrorDialog
	}
	return style
}

// SetErrorDialog sets how validation errors are displayed. Unknown styles
// fall back to the default.
func (s *Settings) SetErrorDialog(style ErrorDialogStyle) {
	if !style.valid() {
		style = DefaultErrorDialog
	}
	s.app.Preferences().SetString(KeyErrorDialog, string(style))
}

// GetResizable returns whether the main window may be resized
func (s *Settings) GetResizable() bool {
	return s.app.Preferences().BoolWithFallback(KeyResizable, DefaultResizable)
}

// SetResizable sets whether the main window may be resized
func (s *Settings) SetResizable(resizable bool) {
	s.app.Preferences().SetBool(KeyResizable, resizable)
}

// GetClearOnSuccess returns whether fields are emptied after a successful add
func (s *Settings) GetClearOnSuccess() bool {
	return s.app.Preferences().BoolWithFallback(KeyClearOnSuccess, DefaultClearOnSuccess)
}

// SetClearOnSuccess sets whether fields are emptied after a successful add
func (s *Settings) SetClearOnSuccess(enabled bool) {
	s.app.Preferences().SetBool(KeyClearOnSuccess, enabled)
}

// GetErrorDialogOptions returns the available error dialog styles
func (s *Settings) GetErrorDialogOptions() []ErrorDialogStyle {
	return []ErrorDialogStyle{ErrorDialogWindow, ErrorDialogNative}
}

// ApplyEnv stores every value set in env, so environment overrides win over
// saved preferences.
func (s *Settings) ApplyEnv(env Env) {
	if env.Language != "" {
		s.SetLanguage(env.Language)
	}
	if env.ErrorDialog != "" {
		s.SetErrorDialog(ErrorDialogStyle(env.ErrorDialog))
	}
	if env.Resizable != nil {
		s.SetResizable(*env.Resizable)
	}
	if env.ClearOnSuccess != nil {
		s.SetClearOnSuccess(*env.ClearOnSuccess)
	}
}

func (style ErrorDialogStyle) valid() bool {
	return style == ErrorDialogWindow || style == ErrorDialogNative
}
