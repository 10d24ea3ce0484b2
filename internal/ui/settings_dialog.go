package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarsystem-gui/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect    *widget.Select
	errorDialogSelect *widget.Select
	clearCheck        *widget.Check
	resizableCheck    *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved, if set, runs
// after the settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Language selection
	languageOptions := []string{config.DefaultLanguage}
	var codes []string
	for code := range sd.localization.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	languageOptions = append(languageOptions, codes...)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Error dialog style
	styleOptions := []string{}
	for _, style := range sd.settings.GetErrorDialogOptions() {
		styleOptions = append(styleOptions, string(style))
	}
	sd.errorDialogSelect = widget.NewSelect(styleOptions, nil)

	sd.clearCheck = widget.NewCheck(sd.localization.GetText(KeyClearOnSuccess), nil)
	sd.resizableCheck = widget.NewCheck(sd.localization.GetText(KeyResizable), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewLabel(sd.localization.GetText(KeyErrorDialog)+":"),
		sd.errorDialogSelect,

		widget.NewSeparator(),
		sd.clearCheck,
		sd.resizableCheck,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.errorDialogSelect.SetSelected(string(sd.settings.GetErrorDialog()))
	sd.clearCheck.SetChecked(sd.settings.GetClearOnSuccess())
	sd.resizableCheck.SetChecked(sd.settings.GetResizable())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.errorDialogSelect.Selected != "" {
		sd.settings.SetErrorDialog(config.ErrorDialogStyle(sd.errorDialogSelect.Selected))
	}

	sd.settings.SetClearOnSuccess(sd.clearCheck.Checked)
	sd.settings.SetResizable(sd.resizableCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
