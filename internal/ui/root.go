package ui

import (
	"image/color"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/solarsystem-gui/internal/config"
	"github.com/ytget/solarsystem-gui/internal/controller"
	"github.com/ytget/solarsystem-gui/internal/form"
	"github.com/ytget/solarsystem-gui/internal/model"
	"github.com/ytget/solarsystem-gui/internal/validate"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	reporter     Reporter
	form         *form.Form

	labels   [model.FieldCount]*widget.Label
	entries  [model.FieldCount]*widget.Entry
	outlines [model.FieldCount]*canvas.Rectangle

	addBtn      *widget.Button
	removeBtn   *widget.Button
	settingsBtn *widget.Button
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		reporter:     newReporter(settings.GetErrorDialog(), window),
	}
	ui.form = form.New(ui)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// RegisterController sets the controller that receives add and remove
// requests. Passing nil leaves the form without a controller.
func (ui *RootUI) RegisterController(c controller.Controller) {
	ui.form.RegisterController(c)
	log.Printf("Controller registered: %v", c != nil)
}

// SetReporter replaces how validation errors are shown
func (ui *RootUI) SetReporter(r Reporter) {
	ui.reporter = r
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create one label/entry row per field
	grid := container.NewGridWithColumns(2)
	for i := range model.Fields {
		ui.labels[i] = widget.NewLabel(ui.localization.FieldLabel(i))

		ui.entries[i] = widget.NewEntry()
		// Pressing Enter in any field submits an add
		ui.entries[i].OnSubmitted = func(string) {
			ui.onAddClick()
		}

		ui.outlines[i] = canvas.NewRectangle(color.Transparent)
		ui.outlines[i].StrokeWidth = OutlineStrokeWidth
		ui.outlines[i].Hide()

		grid.Add(ui.labels[i])
		grid.Add(container.NewStack(ui.entries[i], ui.outlines[i]))
	}

	// Create buttons
	ui.addBtn = widget.NewButton(ui.localization.GetText(KeyAdd), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance
	ui.removeBtn = widget.NewButton(ui.localization.GetText(KeyRemove), ui.onRemoveClick)

	// Create settings button
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	buttons := container.NewBorder(nil, nil, nil, ui.settingsBtn,
		container.NewGridWithColumns(2, ui.addBtn, ui.removeBtn))

	content := container.NewBorder(
		nil,     // top
		buttons, // bottom
		nil,     // left
		nil,     // right
		grid,    // center
	)

	ui.window.SetContent(content)

	// UI setup completed
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for i, label := range ui.labels {
		label.SetText(ui.localization.FieldLabel(i))
	}
	ui.addBtn.SetText(ui.localization.GetText(KeyAdd))
	ui.removeBtn.SetText(ui.localization.GetText(KeyRemove))
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies settings that take effect without a restart
func (ui *RootUI) onSettingsSaved() {
	ui.reporter = newReporter(ui.settings.GetErrorDialog(), ui.window)
	ui.window.SetFixedSize(!ui.settings.GetResizable())
	ui.onLanguageChange(ui.settings.GetLanguage())
}

// syncValues copies the entry texts into the form
func (ui *RootUI) syncValues() {
	for i, entry := range ui.entries {
		ui.form.SetValue(i, entry.Text)
	}
}

// onAddClick handles the add button click
func (ui *RootUI) onAddClick() {
	ui.syncValues()

	if err := ui.form.OnAddClicked(); err != nil {
		return
	}

	if ui.settings.GetClearOnSuccess() && ui.form.HasController() {
		for _, entry := range ui.entries {
			entry.SetText("")
		}
		ui.form.Reset()
	}
}

// onRemoveClick handles the remove button click
func (ui *RootUI) onRemoveClick() {
	ui.syncValues()
	_ = ui.form.OnRemoveClicked()
}

// ApplyStyles implements form.View by painting invalid labels and entries in
// the theme's error colour.
func (ui *RootUI) ApplyStyles(styles [model.FieldCount]form.Style) {
	errorColor := ui.app.Settings().Theme().Color(theme.ColorNameError, ui.app.Settings().ThemeVariant())

	for i, style := range styles {
		label, outline := ui.labels[i], ui.outlines[i]
		if label == nil || outline == nil {
			continue
		}

		switch style {
		case form.StyleError:
			label.Importance = widget.DangerImportance
			outline.StrokeColor = errorColor
			outline.Show()
		default:
			label.Importance = widget.MediumImportance
			outline.Hide()
		}

		label.Refresh()
		outline.Refresh()
	}
}

// ReportInvalid implements form.View by showing the error popup
func (ui *RootUI) ReportInvalid(fe *validate.FieldError) {
	ui.reporter.Report(
		ui.localization.GetText(KeyInvalidTitle),
		ui.localization.InvalidDataMessage(fe),
	)
}
