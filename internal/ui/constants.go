package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing
const (
	WindowWidth  float32 = 300
	WindowHeight float32 = 300

	SettingsDialogWidth  float32 = 320
	SettingsDialogHeight float32 = 240
)

// Error styling
const (
	// OutlineStrokeWidth is the width of the border drawn around an invalid entry
	OutlineStrokeWidth float32 = 2
)

// Icons
const (
	IconSettings = "⚙"
)
