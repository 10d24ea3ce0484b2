package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// SolarTheme is a compact theme sized for the small editor window. Its error
// colour is what invalid fields are painted with.
type SolarTheme struct{}

// NewSolarTheme creates a new solar theme
func NewSolarTheme() fyne.Theme {
	return &SolarTheme{}
}

// Color returns theme colors
func (t *SolarTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		if variant == theme.VariantDark {
			return color.RGBA{R: 239, G: 83, B: 80, A: 255} // Light red on dark
		}
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 255, G: 160, B: 0, A: 255} // Sun orange
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 13, G: 17, B: 33, A: 255} // Night sky
		}
		return color.RGBA{R: 246, G: 247, B: 251, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *SolarTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *SolarTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, tightened so seven rows fit a 300px window
func (t *SolarTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 5
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 12
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
