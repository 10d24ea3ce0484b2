package form

import "github.com/ytget/solarsystem-gui/internal/model"

// Style is the visual state of a field label and its input
type Style int

const (
	StyleNormal Style = iota
	StyleError
)

// String returns a short name for the style
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleError:
		return "error"
	default:
		return "unknown"
	}
}

// Styles maps the set of failing field indices to a style per field
func Styles(invalid [model.FieldCount]bool) [model.FieldCount]Style {
	var styles [model.FieldCount]Style
	for i, bad := range invalid {
		if bad {
			styles[i] = StyleError
		}
	}
	return styles
}
