package validate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ytget/solarsystem-gui/internal/model"
)

// Reasons shown to the user. Kept as constants so views can map them to
// translated text.
const (
	ReasonNoName        = "No name provided."
	ReasonNoColour      = "No colour provided."
	ReasonNoSize        = "No size provided."
	ReasonInvalidSize   = "Invalid size (zero or below)."
	ReasonRemoveNoName  = "Name is empty."
	reasonMalformedTmpl = "Error occurred when parsing %s: %q is not a number."
)

// RequiredString returns the trimmed text of field index, failing when it is
// blank.
func RequiredString(index int, raw string, reason string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", newFieldError(index, ErrMissingRequiredField, reason)
	}
	return value, nil
}

// OptionalString returns the trimmed text of a field that may be blank
func OptionalString(raw string) string {
	return strings.TrimSpace(raw)
}

// Double parses an optional numeric field. Blank text yields 0.
func Double(index int, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, nil
	}
	return parseFinite(index, text)
}

// PositiveDouble parses a required numeric field that must be above zero.
// A value that parses but is <= 0 fails with ErrInvalidSize, which is
// distinct from a parse failure.
func PositiveDouble(index int, raw string) (float64, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return 0, newFieldError(index, ErrMissingRequiredField, ReasonNoSize)
	}

	value, err := parseFinite(index, text)
	if err != nil {
		return 0, err
	}

	if value <= 0 {
		return 0, newFieldError(index, ErrInvalidSize, ReasonInvalidSize)
	}
	return value, nil
}

// parseFinite rejects NaN and infinities along with unparseable text
func parseFinite(index int, text string) (float64, error) {
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		reason := fmt.Sprintf(reasonMalformedTmpl, model.Fields[index].Name, text)
		fe := newFieldError(index, ErrMalformedNumber, reason)
		fe.Value = text
		return 0, fe
	}
	return value, nil
}
