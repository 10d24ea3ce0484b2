package model

// FieldKind describes how the raw text of a field is interpreted
type FieldKind string

const (
	// KindRequiredString is non-blank free text
	KindRequiredString FieldKind = "RequiredString"

	// KindPositiveDouble must parse as a number greater than zero
	KindPositiveDouble FieldKind = "PositiveDouble"

	// KindOptionalDouble parses as a number, blank means zero
	KindOptionalDouble FieldKind = "OptionalDouble"

	// KindOptionalString is free text that may be blank
	KindOptionalString FieldKind = "OptionalString"
)

// String returns the string representation of FieldKind
func (k FieldKind) String() string {
	return string(k)
}

// IsNumeric returns true if the field holds a number
func (k FieldKind) IsNumeric() bool {
	return k == KindPositiveDouble || k == KindOptionalDouble
}

// IsRequired returns true if a blank value fails validation
func (k FieldKind) IsRequired() bool {
	return k == KindRequiredString || k == KindPositiveDouble
}

// FieldSpec names a form field and the rule applied to it
type FieldSpec struct {
	Name string
	Kind FieldKind
}

// Field indices, in display order.
const (
	FieldName = iota
	FieldOrbitalDistance
	FieldOrbitalAngle
	FieldSize
	FieldSpeed
	FieldColour
	FieldOrbits

	FieldCount
)

// Fields lists the form fields in display order. Index positions match the
// Field* constants.
var Fields = [FieldCount]FieldSpec{
	{Name: "Name", Kind: KindRequiredString},
	{Name: "Orbital Distance", Kind: KindOptionalDouble},
	{Name: "Orbital Angle", Kind: KindOptionalDouble},
	{Name: "Size", Kind: KindPositiveDouble},
	{Name: "Speed", Kind: KindOptionalDouble},
	{Name: "Colour", Kind: KindRequiredString},
	{Name: "Orbits", Kind: KindOptionalString},
}

// ValidIndex reports whether i addresses one of the form fields
func ValidIndex(i int) bool {
	return i >= 0 && i < FieldCount
}
