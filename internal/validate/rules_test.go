package validate

import (
	"errors"
	"testing"

	"github.com/ytget/solarsystem-gui/internal/model"
)

func TestRequiredString(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
		wantErr  bool
	}{
		{"Earth", "Earth", false},
		{"  Mars ", "Mars", false},
		{"", "", true},
		{"   ", "", true},
		{"\t\n", "", true},
	}

	for _, test := range tests {
		value, err := RequiredString(model.FieldName, test.raw, ReasonNoName)
		if test.wantErr {
			if !errors.Is(err, ErrMissingRequiredField) {
				t.Errorf("RequiredString(%q) error = %v, expected ErrMissingRequiredField", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("RequiredString(%q) unexpected error: %v", test.raw, err)
		}
		if value != test.expected {
			t.Errorf("RequiredString(%q) = %q, expected %q", test.raw, value, test.expected)
		}
	}
}

func TestDouble(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		wantErr  bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"10", 10, false},
		{" -3.5 ", -3.5, false},
		{"1e3", 1000, false},
		{"abc", 0, true},
		{"10km", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
	}

	for _, test := range tests {
		value, err := Double(model.FieldOrbitalDistance, test.raw)
		if test.wantErr {
			if !errors.Is(err, ErrMalformedNumber) {
				t.Errorf("Double(%q) error = %v, expected ErrMalformedNumber", test.raw, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Double(%q) unexpected error: %v", test.raw, err)
		}
		if value != test.expected {
			t.Errorf("Double(%q) = %v, expected %v", test.raw, value, test.expected)
		}
	}
}

func TestPositiveDouble(t *testing.T) {
	tests := []struct {
		raw      string
		expected float64
		kind     error
	}{
		{"5", 5, nil},
		{"0.001", 0.001, nil},
		{"0", 0, ErrInvalidSize},
		{"-0", 0, ErrInvalidSize},
		{"-4", 0, ErrInvalidSize},
		{"big", 0, ErrMalformedNumber},
		{"", 0, ErrMissingRequiredField},
	}

	for _, test := range tests {
		value, err := PositiveDouble(model.FieldSize, test.raw)
		if test.kind != nil {
			if !errors.Is(err, test.kind) {
				t.Errorf("PositiveDouble(%q) error = %v, expected %v", test.raw, err, test.kind)
			}
			continue
		}
		if err != nil {
			t.Errorf("PositiveDouble(%q) unexpected error: %v", test.raw, err)
		}
		if value != test.expected {
			t.Errorf("PositiveDouble(%q) = %v, expected %v", test.raw, value, test.expected)
		}
	}
}

func TestFieldError_NamesField(t *testing.T) {
	_, err := Double(model.FieldSpeed, "fast")

	fe, ok := AsFieldError(err)
	if !ok {
		t.Fatalf("Expected *FieldError, got %T", err)
	}
	if fe.Index != model.FieldSpeed {
		t.Errorf("Expected index %d, got %d", model.FieldSpeed, fe.Index)
	}
	if fe.Field != "Speed" {
		t.Errorf("Expected field Speed, got %s", fe.Field)
	}

	expected := `Error occurred when parsing Speed: "fast" is not a number.`
	if fe.Reason != expected {
		t.Errorf("Expected reason %q, got %q", expected, fe.Reason)
	}
}
