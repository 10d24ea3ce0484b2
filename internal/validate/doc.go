package validate

// Package validate converts raw form text into typed values. Every rule is a
// pure function returning either the value or a *FieldError naming the field
// and the reason. Nothing here touches the UI or the controller.
