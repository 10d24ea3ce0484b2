package validate

import (
	"github.com/ytget/solarsystem-gui/internal/model"
)

// Add validates the raw field values for an add and builds the request.
// Fields are checked in display order and the first failure is returned.
func Add(values [model.FieldCount]string) (model.AddRequest, error) {
	var req model.AddRequest
	var err error

	if req.Name, err = RequiredString(model.FieldName, values[model.FieldName], ReasonNoName); err != nil {
		return model.AddRequest{}, err
	}
	if req.OrbitalDistance, err = Double(model.FieldOrbitalDistance, values[model.FieldOrbitalDistance]); err != nil {
		return model.AddRequest{}, err
	}
	if req.InitialAngle, err = Double(model.FieldOrbitalAngle, values[model.FieldOrbitalAngle]); err != nil {
		return model.AddRequest{}, err
	}
	if req.Size, err = PositiveDouble(model.FieldSize, values[model.FieldSize]); err != nil {
		return model.AddRequest{}, err
	}
	if req.Speed, err = Double(model.FieldSpeed, values[model.FieldSpeed]); err != nil {
		return model.AddRequest{}, err
	}
	if req.Colour, err = RequiredString(model.FieldColour, values[model.FieldColour], ReasonNoColour); err != nil {
		return model.AddRequest{}, err
	}
	req.ParentName = OptionalString(values[model.FieldOrbits])

	return req, nil
}

// Remove validates the name field for a remove
func Remove(values [model.FieldCount]string) (model.RemoveRequest, error) {
	name, err := RequiredString(model.FieldName, values[model.FieldName], ReasonRemoveNoName)
	if err != nil {
		return model.RemoveRequest{}, err
	}
	return model.RemoveRequest{Name: name}, nil
}
