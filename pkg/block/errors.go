package block

import "errors"

// Errors returned by state mutation and transformation. They are always wrapped
// with context, so compare with errors.Is.
var (
	// ErrUnknownProperty is returned when a property name is not defined for the block.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrInvalidValue is returned when a value is not in the property's allowed set.
	ErrInvalidValue = errors.New("invalid value")

	// ErrInvalidAxis is returned when an axis does not parse to x, y or z.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrInvalidAngle is returned when a rotation angle is not 90, 180 or 270 (mod 360).
	ErrInvalidAngle = errors.New("invalid angle")

	ErrInvalidDirection      = errors.New("invalid direction")
	ErrInvalidFace           = errors.New("invalid face")
	ErrInvalidPistonBehavior = errors.New("invalid piston behavior")

	// ErrInvalidProperty and ErrInvalidTraits report malformed definitions.
	ErrInvalidProperty = errors.New("invalid property definition")
	ErrInvalidTraits   = errors.New("invalid block definition")
)
