package block

import (
	"fmt"
	"strings"
)

// Axis is one of the three coordinate axes a block can be rotated about or
// reflected across.
type Axis string

const (
	// AxisX runs west (-) to east (+)
	AxisX Axis = "x"

	// AxisY runs down (-) to up (+)
	AxisY Axis = "y"

	// AxisZ runs north (-) to south (+)
	AxisZ Axis = "z"
)

// Axes lists every axis in x, y, z order.
var Axes = []Axis{AxisX, AxisY, AxisZ}

// ParseAxis converts a case-insensitive axis name into an Axis.
// Returns an error wrapping ErrInvalidAxis for anything other than x, y or z.
func ParseAxis(s string) (Axis, error) {
	a := Axis(normalize(s))
	if err := a.Validate(); err != nil {
		return "", err
	}
	return a, nil
}

// Validate checks if the Axis is a valid enum value.
func (a Axis) Validate() error {
	switch a {
	case AxisX, AxisY, AxisZ:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be x, y or z)", ErrInvalidAxis, string(a))
	}
}

// others returns the two axes perpendicular to a.
func (a Axis) others() [2]Axis {
	switch a {
	case AxisX:
		return [2]Axis{AxisY, AxisZ}
	case AxisY:
		return [2]Axis{AxisX, AxisZ}
	default:
		return [2]Axis{AxisX, AxisY}
	}
}

// Direction is one of the six axis-aligned directions. Blocks such as vines,
// fences and glow lichen carry boolean properties literally named after them.
type Direction string

const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists the six directions.
var Directions = []Direction{North, South, East, West, Up, Down}

// ParseDirection converts a case-insensitive direction name into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(normalize(s))
	if err := d.Validate(); err != nil {
		return "", err
	}
	return d, nil
}

// Validate checks if the Direction is a valid enum value.
func (d Direction) Validate() error {
	switch d {
	case North, South, East, West, Up, Down:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDirection, string(d))
	}
}

// Face is the surface a wall-or-floor mountable block (button, lever,
// grindstone) is attached to.
type Face string

const (
	FaceWall    Face = "wall"
	FaceFloor   Face = "floor"
	FaceCeiling Face = "ceiling"
)

// ParseFace converts a case-insensitive mount surface into a Face.
func ParseFace(s string) (Face, error) {
	f := Face(normalize(s))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate checks if the Face is a valid enum value.
func (f Face) Validate() error {
	switch f {
	case FaceWall, FaceFloor, FaceCeiling:
		return nil
	default:
		return fmt.Errorf("%w: %q (must be wall, floor or ceiling)", ErrInvalidFace, string(f))
	}
}

// PistonBehavior describes how a block reacts when a piston pushes or pulls it.
// Values are kept upper case to match game data exports.
type PistonBehavior string

const (
	PistonNormal   PistonBehavior = "NORMAL"
	PistonDestroy  PistonBehavior = "DESTROY"
	PistonBlock    PistonBehavior = "BLOCK"
	PistonIgnore   PistonBehavior = "IGNORE"
	PistonPushOnly PistonBehavior = "PUSH_ONLY"
)

// ParsePistonBehavior converts a case-insensitive piston behavior name.
// An empty string yields PistonNormal.
func ParsePistonBehavior(s string) (PistonBehavior, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PistonNormal, nil
	}
	pb := PistonBehavior(strings.ToUpper(s))
	if err := pb.Validate(); err != nil {
		return "", err
	}
	return pb, nil
}

// Validate checks if the PistonBehavior is a valid enum value.
func (pb PistonBehavior) Validate() error {
	switch pb {
	case PistonNormal, PistonDestroy, PistonBlock, PistonIgnore, PistonPushOnly:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPistonBehavior, string(pb))
	}
}

// normalize is the single case-folding rule for names and values.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
