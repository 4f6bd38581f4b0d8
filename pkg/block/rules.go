package block

import "strconv"

// A mapping turns a property value into its transformed value. forward is used
// for reflections and 90 degree turns; backward undoes forward and is used for
// 270 degree turns. The bool result is false when the value has no image, which
// leaves the property untouched.
type mapping interface {
	forward(value string) (string, bool)
	backward(value string) (string, bool)
}

type pair struct{ from, to string }

// pairs is an explicit value table.
type pairs []pair

func (ps pairs) forward(value string) (string, bool) {
	for _, p := range ps {
		if p.from == value {
			return p.to, true
		}
	}
	return "", false
}

func (ps pairs) backward(value string) (string, bool) {
	for _, p := range ps {
		if p.to == value {
			return p.from, true
		}
	}
	return "", false
}

// swaps builds an involution from value pairs: a<->b, c<->d, ...
func swaps(values ...string) pairs {
	ps := make(pairs, 0, len(values))
	for i := 0; i+1 < len(values); i += 2 {
		ps = append(ps, pair{values[i], values[i+1]}, pair{values[i+1], values[i]})
	}
	return ps
}

// cycle builds a -> b -> c -> ... -> a.
func cycle(values ...string) pairs {
	ps := make(pairs, len(values))
	for i, v := range values {
		ps[i] = pair{v, values[(i+1)%len(values)]}
	}
	return ps
}

// headingSteps is the number of compass steps of a "rotation" property
// (skulls, banners, signs). 0 is south, 4 west, 8 north, 12 east.
const headingSteps = 16

// heading maps a 16-step compass heading stored as a decimal string.
type heading struct {
	fwd, back func(r int) int
}

func (h heading) apply(value string, f func(int) int) (string, bool) {
	r, err := strconv.Atoi(value)
	if err != nil || r < 0 || r >= headingSteps {
		return "", false
	}
	return strconv.Itoa(wrapHeading(f(r))), true
}

func (h heading) forward(value string) (string, bool)  { return h.apply(value, h.fwd) }
func (h heading) backward(value string) (string, bool) { return h.apply(value, h.back) }

func wrapHeading(r int) int {
	return ((r % headingSteps) + headingSteps) % headingSteps
}

// mirrorHeading reflects r across the line at heading k/2: r -> (k - r) mod 16.
func mirrorHeading(k int) heading {
	f := func(r int) int { return k - r }
	return heading{fwd: f, back: f}
}

// turnHeading adds delta steps going forwards.
func turnHeading(delta int) heading {
	return heading{
		fwd:  func(r int) int { return r + delta },
		back: func(r int) int { return r - delta },
	}
}

// ruleTable maps a property name to how its values transform.
type ruleTable map[string]mapping

// Reflection tables, one per mirror axis. Built once and never modified.
var reflectRules = map[Axis]ruleTable{
	AxisX: {
		"facing":   swaps("east", "west"),
		"hinge":    swaps("left", "right"),
		"rotation": mirrorHeading(16),
		"shape": swaps(
			"ascending_east", "ascending_west",
			"north_east", "north_west",
			"south_east", "south_west",
			"outer_left", "outer_right",
			"inner_left", "inner_right",
		),
	},
	AxisY: {
		"attachment":         swaps("ceiling", "floor"),
		"face":               swaps("ceiling", "floor"),
		"facing":             swaps("up", "down"),
		"half":               swaps("lower", "upper"),
		"type":               swaps("top", "bottom"),
		"vertical_direction": swaps("up", "down"),
		"shape": swaps(
			"ascending_north", "ascending_south",
			"ascending_east", "ascending_west",
		),
	},
	AxisZ: {
		"facing":   swaps("north", "south"),
		"hinge":    swaps("left", "right"),
		"rotation": mirrorHeading(24),
		"shape": swaps(
			"ascending_north", "ascending_south",
			"north_east", "south_east",
			"north_west", "south_west",
			"outer_left", "outer_right",
			"inner_left", "inner_right",
		),
	},
}

// Rotation tables for a forward (+90 degree, right-hand rule) turn about each
// axis. "face" is absent on purpose: it only changes together with "facing",
// see mountTurns.
var rotateRules = map[Axis]ruleTable{
	AxisX: {
		"axis":   swaps("y", "z"),
		"facing": cycle("up", "south", "down", "north"),
		"shape":  swaps("ascending_north", "ascending_south"),
	},
	AxisY: {
		"axis":     swaps("x", "z"),
		"facing":   cycle("north", "west", "south", "east"),
		"rotation": turnHeading(-4),
		"shape": append(
			append(
				swaps("north_south", "east_west"),
				cycle("north_east", "north_west", "south_west", "south_east")...,
			),
			cycle("ascending_north", "ascending_west", "ascending_south", "ascending_east")...,
		),
	},
	AxisZ: {
		"axis":   swaps("x", "y"),
		"facing": cycle("up", "west", "down", "east"),
		"shape":  swaps("ascending_west", "ascending_east"),
	},
}

// mountTurn describes how wall/floor/ceiling mounted blocks tip over when turned
// about a horizontal axis. Turning forwards, a wall mount facing toCeiling ends
// up on the ceiling, one facing toFloor ends up on the floor, a floor mount
// becomes a wall mount facing toCeiling and a ceiling mount a wall mount facing
// toFloor. Turning backwards does the reverse.
type mountTurn struct {
	toCeiling Direction
	toFloor   Direction
}

var mountTurns = map[Axis]mountTurn{
	AxisX: {toCeiling: South, toFloor: North},
	AxisZ: {toCeiling: West, toFloor: East},
}

// Boolean direction properties swapped by a reflection.
var compassMirror = map[Axis][2]Direction{
	AxisX: {East, West},
	AxisY: {Up, Down},
	AxisZ: {North, South},
}

// Boolean direction properties rotated by a forward turn: the value held by
// each direction moves to the next one in the list.
var compassCycle = map[Axis][4]Direction{
	AxisX: {Up, South, Down, North},
	AxisY: {North, West, South, East},
	AxisZ: {Up, West, Down, East},
}
