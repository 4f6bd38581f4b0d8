package block

import "fmt"

// Reflect mirrors the block across the plane perpendicular to axis: x swaps
// east and west, y swaps up and down, z swaps north and south.
//
// Property values that have no mirror image, or whose image is not allowed for
// this block, are left unchanged. Some blocks (rails, torches, banners, beds)
// have no true reflection across y.
func (b *Block) Reflect(axis Axis) error {
	a, err := ParseAxis(string(axis))
	if err != nil {
		return err
	}
	if !b.HasProperties() {
		return nil
	}
	b.reflect(a)
	return nil
}

// Rotate turns the block about axis by angle degrees, following the right-hand
// rule: with the right thumb along the positive axis, the fingers curl in the
// direction of a positive turn. Looking up at a block from below, a 90 degree
// turn about y appears clockwise.
//
// angle is taken modulo 360 and must then be 90, 180 or 270. Blocks that cannot
// truly stand on their side (doors, rails, stairs, fences) only change what their
// properties can express for x and z quarter turns.
func (b *Block) Rotate(axis Axis, angle int) error {
	a, err := ParseAxis(string(axis))
	if err != nil {
		return err
	}
	norm := ((angle % 360) + 360) % 360
	if norm != 90 && norm != 180 && norm != 270 {
		return fmt.Errorf("%w: %d (must be 90, 180 or 270 modulo 360)", ErrInvalidAngle, angle)
	}
	if !b.HasProperties() {
		return nil
	}

	if norm == 180 {
		// A half turn is the same as mirroring across both perpendicular planes.
		for _, other := range a.others() {
			b.reflect(other)
		}
		return nil
	}
	b.quarterTurn(a, norm == 90)
	return nil
}

func (b *Block) reflect(a Axis) {
	b.applyRules(reflectRules[a], true, nil)
	pair := compassMirror[a]
	b.permute(pair[:], true)
}

// quarterTurn applies, in order: the joint face/facing resolution, the rule
// table for every other property, then the direction-boolean cycle.
func (b *Block) quarterTurn(a Axis, forwards bool) {
	handled := b.turnMount(a, forwards)
	b.applyRules(rotateRules[a], forwards, handled)
	ring := compassCycle[a]
	b.permute(ring[:], forwards)
}

// applyRules looks every property up in rules and writes its image through
// trySet. Properties named in skip are left alone.
func (b *Block) applyRules(rules ruleTable, forwards bool, skip map[string]bool) {
	for _, p := range b.traits.props {
		if skip[p.name] {
			continue
		}
		m, ok := rules[p.name]
		if !ok {
			continue
		}
		next, ok := m.backward(b.state[p.name])
		if forwards {
			next, ok = m.forward(b.state[p.name])
		}
		if ok {
			b.trySet(p.name, next)
		}
	}
}

// turnMount handles blocks mounted on a wall, floor or ceiling (buttons, levers)
// for x and z turns, where "face" and "facing" have to change together. It
// returns the properties it took care of.
func (b *Block) turnMount(a Axis, forwards bool) map[string]bool {
	mt, ok := mountTurns[a]
	if !ok {
		return nil
	}
	rawFace, hasFace := b.state["face"]
	rawFacing, hasFacing := b.state["facing"]
	if !hasFace || !hasFacing {
		return nil
	}
	face, err := ParseFace(rawFace)
	if err != nil {
		return nil
	}
	facing, err := ParseDirection(rawFacing)
	if err != nil {
		return nil
	}

	toCeiling, toFloor := mt.toCeiling, mt.toFloor
	if !forwards {
		toCeiling, toFloor = toFloor, toCeiling
	}

	newFace, newFacing := face, facing
	switch {
	case face == FaceWall && facing == toCeiling:
		newFace = FaceCeiling
	case face == FaceWall && facing == toFloor:
		newFace = FaceFloor
	case face == FaceWall:
		// Facing is parallel to the turn axis or vertical: the mount stays on
		// the wall and facing turns through the ordinary table.
		return map[string]bool{"face": true}
	case face == FaceFloor:
		newFace, newFacing = FaceWall, toCeiling
	case face == FaceCeiling:
		newFace, newFacing = FaceWall, toFloor
	}

	b.trySet("face", string(newFace))
	b.trySet("facing", string(newFacing))
	return map[string]bool{"face": true, "facing": true}
}

// permute moves the value of names[i] to names[i+1] (wrapping), or the other
// way round when forwards is false. It only acts when the block has every named
// property and every moved value is allowed at its destination, so the cycle is
// applied whole or not at all.
func (b *Block) permute(names []Direction, forwards bool) {
	n := len(names)
	next := make(map[string]string, n)
	for i, d := range names {
		src := string(d)
		dst := string(names[(i+1)%n])
		if !forwards {
			dst = string(names[(i-1+n)%n])
		}
		v, ok := b.state[src]
		if !ok {
			return
		}
		p, ok := b.traits.Property(dst)
		if !ok || !p.Allows(v) {
			return
		}
		next[dst] = v
	}
	for name, v := range next {
		b.state[name] = v
	}
}
