// Package block models block state and its geometric symmetries.
//
// # Overview
//
// A block type is described by Traits: a namespaced id ("minecraft:oak_button"),
// an ordered list of Property definitions and some block-level metadata (piston
// behavior, container size). Traits are immutable and shared by every Block of
// that type.
//
// A Block holds the current value of every property. Every value is always one
// of the property's allowed values: SetState rejects anything else, and the
// transformations below never write a value the block does not allow.
//
// # Transformations
//
// Reflect mirrors a block across the plane perpendicular to an axis. Rotate turns
// it by 90, 180 or 270 degrees about an axis (right-hand rule). Both are driven by
// static rule tables keyed by property name ("facing", "shape", "axis", "half",
// "rotation", ...) plus three special cases:
//
//   - Boolean direction properties ("north", "east", "up", ...) are swapped on a
//     reflection and cycled on a quarter turn when all four are present.
//   - "face" and "facing" on wall/floor/ceiling mounted blocks are resolved
//     together for x and z quarter turns.
//   - A half turn is applied as two reflections across the perpendicular planes.
//
// Values that cannot be transformed for a particular block are left as they are.
// Reflecting twice, or turning a quarter four times, gives back the original
// state.
//
// # Usage Example
//
//	traits, _ := block.NewTraits("minecraft:lever", []block.Property{
//		block.MustProperty("face", "wall", "floor", "wall", "ceiling"),
//		block.MustProperty("facing", "north", "north", "south", "west", "east"),
//		block.BoolProperty("powered", false),
//	})
//
//	lever, err := block.New(traits, map[string]string{"facing": "east"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = lever.Rotate(block.AxisY, 90) // facing is now north
//	_ = lever.Reflect(block.AxisZ)    // facing is now south
package block
