// Package catalog loads block, item, entity and enchantment definitions from
// data files and creates objects from them.
//
// # File Layout
//
// Each mod contributes at most one file per kind, named after the mod:
//
//	<directory>/<namespace>-<version>-<kind>.toml
//
// .yaml and .yml files are accepted as well; when several exist for the same
// mod and kind, TOML wins, then .yaml, then .yml. Kinds are block, item, entity
// and enchantment.
//
// Top-level keys are namespaces. Each namespace maps object ids to their data.
// Ids without a colon are qualified with the namespace key they appear under:
//
//	[minecraft.oak_button]
//	piston_behavior = "DESTROY"
//	properties.face = { default = "wall", allowed = ["floor", "wall", "ceiling"] }
//	properties.facing = { default = "north", allowed = ["north", "south", "west", "east"] }
//	properties.powered = { default = false, allowed = [true, false] }
//
//	[minecraft.chest]
//	inventory_slots = 27
//
// Property values may be written as strings, booleans or integers; they are
// stored as lowercase strings. Block properties are ordered by name.
//
// # Import Rules
//
// A missing file, or a file that was already imported, is skipped with a
// warning. Registering an id twice is an error.
package catalog
