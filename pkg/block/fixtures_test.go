package block

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

var horizontal = []string{"north", "south", "west", "east"}

func headings() []string {
	out := make([]string, headingSteps)
	for i := range out {
		out[i] = strconv.Itoa(i)
	}
	return out
}

func mustTraits(t *testing.T, id string, props []Property, opts ...TraitsOption) *Traits {
	t.Helper()
	traits, err := NewTraits(id, props, opts...)
	require.NoError(t, err)
	return traits
}

func mustBlock(t *testing.T, traits *Traits, initial map[string]string) *Block {
	t.Helper()
	b, err := New(traits, initial)
	require.NoError(t, err)
	return b
}

func poweredRailTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:powered_rail", []Property{
		BoolProperty("powered", false),
		MustProperty("shape", "north_south",
			"north_south", "east_west",
			"ascending_east", "ascending_west", "ascending_north", "ascending_south"),
		BoolProperty("waterlogged", false),
	})
}

func glowLichenTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:glow_lichen", []Property{
		BoolProperty("down", false),
		BoolProperty("east", false),
		BoolProperty("north", false),
		BoolProperty("south", false),
		BoolProperty("up", false),
		BoolProperty("waterlogged", false),
		BoolProperty("west", false),
	})
}

func oakButtonTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:oak_button", []Property{
		MustProperty("face", "wall", "floor", "wall", "ceiling"),
		MustProperty("facing", "north", horizontal...),
		BoolProperty("powered", false),
	}, WithPistonBehavior(PistonDestroy))
}

func skullTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:skeleton_skull", []Property{
		BoolProperty("powered", false),
		MustProperty("rotation", "0", headings()...),
	}, WithPistonBehavior(PistonDestroy))
}

func chestTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:chest", []Property{
		MustProperty("facing", "north", horizontal...),
		MustProperty("type", "single", "single", "left", "right"),
		BoolProperty("waterlogged", false),
	}, WithContainer(27))
}

func logTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:oak_log", []Property{
		MustProperty("axis", "y", "x", "y", "z"),
	})
}

func stairsTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:oak_stairs", []Property{
		MustProperty("facing", "north", horizontal...),
		MustProperty("half", "bottom", "top", "bottom"),
		MustProperty("shape", "straight", "straight", "inner_left", "inner_right", "outer_left", "outer_right"),
		BoolProperty("waterlogged", false),
	})
}

func observerTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:observer", []Property{
		MustProperty("facing", "south", "north", "east", "south", "west", "up", "down"),
		BoolProperty("powered", false),
	})
}

func stoneTraits(t *testing.T) *Traits {
	return mustTraits(t, "test:stone", nil)
}

// assertMoved checks that for every (to, from) pair the value now at to equals
// the value that was at from before.
func assertMoved(t *testing.T, before, after *Block, moves map[string]string) {
	t.Helper()
	for to, from := range moves {
		require.Equal(t, before.StateOr(from, "?"), after.StateOr(to, "?"), "%s should hold previous %s", to, from)
	}
}
