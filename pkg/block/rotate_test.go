package block

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate_InvalidAxis(t *testing.T) {
	rail := mustBlock(t, poweredRailTraits(t), nil)
	assert.ErrorIs(t, rail.Rotate("a", 90), ErrInvalidAxis)
}

func TestRotate_InvalidAngle(t *testing.T) {
	rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_north"})
	for _, angle := range []int{0, 45, 360, -360, 100} {
		err := rail.Rotate(AxisX, angle)
		require.ErrorIs(t, err, ErrInvalidAngle, "angle %d", angle)
		assert.Contains(t, err.Error(), fmt.Sprint(angle))
	}
	assert.Equal(t, "ascending_north", rail.StateOr("shape", ""))

	stone := mustBlock(t, stoneTraits(t), nil)
	assert.ErrorIs(t, stone.Rotate(AxisY, 45), ErrInvalidAngle, "angle is checked even without properties")
}

func TestRotate_AngleIsTakenModulo360(t *testing.T) {
	for angle, want := range map[int]string{-90: "5", 450: "13", -180: "9", 630: "5"} {
		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisY, angle))
		assert.Equal(t, want, skull.StateOr("rotation", ""), "angle %d", angle)
	}
}

func TestRotate_NoProperties(t *testing.T) {
	stone := mustBlock(t, stoneTraits(t), nil)
	for _, axis := range Axes {
		for _, angle := range []int{90, 180, 270} {
			require.NoError(t, stone.Rotate(axis, angle))
		}
	}
	assert.Empty(t, stone.States())
}

// compassMoves returns, for each direction boolean, the direction whose value
// it should hold after one step. Directions not in ring keep their own value.
func compassMoves(ring []string, forwards bool) map[string]string {
	moves := map[string]string{}
	for _, d := range Directions {
		moves[string(d)] = string(d)
	}
	n := len(ring)
	for i, to := range ring {
		if forwards {
			moves[to] = ring[(i-1+n)%n]
		} else {
			moves[to] = ring[(i+1)%n]
		}
	}
	return moves
}

func TestRotate_X(t *testing.T) {
	t.Run("90", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_north"})
		require.NoError(t, rail.Rotate(AxisX, 90))
		assert.Equal(t, "ascending_south", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisX, 90))
			assertMoved(t, prev, lichen, compassMoves([]string{"up", "south", "down", "north"}, true))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "south"})
		steps := [][2]string{{"ceiling", "south"}, {"wall", "north"}, {"floor", "north"}, {"wall", "south"}}
		for _, want := range steps {
			require.NoError(t, button.Rotate(AxisX, 90))
			assert.Equal(t, want[0], button.StateOr("face", ""))
			if want[0] == "wall" {
				assert.Equal(t, want[1], button.StateOr("facing", ""))
			}
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisX, 90))
		assert.Equal(t, "1", skull.StateOr("rotation", ""))
	})

	t.Run("180", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_north"})
		require.NoError(t, rail.Rotate(AxisX, 180))
		assert.Equal(t, "ascending_north", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 2; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisX, 180))
			assertMoved(t, prev, lichen, map[string]string{
				"up": "down", "down": "up", "north": "south", "south": "north", "east": "east", "west": "west",
			})
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "north"})
		require.NoError(t, button.Rotate(AxisX, 180))
		assert.Equal(t, map[string]string{"face": "wall", "facing": "south", "powered": "false"}, button.States())
		require.NoError(t, button.Rotate(AxisX, 180))
		assert.Equal(t, map[string]string{"face": "wall", "facing": "north", "powered": "false"}, button.States())

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisX, 180))
		assert.Equal(t, "7", skull.StateOr("rotation", ""))
	})

	t.Run("270", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_north"})
		require.NoError(t, rail.Rotate(AxisX, 270))
		assert.Equal(t, "ascending_south", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisX, 270))
			assertMoved(t, prev, lichen, compassMoves([]string{"up", "south", "down", "north"}, false))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "south"})
		steps := [][2]string{{"floor", ""}, {"wall", "north"}, {"ceiling", ""}, {"wall", "south"}}
		for _, want := range steps {
			require.NoError(t, button.Rotate(AxisX, 270))
			assert.Equal(t, want[0], button.StateOr("face", ""))
			if want[1] != "" {
				assert.Equal(t, want[1], button.StateOr("facing", ""))
			}
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisX, 270))
		assert.Equal(t, "1", skull.StateOr("rotation", ""))
	})
}

func TestRotate_Y(t *testing.T) {
	t.Run("90", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_east"})
		for _, want := range []string{"ascending_north", "ascending_west", "ascending_south", "ascending_east"} {
			require.NoError(t, rail.Rotate(AxisY, 90))
			assert.Equal(t, want, rail.StateOr("shape", ""))
		}

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisY, 90))
			assertMoved(t, prev, lichen, compassMoves([]string{"north", "west", "south", "east"}, true))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "north"})
		for _, want := range []string{"west", "south", "east", "north"} {
			require.NoError(t, button.Rotate(AxisY, 90))
			assert.Equal(t, "wall", button.StateOr("face", ""))
			assert.Equal(t, want, button.StateOr("facing", ""))
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisY, 90))
		assert.Equal(t, "13", skull.StateOr("rotation", ""))
	})

	t.Run("180", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_east"})
		require.NoError(t, rail.Rotate(AxisY, 180))
		assert.Equal(t, "ascending_west", rail.StateOr("shape", ""))
		require.NoError(t, rail.Rotate(AxisY, 180))
		assert.Equal(t, "ascending_east", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 2; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisY, 180))
			assertMoved(t, prev, lichen, map[string]string{
				"north": "south", "south": "north", "east": "west", "west": "east", "up": "up", "down": "down",
			})
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "north"})
		require.NoError(t, button.Rotate(AxisY, 180))
		assert.Equal(t, "south", button.StateOr("facing", ""))
		require.NoError(t, button.Rotate(AxisY, 180))
		assert.Equal(t, "north", button.StateOr("facing", ""))
		assert.Equal(t, "wall", button.StateOr("face", ""))

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisY, 180))
		assert.Equal(t, "9", skull.StateOr("rotation", ""))
	})

	t.Run("270", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_east"})
		for _, want := range []string{"ascending_south", "ascending_west", "ascending_north", "ascending_east"} {
			require.NoError(t, rail.Rotate(AxisY, 270))
			assert.Equal(t, want, rail.StateOr("shape", ""))
		}

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisY, 270))
			assertMoved(t, prev, lichen, compassMoves([]string{"north", "west", "south", "east"}, false))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "north"})
		for _, want := range []string{"east", "south", "west", "north"} {
			require.NoError(t, button.Rotate(AxisY, 270))
			assert.Equal(t, "wall", button.StateOr("face", ""))
			assert.Equal(t, want, button.StateOr("facing", ""))
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisY, 270))
		assert.Equal(t, "5", skull.StateOr("rotation", ""))
	})

	t.Run("rail straight shapes and corners", func(t *testing.T) {
		rail := mustTraits(t, "test:rail", []Property{
			MustProperty("shape", "north_south",
				"north_south", "east_west", "north_east", "north_west", "south_west", "south_east"),
		})
		b := mustBlock(t, rail, map[string]string{"shape": "north_east"})
		for _, want := range []string{"north_west", "south_west", "south_east", "north_east"} {
			require.NoError(t, b.Rotate(AxisY, 90))
			assert.Equal(t, want, b.StateOr("shape", ""))
		}
		require.NoError(t, b.SetState("shape", "north_south"))
		require.NoError(t, b.Rotate(AxisY, 270))
		assert.Equal(t, "east_west", b.StateOr("shape", ""))
	})
}

func TestRotate_Z(t *testing.T) {
	t.Run("90", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_east"})
		require.NoError(t, rail.Rotate(AxisZ, 90))
		assert.Equal(t, "ascending_west", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisZ, 90))
			assertMoved(t, prev, lichen, compassMoves([]string{"up", "west", "down", "east"}, true))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "west"})
		steps := [][2]string{{"ceiling", ""}, {"wall", "east"}, {"floor", ""}, {"wall", "west"}}
		for _, want := range steps {
			require.NoError(t, button.Rotate(AxisZ, 90))
			assert.Equal(t, want[0], button.StateOr("face", ""))
			if want[1] != "" {
				assert.Equal(t, want[1], button.StateOr("facing", ""))
			}
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisZ, 90))
		assert.Equal(t, "1", skull.StateOr("rotation", ""))
	})

	t.Run("180", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_west"})
		require.NoError(t, rail.Rotate(AxisZ, 180))
		assert.Equal(t, "ascending_west", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 2; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisZ, 180))
			assertMoved(t, prev, lichen, map[string]string{
				"up": "down", "down": "up", "east": "west", "west": "east", "north": "north", "south": "south",
			})
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "west"})
		require.NoError(t, button.Rotate(AxisZ, 180))
		assert.Equal(t, "wall", button.StateOr("face", ""))
		assert.Equal(t, "east", button.StateOr("facing", ""))
		require.NoError(t, button.Rotate(AxisZ, 180))
		assert.Equal(t, "wall", button.StateOr("face", ""))
		assert.Equal(t, "west", button.StateOr("facing", ""))

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisZ, 180))
		assert.Equal(t, "15", skull.StateOr("rotation", ""))
	})

	t.Run("270", func(t *testing.T) {
		rail := mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_east"})
		require.NoError(t, rail.Rotate(AxisZ, 270))
		assert.Equal(t, "ascending_west", rail.StateOr("shape", ""))

		lichen := mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"})
		for n := 0; n < 4; n++ {
			prev := lichen.Copy()
			require.NoError(t, lichen.Rotate(AxisZ, 270))
			assertMoved(t, prev, lichen, compassMoves([]string{"up", "west", "down", "east"}, false))
		}

		button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "west"})
		steps := [][2]string{{"floor", ""}, {"wall", "east"}, {"ceiling", ""}, {"wall", "west"}}
		for _, want := range steps {
			require.NoError(t, button.Rotate(AxisZ, 270))
			assert.Equal(t, want[0], button.StateOr("face", ""))
			if want[1] != "" {
				assert.Equal(t, want[1], button.StateOr("facing", ""))
			}
		}

		skull := mustBlock(t, skullTraits(t), map[string]string{"rotation": "1"})
		require.NoError(t, skull.Rotate(AxisZ, 270))
		assert.Equal(t, "1", skull.StateOr("rotation", ""))
	})
}

func TestRotate_AxisAndFacing(t *testing.T) {
	cases := []struct {
		axis     Axis
		from, to string
	}{
		{AxisX, "y", "z"},
		{AxisX, "x", "x"},
		{AxisY, "x", "z"},
		{AxisY, "y", "y"},
		{AxisZ, "x", "y"},
		{AxisZ, "z", "z"},
	}
	for _, tc := range cases {
		log := mustBlock(t, logTraits(t), map[string]string{"axis": tc.from})
		require.NoError(t, log.Rotate(tc.axis, 90))
		assert.Equal(t, tc.to, log.StateOr("axis", ""), "axis %s from %s", tc.axis, tc.from)
	}

	observer := mustBlock(t, observerTraits(t), map[string]string{"facing": "up"})
	for _, want := range []string{"south", "down", "north", "up"} {
		require.NoError(t, observer.Rotate(AxisX, 90))
		assert.Equal(t, want, observer.StateOr("facing", ""))
	}
	for _, want := range []string{"west", "down", "east", "up"} {
		require.NoError(t, observer.Rotate(AxisZ, 90))
		assert.Equal(t, want, observer.StateOr("facing", ""))
	}
	require.NoError(t, observer.Rotate(AxisY, 90))
	assert.Equal(t, "up", observer.StateOr("facing", ""), "y turns leave vertical facings alone")
}

func TestRotate_MountParallelToAxisStaysOnWall(t *testing.T) {
	tests := []struct {
		axis   Axis
		facing string
	}{
		{AxisX, "east"},
		{AxisX, "west"},
		{AxisZ, "north"},
		{AxisZ, "south"},
	}
	for _, tt := range tests {
		t.Run(string(tt.axis)+"/"+tt.facing, func(t *testing.T) {
			button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": tt.facing})
			for _, angle := range []int{90, 270, -90} {
				require.NoError(t, button.Rotate(tt.axis, angle))
				assert.Equal(t, "wall", button.StateOr("face", ""), "angle %d", angle)
				assert.Equal(t, tt.facing, button.StateOr("facing", ""), "angle %d", angle)
			}
		})
	}
}

func TestRotate_FloorMountLosesOffAxisFacing(t *testing.T) {
	button := mustBlock(t, oakButtonTraits(t), map[string]string{"face": "floor", "facing": "west"})
	require.NoError(t, button.Rotate(AxisX, 90))
	assert.Equal(t, "wall", button.StateOr("face", ""))
	assert.Equal(t, "south", button.StateOr("facing", ""))
	require.NoError(t, button.Rotate(AxisX, 270))
	assert.Equal(t, "floor", button.StateOr("face", ""))
	assert.Equal(t, "south", button.StateOr("facing", ""))
}

func TestRotate_PartialCompassIsNoop(t *testing.T) {
	fence := mustTraits(t, "test:oak_fence", []Property{
		BoolProperty("east", false),
		BoolProperty("north", true),
		BoolProperty("south", false),
		BoolProperty("waterlogged", false),
		BoolProperty("west", false),
	})
	b := mustBlock(t, fence, nil)

	require.NoError(t, b.Rotate(AxisX, 90))
	assert.Equal(t, "true", b.StateOr("north", ""), "no up/down, so the x ring does not move")

	require.NoError(t, b.Rotate(AxisY, 90))
	assert.Equal(t, "false", b.StateOr("north", ""))
	assert.Equal(t, "true", b.StateOr("west", ""))
}

func TestRotate_Identities(t *testing.T) {
	blocks := []*Block{
		mustBlock(t, poweredRailTraits(t), map[string]string{"shape": "ascending_north", "powered": "true"}),
		mustBlock(t, glowLichenTraits(t), map[string]string{"north": "true", "east": "true", "up": "true"}),
		mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "south"}),
		mustBlock(t, oakButtonTraits(t), map[string]string{"face": "wall", "facing": "east"}),
		mustBlock(t, skullTraits(t), map[string]string{"rotation": "3"}),
		mustBlock(t, stairsTraits(t), map[string]string{"facing": "west", "half": "top", "shape": "outer_left"}),
		mustBlock(t, observerTraits(t), map[string]string{"facing": "north"}),
		mustBlock(t, logTraits(t), map[string]string{"axis": "z"}),
	}

	for _, orig := range blocks {
		for _, axis := range Axes {
			name := fmt.Sprintf("%s/%s", orig.ID(), axis)

			t.Run(name+"/four quarter turns", func(t *testing.T) {
				b := orig.Copy()
				for n := 0; n < 4; n++ {
					require.NoError(t, b.Rotate(axis, 90))
				}
				assert.Equal(t, orig.States(), b.States())
			})

			t.Run(name+"/90 then 270", func(t *testing.T) {
				b := orig.Copy()
				require.NoError(t, b.Rotate(axis, 90))
				require.NoError(t, b.Rotate(axis, 270))
				assert.Equal(t, orig.States(), b.States())
			})

			t.Run(name+"/180 is both perpendicular reflections", func(t *testing.T) {
				others := axis.others()
				for _, order := range [][2]Axis{others, {others[1], others[0]}} {
					turned := orig.Copy()
					require.NoError(t, turned.Rotate(axis, 180))

					mirrored := orig.Copy()
					require.NoError(t, mirrored.Reflect(order[0]))
					require.NoError(t, mirrored.Reflect(order[1]))
					assert.Equal(t, mirrored.States(), turned.States())
				}
			})
		}
	}
}
