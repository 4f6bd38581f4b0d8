package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]Axis{"x": AxisX, "Y": AxisY, " z ": AxisZ} {
		got, err := ParseAxis(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	for _, in := range []string{"", "a", "xy", "north"} {
		_, err := ParseAxis(in)
		assert.ErrorIs(t, err, ErrInvalidAxis, in)
	}
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		got, err := ParseDirection(string(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection("NoRtH")
	require.NoError(t, err)
	assert.Equal(t, North, got)

	_, err = ParseDirection("northeast")
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestParseFace(t *testing.T) {
	got, err := ParseFace("Ceiling")
	require.NoError(t, err)
	assert.Equal(t, FaceCeiling, got)

	_, err = ParseFace("roof")
	assert.ErrorIs(t, err, ErrInvalidFace)
}

func TestParsePistonBehavior(t *testing.T) {
	got, err := ParsePistonBehavior("")
	require.NoError(t, err)
	assert.Equal(t, PistonNormal, got)

	got, err = ParsePistonBehavior("push_only")
	require.NoError(t, err)
	assert.Equal(t, PistonPushOnly, got)

	_, err = ParsePistonBehavior("sticky")
	assert.ErrorIs(t, err, ErrInvalidPistonBehavior)
}

func TestAxisOthers(t *testing.T) {
	assert.Equal(t, [2]Axis{AxisY, AxisZ}, AxisX.others())
	assert.Equal(t, [2]Axis{AxisX, AxisZ}, AxisY.others())
	assert.Equal(t, [2]Axis{AxisX, AxisY}, AxisZ.others())
}
