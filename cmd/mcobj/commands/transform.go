package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/pkg/block"
)

var (
	rotateAxis   string
	rotateAngle  int
	rotateStates []string

	reflectAxis   string
	reflectStates []string
)

var rotateCmd = &cobra.Command{
	Use:   "rotate BLOCK_ID",
	Short: "Rotate a block about an axis",
	Long: `Rotate a block about the x, y or z axis by 90, 180 or 270 degrees and
show which properties changed.

Rotation follows the right-hand rule: seen from below, a 90 degree turn about y
is clockwise. Angles are taken modulo 360, so -90 is the same as 270.

Examples:
  mcobj rotate lever --state face=wall --state facing=north --axis x
  mcobj rotate skeleton_skull --state rotation=1 --axis y --angle 180`,
	Args: cobra.ExactArgs(1),
	RunE: runRotate,
}

var reflectCmd = &cobra.Command{
	Use:   "reflect BLOCK_ID",
	Short: "Reflect a block across an axis",
	Long: `Mirror a block across the plane perpendicular to an axis: x swaps east
and west, y swaps up and down, z swaps north and south.

Examples:
  mcobj reflect oak_stairs --state facing=east --state shape=outer_left --axis x
  mcobj reflect powered_rail --state shape=ascending_north --axis z -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runReflect,
}

func init() {
	rotateCmd.Flags().StringVarP(&rotateAxis, "axis", "a", string(block.AxisY), "Axis to rotate about (x, y or z)")
	rotateCmd.Flags().IntVar(&rotateAngle, "angle", 90, "Angle in degrees (90, 180 or 270, modulo 360)")
	rotateCmd.Flags().StringArrayVarP(&rotateStates, "state", "s", nil, "Property override as name=value (repeatable)")
	rootCmd.AddCommand(rotateCmd)

	reflectCmd.Flags().StringVarP(&reflectAxis, "axis", "a", "", "Axis to reflect across (x, y or z)")
	reflectCmd.Flags().StringArrayVarP(&reflectStates, "state", "s", nil, "Property override as name=value (repeatable)")
	_ = reflectCmd.MarkFlagRequired("axis")
	rootCmd.AddCommand(reflectCmd)
}

func runRotate(cmd *cobra.Command, args []string) error {
	axis, err := parseAxisFlag(rotateAxis)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	b, err := s.newBlock(args[0], rotateStates)
	if err != nil {
		return err
	}

	before := b.States()
	if err := b.Rotate(axis, rotateAngle); err != nil {
		if errors.Is(err, block.ErrInvalidAngle) {
			return printer.Error(
				"invalid angle",
				fmt.Sprintf("Cannot rotate by %d degrees.", rotateAngle),
				[]string{"Use a multiple of 90 that is not a multiple of 360, e.g. --angle 90"},
			)
		}
		return fmt.Errorf("failed to rotate %s: %w", b.ID(), err)
	}

	op := fmt.Sprintf("rotate %s %d", axis, rotateAngle)
	return statefmt.WriteTransform(cmd.OutOrStdout(), s.format, op, before, b)
}

func runReflect(cmd *cobra.Command, args []string) error {
	axis, err := parseAxisFlag(reflectAxis)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	b, err := s.newBlock(args[0], reflectStates)
	if err != nil {
		return err
	}

	before := b.States()
	if err := b.Reflect(axis); err != nil {
		return fmt.Errorf("failed to reflect %s: %w", b.ID(), err)
	}

	op := fmt.Sprintf("reflect %s", axis)
	return statefmt.WriteTransform(cmd.OutOrStdout(), s.format, op, before, b)
}

func parseAxisFlag(value string) (block.Axis, error) {
	axis, err := block.ParseAxis(value)
	if err != nil {
		return "", printer.Error(
			"invalid axis",
			fmt.Sprintf("Unknown axis: %s", value),
			[]string{"Valid axes: x, y, z"},
		)
	}
	return axis, nil
}
