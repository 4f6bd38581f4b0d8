package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/pkg/block"
	"github.com/dyluth/mcobj/pkg/registry"
)

var showStates []string

var showCmd = &cobra.Command{
	Use:   "show BLOCK_ID",
	Short: "Show a block's properties and allowed values",
	Long: `Create a block from its definition and print every property with its
current value and the values it allows.

Unqualified ids are looked up in the minecraft namespace.

Examples:
  # Default state of a lever
  mcobj show lever

  # Override properties
  mcobj show minecraft:oak_stairs --state facing=east --state half=top

  # As JSON
  mcobj show lever -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringArrayVarP(&showStates, "state", "s", nil, "Property override as name=value (repeatable)")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}

	b, err := s.newBlock(args[0], showStates)
	if err != nil {
		return err
	}

	return statefmt.WriteBlock(cmd.OutOrStdout(), s.format, b)
}

// parseStates converts name=value pairs into a state map.
func parseStates(pairs []string) (map[string]string, error) {
	states := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, printer.Error(
				"invalid state",
				fmt.Sprintf("'%s' is not of the form name=value.", pair),
				[]string{"Example: --state facing=north"},
			)
		}
		states[name] = strings.TrimSpace(value)
	}
	return states, nil
}

// newBlock creates id with the given name=value overrides, turning lookup and
// validation failures into formatted CLI errors.
func (s *session) newBlock(id string, pairs []string) (*block.Block, error) {
	states, err := parseStates(pairs)
	if err != nil {
		return nil, err
	}

	b, err := s.factory.Block(id, states)
	if err == nil {
		return b, nil
	}

	switch {
	case errors.Is(err, registry.ErrNotRegistered):
		return nil, printer.Error(
			"unknown block",
			fmt.Sprintf("No block '%s' is defined by the loaded mods.", id),
			[]string{"List the loaded blocks:\n  mcobj list --kind block"},
		)
	case errors.Is(err, block.ErrUnknownProperty), errors.Is(err, block.ErrInvalidValue):
		return nil, printer.Error(
			"invalid block state",
			err.Error(),
			[]string{fmt.Sprintf("Show the allowed values:\n  mcobj show %s", id)},
		)
	default:
		return nil, fmt.Errorf("failed to create block %s: %w", id, err)
	}
}
