package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/scaffold"
)

var (
	forceInit bool
	initDir   string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create mcobj.yml and the vanilla definition files",
	Long: `Initialize a working directory with a default configuration and the
bundled Minecraft 1.20 definitions.

Creates:
  • mcobj.yml - Configuration file
  • data/     - Block, item, entity and enchantment definitions

Use --force to reinitialize. mcobj.yml and the bundled files are overwritten;
other files under data/ are kept.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	// Note: Cannot use -f shorthand to stay clear of other file flags
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Force reinitialization (overwrites mcobj.yml and the bundled definitions)")
	initCmd.Flags().StringVar(&initDir, "dir", ".", "Directory to initialize")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	// Check for existing files (unless --force)
	if !forceInit {
		if err := scaffold.CheckExisting(initDir); err != nil {
			var existing *scaffold.ExistingError
			if errors.As(err, &existing) {
				return printer.Error(
					"project already initialized",
					fmt.Sprintf("Found existing: %v", existing.Files),
					[]string{"Reinitialize (overwrites mcobj.yml):\n  mcobj init --force"},
				)
			}
			return err
		}
	}

	created, err := scaffold.Initialize(initDir, forceInit)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	scaffold.PrintSuccess(created)
	return nil
}
