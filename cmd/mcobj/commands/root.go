package commands

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/config"
	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/pkg/catalog"
)

var (
	version string
	commit  string
	date    string
)

var (
	configPath   string
	dataDir      string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mcobj",
	Short: "mcobj - Minecraft block states, rotation and reflection",
	Long: `mcobj loads block, item, entity and enchantment definitions from data
files and manipulates block states: set properties, rotate blocks about an
axis and reflect them across one.

Blocks can be saved to Redis and loaded back, and every save or delete is
published so other tools can follow along with 'mcobj watch'.`,
	Version: version,
	// Prevent silent success when unknown flags are passed to root command
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Loader warnings (missing definition files) are only shown on request
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
	},
	// Enable strict flag parsing - unknown flags will cause an error
	FParseErrWhitelist: cobra.FParseErrWhitelist{},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Silence Cobra's default error and usage printing
	// We print formatted colored errors directly in the printer package
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to the mcobj.yml configuration (defaults apply when missing)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "Data directory for mods without an explicit directory")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: default, json or jsonl (overrides the configuration)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show definition loader warnings")
}

// session is the state shared by commands: the validated configuration, the
// selected output format and the definitions loaded from every mod.
type session struct {
	cfg     *config.McobjConfig
	format  statefmt.OutputFormat
	factory *catalog.Factory
}

// loadConfig reads the configuration and applies the global flag overrides.
func loadConfig() (*config.McobjConfig, statefmt.OutputFormat, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, "", printer.ErrorWithContext(
			"invalid configuration",
			err.Error(),
			map[string]string{"Config": configPath},
			[]string{"Fix the file, or remove it to use the built-in defaults"},
		)
	}

	if dataDir != "" {
		for i := range cfg.Mods {
			if cfg.Mods[i].Directory == cfg.DataDirectory {
				cfg.Mods[i].Directory = dataDir
			}
		}
		cfg.DataDirectory = dataDir
	}

	selected := cfg.Output
	if outputFormat != "" {
		selected = outputFormat
	}
	format, err := statefmt.ParseOutputFormat(selected)
	if err != nil {
		return nil, "", printer.Error(
			"invalid output format",
			fmt.Sprintf("Unknown format: %s", selected),
			[]string{"Valid formats: default, json, jsonl"},
		)
	}
	return cfg, format, nil
}

// openSession loads the configuration and imports every configured mod.
func openSession() (*session, error) {
	if err := checkDataDir(); err != nil {
		return nil, err
	}
	cfg, format, err := loadConfig()
	if err != nil {
		return nil, err
	}

	factory, err := catalog.NewFactory(cfg.Mods...)
	if err != nil {
		return nil, printer.Error(
			"failed to load definitions",
			err.Error(),
			[]string{"Check the definition files of the mods listed in " + configPath},
		)
	}

	if len(factory.Mods()) == 0 {
		printer.Warning("No definition files found under %s (run 'mcobj init' to create them)\n", cfg.DataDirectory)
	}

	return &session{cfg: cfg, format: format, factory: factory}, nil
}

// checkDataDir reports a missing --data directory up front instead of
// letting every mod be skipped.
func checkDataDir() error {
	if dataDir == "" {
		return nil
	}
	info, err := os.Stat(dataDir)
	if err != nil || !info.IsDir() {
		return printer.Error(
			"data directory not found",
			fmt.Sprintf("%s is not a directory.", dataDir),
			[]string{
				"Point --data at the directory holding <namespace>-<version>-<kind> files",
				"Create the vanilla definitions:\n  mcobj init",
			},
		)
	}
	return nil
}
