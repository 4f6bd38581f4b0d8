package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/internal/watch"
	"github.com/dyluth/mcobj/pkg/store"
)

var watchLimit int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream block save and delete events",
	Long: `Follow every block saved to or deleted from a world as it happens.

Output Formats:
  default - One line per event
  json    - Line-delimited JSON for programmatic processing
  jsonl   - Same as json

Examples:
  # Watch the configured world until interrupted
  mcobj watch

  # Stop after the first three events
  mcobj watch --world creative --limit 3 -o jsonl`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	// Registered with the other store commands
	watchCmd.Flags().IntVar(&watchLimit, "limit", 0, "Exit after this many events (0 = until interrupted)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchLimit < 0 {
		return printer.Error(
			"invalid limit",
			fmt.Sprintf("--limit must be >= 0, got %d", watchLimit),
			nil,
		)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, format, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	sub, err := client.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch world %s: %w", client.World(), err)
	}
	defer sub.Close()

	if format == statefmt.OutputFormatDefault {
		printer.Info("Watching world '%s' (Ctrl+C to stop)\n", client.World())
	}

	handle := func(ev *store.Event) error {
		return statefmt.WriteEvent(cmd.OutOrStdout(), format, ev)
	}
	onErr := func(err error) {
		printer.Warning("%v\n", err)
	}
	_, err = watch.Stream(ctx, sub, watchLimit, handle, onErr)
	return err
}
