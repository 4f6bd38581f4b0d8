package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/config"
	"github.com/dyluth/mcobj/internal/filter"
	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/resolver"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/internal/timespec"
	"github.com/dyluth/mcobj/pkg/store"
)

var (
	redisAddr string
	worldName string

	saveStates []string

	recordsSince  string
	recordsUntil  string
	recordsBlock  string
	recordsStates []string
)

var saveCmd = &cobra.Command{
	Use:   "save BLOCK_ID",
	Short: "Save a block to Redis",
	Long: `Create a block and store a snapshot of its state in Redis under a new
record id. A 'saved' event is published for watchers.

Examples:
  mcobj save lever --state powered=true
  mcobj save chest --world creative --redis redis://cache:6379/1`,
	Args: cobra.ExactArgs(1),
	RunE: runSave,
}

var loadCmd = &cobra.Command{
	Use:   "load RECORD_ID",
	Short: "Load a saved block from Redis",
	Long: `Fetch a saved record and rebuild the block from the current definitions.
RECORD_ID may be the full id or a unique prefix of at least 6 characters.

Examples:
  mcobj load 0f9c2b1e-5d7a-4c1e-9f47-1f2a3b4c5d6e -o json
  mcobj load 0f9c2b1e`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List blocks saved in a world",
	Long: `List saved blocks, oldest first.

Time Filters:
  --since and --until accept durations counted back from now (1h, 30m) or
  RFC3339 timestamps. --until is exclusive.

Examples:
  mcobj records
  mcobj records --since 1h --block 'minecraft:*_stairs'
  mcobj records --state facing=east -o jsonl`,
	Args: cobra.NoArgs,
	RunE: runRecords,
}

var deleteCmd = &cobra.Command{
	Use:   "delete RECORD_ID",
	Short: "Delete a saved block",
	Long: `Delete a saved record and publish a 'deleted' event for watchers.
RECORD_ID may be the full id or a unique prefix of at least 6 characters.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	saveCmd.Flags().StringArrayVarP(&saveStates, "state", "s", nil, "Property override as name=value (repeatable)")

	recordsCmd.Flags().StringVar(&recordsSince, "since", "", "Only records created at or after this time")
	recordsCmd.Flags().StringVar(&recordsUntil, "until", "", "Only records created before this time")
	recordsCmd.Flags().StringVar(&recordsBlock, "block", "", "Glob pattern for the block id")
	recordsCmd.Flags().StringArrayVarP(&recordsStates, "state", "s", nil, "Only records with this property value, as name=value (repeatable)")

	for _, cmd := range []*cobra.Command{saveCmd, loadCmd, recordsCmd, deleteCmd, watchCmd} {
		addStoreFlags(cmd)
		rootCmd.AddCommand(cmd)
	}
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis host:port or redis:// URL (overrides the configuration)")
	cmd.Flags().StringVarP(&worldName, "world", "w", "", "World the records belong to (overrides the configuration)")
}

// openStore connects to the configured Redis and checks that it answers.
func openStore(ctx context.Context, cfg *config.McobjConfig) (*store.Client, error) {
	rc := *cfg.Redis
	if redisAddr != "" {
		if strings.HasPrefix(redisAddr, "redis://") || strings.HasPrefix(redisAddr, "rediss://") {
			rc.URL = redisAddr
		} else {
			rc.Addr, rc.URL = redisAddr, ""
		}
	}
	if worldName != "" {
		rc.World = worldName
	}
	if err := rc.Validate(); err != nil {
		return nil, printer.Error("invalid redis settings", err.Error(), nil)
	}

	opts, err := rc.Options()
	if err != nil {
		return nil, printer.Error("invalid redis settings", err.Error(), nil)
	}

	client, err := store.NewClient(opts, rc.World)
	if err != nil {
		return nil, fmt.Errorf("failed to create store client: %w", err)
	}

	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, printer.ErrorWithContext(
			"redis unavailable",
			fmt.Sprintf("Could not reach Redis: %v", err),
			map[string]string{"Address": opts.Addr, "World": rc.World},
			[]string{
				"Start a local Redis:\n  docker run -d -p 6379:6379 redis:7-alpine",
				"Point mcobj at another server:\n  mcobj records --redis host:port",
			},
		)
	}
	return client, nil
}

func runSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	s, err := openSession()
	if err != nil {
		return err
	}
	b, err := s.newBlock(args[0], saveStates)
	if err != nil {
		return err
	}

	client, err := openStore(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	rec, err := client.SaveBlock(ctx, b)
	if err != nil {
		return fmt.Errorf("failed to save block: %w", err)
	}

	switch s.format {
	case statefmt.OutputFormatJSON:
		return statefmt.FormatJSON(cmd.OutOrStdout(), rec)
	case statefmt.OutputFormatJSONL:
		return statefmt.FormatJSONL(cmd.OutOrStdout(), []*store.Record{rec})
	default:
		printer.Success("Saved %s in world '%s'\n", b.ID(), client.World())
		fmt.Fprintln(cmd.OutOrStdout(), rec.ID)
		return nil
	}
}

func runLoad(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	recordID := args[0]

	s, err := openSession()
	if err != nil {
		return err
	}

	client, err := openStore(ctx, s.cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	recordID, err = resolveRecord(ctx, client, recordID)
	if err != nil {
		return err
	}

	b, err := client.LoadBlock(ctx, recordID, s.factory.Blocks)
	if err != nil {
		if store.IsNotFound(err) {
			return recordNotFound(client, recordID)
		}
		return printer.Error(
			"failed to load block",
			err.Error(),
			[]string{"Check that the mods defining the block are configured"},
		)
	}

	return statefmt.WriteBlock(cmd.OutOrStdout(), s.format, b)
}

func runRecords(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	criteria, err := recordCriteria()
	if err != nil {
		return err
	}

	cfg, format, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	records, err := client.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list records: %w", err)
	}
	return statefmt.WriteRecords(cmd.OutOrStdout(), format, criteria.Apply(records), client.World())
}

// recordCriteria builds the records filter from the command flags.
func recordCriteria() (*filter.Criteria, error) {
	created, err := timespec.ParseRange(recordsSince, recordsUntil, time.Now())
	if err != nil {
		return nil, printer.Error(
			"invalid time filter",
			err.Error(),
			[]string{"Use a duration like --since 1h or a timestamp like --since 2025-10-29T13:00:00Z"},
		)
	}

	if err := filter.ValidateGlob(recordsBlock); err != nil {
		return nil, printer.Error(
			"invalid block pattern",
			fmt.Sprintf("'%s' is not a valid glob: %v", recordsBlock, err),
			[]string{"Example: --block 'minecraft:*_stairs'"},
		)
	}

	states, err := parseStates(recordsStates)
	if err != nil {
		return nil, err
	}
	for name, value := range states {
		states[name] = strings.ToLower(value)
	}

	return &filter.Criteria{Created: created, BlockGlob: recordsBlock, State: states}, nil
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	recordID := args[0]

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	recordID, err = resolveRecord(ctx, client, recordID)
	if err != nil {
		return err
	}

	if err := client.DeleteRecord(ctx, recordID); err != nil {
		if store.IsNotFound(err) {
			return recordNotFound(client, recordID)
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}

	printer.Success("Deleted %s from world '%s'\n", recordID, client.World())
	return nil
}

// resolveRecord expands a short record id into the full id.
func resolveRecord(ctx context.Context, client *store.Client, shortID string) (string, error) {
	recordID, err := resolver.ResolveRecordID(ctx, client, shortID)
	if err == nil {
		return recordID, nil
	}

	if resolver.IsNotFoundError(err) {
		return "", recordNotFound(client, shortID)
	}
	if resolver.IsAmbiguousError(err) {
		amb := err.(*resolver.AmbiguousError)
		return "", printer.Error(
			fmt.Sprintf("ambiguous record id '%s'", shortID),
			fmt.Sprintf("Matches %d records:\n%s", len(amb.Matches), amb.FormatMatches()),
			[]string{"Use more characters of the id", "Use the full record id"},
		)
	}
	if errors.Is(err, resolver.ErrTooShort) {
		return "", printer.Error("record id too short", err.Error(), []string{"List saved blocks:\n  mcobj records"})
	}
	return "", err
}

func recordNotFound(client *store.Client, recordID string) error {
	return printer.Error(
		fmt.Sprintf("record '%s' not found", recordID),
		fmt.Sprintf("No block is saved under that id in world '%s'.", client.World()),
		[]string{"List saved blocks:\n  mcobj records"},
	)
}
