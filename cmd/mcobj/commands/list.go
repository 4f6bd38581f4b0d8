package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dyluth/mcobj/internal/printer"
	"github.com/dyluth/mcobj/internal/statefmt"
	"github.com/dyluth/mcobj/pkg/catalog"
)

var listKind string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded definitions",
	Long: `List the ids of every loaded definition of one kind.

Kinds: block, item, entity, enchantment.

Examples:
  mcobj list
  mcobj list --kind item -o jsonl`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listKind, "kind", "k", string(catalog.KindBlock), "Definition kind (block, item, entity or enchantment)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	kind, err := catalog.ParseKind(listKind)
	if err != nil {
		return printer.Error(
			"invalid kind",
			fmt.Sprintf("Unknown kind: %s", listKind),
			[]string{"Valid kinds: block, item, entity, enchantment"},
		)
	}

	s, err := openSession()
	if err != nil {
		return err
	}

	ids, err := s.factory.IDs(kind)
	if err != nil {
		return err
	}
	return statefmt.WriteIDs(cmd.OutOrStdout(), s.format, string(kind), ids)
}
