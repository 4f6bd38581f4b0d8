package statefmt

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dyluth/mcobj/pkg/block"
	"github.com/dyluth/mcobj/pkg/store"
)

// OutputFormat selects how CLI results are rendered.
type OutputFormat string

const (
	// OutputFormatDefault renders human-readable tables.
	OutputFormatDefault OutputFormat = "default"
	// OutputFormatJSON renders a single pretty-printed JSON document.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatJSONL renders one compact JSON object per line.
	OutputFormatJSONL OutputFormat = "jsonl"
)

// OutputFormats lists every supported format, in display order.
var OutputFormats = []OutputFormat{OutputFormatDefault, OutputFormatJSON, OutputFormatJSONL}

// ParseOutputFormat validates s as an output format. An empty string selects
// the default table output.
func ParseOutputFormat(s string) (OutputFormat, error) {
	if s == "" {
		return OutputFormatDefault, nil
	}
	f := OutputFormat(strings.ToLower(strings.TrimSpace(s)))
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate checks that the format is one of OutputFormats.
func (f OutputFormat) Validate() error {
	for _, known := range OutputFormats {
		if f == known {
			return nil
		}
	}
	return fmt.Errorf("invalid output format %q (valid: default, json, jsonl)", string(f))
}

// BlockView is the serialised form of a block used by the JSON outputs.
type BlockView struct {
	ID             string            `json:"id"`
	State          map[string]string `json:"state"`
	PistonBehavior string            `json:"piston_behavior"`
	InventorySlots *int              `json:"inventory_slots,omitempty"`
}

// NewBlockView snapshots b.
func NewBlockView(b *block.Block) BlockView {
	v := BlockView{
		ID:             b.ID(),
		State:          b.States(),
		PistonBehavior: string(b.Traits().PistonBehavior()),
	}
	if slots, ok := b.Traits().ContainerSlots(); ok {
		v.InventorySlots = &slots
	}
	return v
}

// TransformView pairs a block's state before and after a rotation or
// reflection.
type TransformView struct {
	Operation string            `json:"operation"`
	Before    map[string]string `json:"before"`
	After     BlockView         `json:"after"`
}

// FormatBlockTable writes one block as a PROPERTY / VALUE / ALLOWED table.
func FormatBlockTable(w io.Writer, b *block.Block) error {
	fmt.Fprintf(w, "Block %s (piston: %s", b.ID(), b.Traits().PistonBehavior())
	if slots, ok := b.Traits().ContainerSlots(); ok {
		fmt.Fprintf(w, ", slots: %d", slots)
	}
	fmt.Fprintf(w, ")\n\n")

	if !b.HasProperties() {
		fmt.Fprintln(w, "No properties")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("PROPERTY", "VALUE", "ALLOWED")
	for _, p := range b.Traits().Properties() {
		value, _ := b.State(p.Name())
		if err := table.Append([]string{p.Name(), value, strings.Join(p.Allowed(), ",")}); err != nil {
			return fmt.Errorf("failed to build state table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render state table: %w", err)
	}
	return nil
}

// FormatTransformTable writes a PROPERTY / BEFORE / AFTER table. Changed
// properties are marked with "*".
// Returns the number of properties that changed.
func FormatTransformTable(w io.Writer, operation string, before map[string]string, after *block.Block) (int, error) {
	fmt.Fprintf(w, "%s: %s\n\n", after.ID(), operation)

	if !after.HasProperties() {
		fmt.Fprintln(w, "No properties")
		return 0, nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("", "PROPERTY", "BEFORE", "AFTER")
	changed := 0
	for _, name := range after.Traits().PropertyNames() {
		now, _ := after.State(name)
		mark := ""
		if before[name] != now {
			mark = "*"
			changed++
		}
		if err := table.Append([]string{mark, name, before[name], now}); err != nil {
			return changed, fmt.Errorf("failed to build transform table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return changed, fmt.Errorf("failed to render transform table: %w", err)
	}

	fmt.Fprintf(w, "\n%d %s changed\n", changed, plural(changed, "property", "properties"))
	return changed, nil
}

// FormatRecordsTable writes saved records as a table with columns ID, BLOCK,
// STATE and AGE.
// Returns the number of records formatted.
func FormatRecordsTable(w io.Writer, records []*store.Record, world string) (int, error) {
	if len(records) == 0 {
		fmt.Fprintf(w, "No blocks saved in world '%s'\n", world)
		return 0, nil
	}

	fmt.Fprintf(w, "Blocks saved in world '%s':\n\n", world)

	table := tablewriter.NewWriter(w)
	table.Header("ID", "BLOCK", "STATE", "AGE")
	for _, r := range records {
		row := []string{formatID(r.ID), r.BlockID, formatState(r.State), formatTimestamp(r.CreatedAtMs)}
		if err := table.Append(row); err != nil {
			return 0, fmt.Errorf("failed to build record table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return 0, fmt.Errorf("failed to render record table: %w", err)
	}

	fmt.Fprintf(w, "\n%d %s found\n", len(records), plural(len(records), "block", "blocks"))
	return len(records), nil
}

// FormatIDs writes registered ids one per line under a heading.
// Returns the number of ids formatted.
func FormatIDs(w io.Writer, kind string, ids []string) int {
	if len(ids) == 0 {
		fmt.Fprintf(w, "No %s definitions loaded\n", kind)
		return 0
	}
	for _, id := range ids {
		fmt.Fprintln(w, id)
	}
	fmt.Fprintf(w, "\n%d %s %s\n", len(ids), kind, plural(len(ids), "definition", "definitions"))
	return len(ids)
}

// FormatJSON writes v as pretty-printed JSON followed by a newline.
func FormatJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

// FormatJSONL writes each element of items as a single line of JSON.
func FormatJSONL[T any](w io.Writer, items []T) error {
	for _, it := range items {
		data, err := json.Marshal(it)
		if err != nil {
			return fmt.Errorf("failed to marshal to JSON: %w", err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return fmt.Errorf("failed to write JSONL output: %w", err)
		}
	}
	return nil
}

// WriteBlock renders b in the requested format.
func WriteBlock(w io.Writer, format OutputFormat, b *block.Block) error {
	switch format {
	case OutputFormatJSON:
		return FormatJSON(w, NewBlockView(b))
	case OutputFormatJSONL:
		return FormatJSONL(w, []BlockView{NewBlockView(b)})
	default:
		return FormatBlockTable(w, b)
	}
}

// WriteTransform renders the result of a rotation or reflection.
func WriteTransform(w io.Writer, format OutputFormat, operation string, before map[string]string, after *block.Block) error {
	view := TransformView{Operation: operation, Before: before, After: NewBlockView(after)}
	switch format {
	case OutputFormatJSON:
		return FormatJSON(w, view)
	case OutputFormatJSONL:
		return FormatJSONL(w, []TransformView{view})
	default:
		_, err := FormatTransformTable(w, operation, before, after)
		return err
	}
}

// WriteRecords renders saved records in the requested format.
func WriteRecords(w io.Writer, format OutputFormat, records []*store.Record, world string) error {
	switch format {
	case OutputFormatJSON:
		if records == nil {
			records = []*store.Record{}
		}
		return FormatJSON(w, records)
	case OutputFormatJSONL:
		return FormatJSONL(w, records)
	default:
		_, err := FormatRecordsTable(w, records, world)
		return err
	}
}

// WriteIDs renders registered ids in the requested format.
func WriteIDs(w io.Writer, format OutputFormat, kind string, ids []string) error {
	switch format {
	case OutputFormatJSON:
		if ids == nil {
			ids = []string{}
		}
		return FormatJSON(w, ids)
	case OutputFormatJSONL:
		return FormatJSONL(w, ids)
	default:
		FormatIDs(w, kind, ids)
		return nil
	}
}

// formatID truncates record ids to their first 8 characters.
func formatID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatState renders a state map as sorted name=value pairs, or "-".
func formatState(state map[string]string) string {
	if len(state) == 0 {
		return "-"
	}
	names := make([]string, 0, len(state))
	for name := range state {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = name + "=" + state[name]
	}
	return strings.Join(parts, ",")
}

// formatTimestamp formats Unix timestamp in milliseconds as relative time,
// like "2m ago".
func formatTimestamp(timestampMs int64) string {
	if timestampMs == 0 {
		return "-"
	}

	diff := time.Since(time.UnixMilli(timestampMs))

	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds ago", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// WriteEvent renders a single block event as one line. JSON and JSONL both
// produce compact JSON so a stream stays line-delimited.
func WriteEvent(w io.Writer, format OutputFormat, ev *store.Event) error {
	if format != OutputFormatDefault {
		return FormatJSONL(w, []*store.Event{ev})
	}
	if ev.Record == nil {
		_, err := fmt.Fprintf(w, "%-7s -\n", ev.Type)
		return err
	}
	line := fmt.Sprintf("%-7s %s", ev.Type, formatID(ev.Record.ID))
	if ev.Record.BlockID != "" {
		line += " " + ev.Record.BlockID + " " + formatState(ev.Record.State)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
