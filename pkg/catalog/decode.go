package catalog

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dyluth/mcobj/pkg/block"
)

// scalar is a property value written as a string, boolean or number.
type scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *scalar) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", n.Line)
	}
	*s = scalar(n.Value)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *scalar) UnmarshalTOML(v any) error {
	switch v.(type) {
	case map[string]any, []any, []map[string]any:
		return fmt.Errorf("expected a scalar value, got %T", v)
	}
	*s = scalar(fmt.Sprint(v))
	return nil
}

type propertyData struct {
	Default scalar   `yaml:"default" toml:"default"`
	Allowed []scalar `yaml:"allowed" toml:"allowed"`
}

type blockData struct {
	Properties     map[string]propertyData `yaml:"properties" toml:"properties"`
	PistonBehavior string                  `yaml:"piston_behavior" toml:"piston_behavior"`
	InventorySlots *int                    `yaml:"inventory_slots" toml:"inventory_slots"`

	// Property names in the order the file lists them.
	order []string
}

// UnmarshalYAML implements yaml.Unmarshaler, recording the property order.
func (d *blockData) UnmarshalYAML(n *yaml.Node) error {
	type plain blockData
	if err := n.Decode((*plain)(d)); err != nil {
		return err
	}
	d.order = nil
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value != "properties" {
			continue
		}
		props := n.Content[i+1]
		for j := 0; j+1 < len(props.Content); j += 2 {
			d.order = append(d.order, props.Content[j].Value)
		}
	}
	return nil
}

func (d *blockData) setKeyOrder(order []string) { d.order = order }

// keyOrdered is implemented by definitions that keep the file order of their
// nested keys. TOML decoding loses it, so it is restored from the metadata.
type keyOrdered interface {
	setKeyOrder(order []string)
}

// propertyNames lists the properties in file order. Names the order does not
// cover follow, sorted.
func (d blockData) propertyNames() []string {
	names := make([]string, 0, len(d.Properties))
	seen := make(map[string]bool, len(d.Properties))
	for _, name := range d.order {
		if _, ok := d.Properties[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	rest := make([]string, 0, len(d.Properties)-len(names))
	for name := range d.Properties {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// traits builds the block definition with properties in file order.
func (d blockData) traits(id string) (*block.Traits, error) {
	names := d.propertyNames()

	props := make([]block.Property, 0, len(names))
	for _, name := range names {
		pd := d.Properties[name]
		allowed := make([]string, len(pd.Allowed))
		for i, v := range pd.Allowed {
			allowed[i] = string(v)
		}
		p, err := block.NewProperty(name, string(pd.Default), allowed)
		if err != nil {
			return nil, fmt.Errorf("block %s: %w", id, err)
		}
		props = append(props, p)
	}

	pb, err := block.ParsePistonBehavior(d.PistonBehavior)
	if err != nil {
		return nil, fmt.Errorf("block %s: %w", id, err)
	}
	opts := []block.TraitsOption{block.WithPistonBehavior(pb)}
	if d.InventorySlots != nil {
		opts = append(opts, block.WithContainer(*d.InventorySlots))
	}
	return block.NewTraits(id, props, opts...)
}

// decodeFile reads a definition file into namespace -> id -> data. The format
// is picked from the file extension.
func decodeFile[T any](path string) (map[string]map[string]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := make(map[string]map[string]T)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.Decode(string(data), &out)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			log.Printf("[WARN] Ignoring %d unknown keys in %s (first: %s)", len(undecoded), path, undecoded[0])
		}
		restoreKeyOrder(out, md)
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported definition file format: %s", path)
	}
	return out, nil
}

// restoreKeyOrder hands every definition the file order of the keys under its
// "properties" table, taken from namespace.id.properties.<name> key paths.
func restoreKeyOrder[T any](out map[string]map[string]T, md toml.MetaData) {
	type defKey struct{ namespace, id string }
	type propKey struct {
		defKey
		name string
	}
	orders := make(map[defKey][]string)
	seen := make(map[propKey]bool)
	for _, key := range md.Keys() {
		if len(key) < 4 || key[2] != "properties" {
			continue
		}
		k := defKey{key[0], key[1]}
		if seen[propKey{k, key[3]}] {
			continue
		}
		seen[propKey{k, key[3]}] = true
		orders[k] = append(orders[k], key[3])
	}

	for namespace, defs := range out {
		for id, def := range defs {
			o, ok := any(&def).(keyOrdered)
			if !ok {
				return
			}
			o.setKeyOrder(orders[defKey{namespace, id}])
			defs[id] = def
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
