package catalog

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/dyluth/mcobj/pkg/block"
	"github.com/dyluth/mcobj/pkg/entity"
	"github.com/dyluth/mcobj/pkg/item"
	"github.com/dyluth/mcobj/pkg/registry"
)

// Factory holds the registered definitions of every kind and creates blocks,
// item stacks, entities and enchantments from them. It is safe for concurrent
// use.
type Factory struct {
	Blocks       *registry.Registry[*block.Traits]
	Items        *registry.Registry[*item.Traits]
	Entities     *registry.Registry[*entity.Traits]
	Enchantments *registry.Registry[*item.EnchantmentTraits]

	mu       sync.RWMutex
	mods     []ModInfo
	imported map[string]bool
}

// NewFactory creates a factory and imports mods in order.
func NewFactory(mods ...ModInfo) (*Factory, error) {
	f := &Factory{
		Blocks:       registry.New[*block.Traits](string(KindBlock)),
		Items:        registry.New[*item.Traits](string(KindItem)),
		Entities:     registry.New[*entity.Traits](string(KindEntity)),
		Enchantments: registry.New[*item.EnchantmentTraits](string(KindEnchantment)),
		imported:     make(map[string]bool),
	}
	for _, mod := range mods {
		if err := f.ImportMod(mod); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// Mods returns the mods that contributed at least one definition file.
func (f *Factory) Mods() []ModInfo {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]ModInfo, len(f.mods))
	copy(out, f.mods)
	return out
}

// ImportMod loads the definition file of every kind for mod. Kinds without a
// file are skipped with a warning. The mod is recorded when at least one file
// was imported.
func (f *Factory) ImportMod(mod ModInfo) error {
	if mod.Namespace == "" {
		return fmt.Errorf("mod namespace is required")
	}
	imported := false
	for _, kind := range Kinds {
		path, ok := findFile(mod.FilePaths(kind))
		if !ok {
			log.Printf("[WARN] Skipping import. No %s file for %s", kind, mod)
			continue
		}
		loaded, err := f.ImportFile(kind, path)
		if err != nil {
			return fmt.Errorf("failed to import mod %s: %w", mod.VersionedName(), err)
		}
		imported = imported || loaded
	}
	if imported {
		f.mu.Lock()
		f.mods = append(f.mods, mod)
		f.mu.Unlock()
	}
	return nil
}

func findFile(candidates []string) (string, bool) {
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

// ImportFile registers every definition in the file at path. It returns false
// without error when the file does not exist or was already imported.
func (f *Factory) ImportFile(kind Kind, path string) (bool, error) {
	if err := kind.Validate(); err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		log.Printf("[WARN] Skipping import. File not found: %s", path)
		return false, nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.imported[path] {
		log.Printf("[WARN] Skipping import. Already loaded file: %s", path)
		return false, nil
	}

	var err error
	switch kind {
	case KindBlock:
		err = loadFile(path, f.Blocks, blockData.traits)
	case KindItem:
		err = loadFile(path, f.Items, func(d item.Traits, id string) (*item.Traits, error) {
			d.ID = id
			return &d, d.Validate()
		})
	case KindEntity:
		err = loadFile(path, f.Entities, func(d entity.Traits, id string) (*entity.Traits, error) {
			d.ID = id
			return &d, d.Validate()
		})
	case KindEnchantment:
		err = loadFile(path, f.Enchantments, func(d item.EnchantmentTraits, id string) (*item.EnchantmentTraits, error) {
			d.ID = id
			return &d, d.Validate()
		})
	}
	if err != nil {
		return false, err
	}
	f.imported[path] = true
	return true, nil
}

// loadFile decodes path and registers one definition per entry. Entries
// registered before a failing one stay registered.
func loadFile[D, T any](path string, reg *registry.Registry[T], build func(D, string) (T, error)) error {
	all, err := decodeFile[D](path)
	if err != nil {
		return err
	}
	for _, namespace := range sortedKeys(all) {
		entries := all[namespace]
		for _, rawID := range sortedKeys(entries) {
			id := registry.QualifyID(rawID, namespace)
			def, err := build(entries[rawID], id)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if err := reg.Register(id, def); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		}
	}
	return nil
}

// Block creates a block with its default state overridden by state.
// Unqualified ids are looked up in the vanilla namespace.
func (f *Factory) Block(id string, state map[string]string) (*block.Block, error) {
	traits, err := f.Blocks.Lookup(id)
	if err != nil {
		return nil, err
	}
	return block.New(traits, state)
}

// Item creates an item stack.
func (f *Factory) Item(id string, count, damage int) (*item.Stack, error) {
	traits, err := f.Items.Lookup(id)
	if err != nil {
		return nil, err
	}
	return item.NewStack(traits, count, damage)
}

// Entity creates an entity.
func (f *Factory) Entity(id string) (*entity.Entity, error) {
	traits, err := f.Entities.Lookup(id)
	if err != nil {
		return nil, err
	}
	return entity.New(traits), nil
}

// Enchantment creates an enchantment at level.
func (f *Factory) Enchantment(id string, level int) (*item.Enchantment, error) {
	traits, err := f.Enchantments.Lookup(id)
	if err != nil {
		return nil, err
	}
	return item.NewEnchantment(traits, level)
}

// IDs returns the sorted registered ids of kind.
func (f *Factory) IDs(kind Kind) ([]string, error) {
	switch kind {
	case KindBlock:
		return f.Blocks.IDs(), nil
	case KindItem:
		return f.Items.IDs(), nil
	case KindEntity:
		return f.Entities.IDs(), nil
	case KindEnchantment:
		return f.Enchantments.IDs(), nil
	default:
		return nil, kind.Validate()
	}
}
