package block

import (
	"fmt"
	"maps"
	"sort"

	"github.com/dyluth/mcobj/pkg/inventory"
)

// Block is a concrete block: a reference to its shared Traits plus the current
// value of every property. Every value is always one of the property's allowed
// values, including after Reflect and Rotate.
//
// A Block is owned by a single caller at a time and is not safe for concurrent
// mutation.
type Block struct {
	traits    *Traits
	state     map[string]string
	inventory *inventory.Inventory
}

// New creates a Block with default values, then applies initial overrides with
// the same validation as SetState. Container blocks get an empty inventory.
func New(traits *Traits, initial map[string]string) (*Block, error) {
	b := &Block{
		traits: traits,
		state:  make(map[string]string, len(traits.props)),
	}
	for _, p := range traits.props {
		b.state[p.name] = p.def
	}
	if slots, ok := traits.ContainerSlots(); ok {
		b.inventory = inventory.New(slots)
	}
	if err := b.SetStates(initial); err != nil {
		return nil, err
	}
	return b, nil
}

// ID returns the namespaced id of the block's type.
func (b *Block) ID() string { return b.traits.id }

// Traits returns the shared block definition.
func (b *Block) Traits() *Traits { return b.traits }

// Inventory returns the block's container, or nil for non-container blocks.
func (b *Block) Inventory() *inventory.Inventory { return b.inventory }

// SetState sets a property to value. Both are case-insensitive.
// Returns an error wrapping ErrUnknownProperty or ErrInvalidValue; on error the
// state is unchanged.
func (b *Block) SetState(name, value string) error {
	name, value = normalize(name), normalize(value)
	p, ok := b.traits.Property(name)
	if !ok {
		return fmt.Errorf("%w: '%s' is not a valid property for block %s. Valid properties are: %v",
			ErrUnknownProperty, name, b.traits.id, b.traits.PropertyNames())
	}
	if !p.Allows(value) {
		return fmt.Errorf("%w: '%s' is not a valid state for %s.%s. Valid values are: %v",
			ErrInvalidValue, value, b.traits.id, name, p.allowed)
	}
	b.state[name] = value
	return nil
}

// SetStates applies several SetState calls in sorted name order and stops at the
// first failure. Values written before the failure stay committed.
func (b *Block) SetStates(values map[string]string) error {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := b.SetState(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// State returns the value of a property and whether the block has it.
func (b *Block) State(name string) (string, bool) {
	v, ok := b.state[normalize(name)]
	return v, ok
}

// StateOr returns the value of a property, or fallback if the block has no such
// property.
func (b *Block) StateOr(name, fallback string) string {
	if v, ok := b.State(name); ok {
		return v
	}
	return fallback
}

// States returns a copy of the full property map.
func (b *Block) States() map[string]string {
	return maps.Clone(b.state)
}

// HasProperties reports whether the block type defines any property.
func (b *Block) HasProperties() bool {
	return len(b.state) > 0
}

// Copy returns an independent Block sharing the same Traits. The inventory, if
// any, is deep-copied.
func (b *Block) Copy() *Block {
	c := &Block{
		traits: b.traits,
		state:  maps.Clone(b.state),
	}
	if b.inventory != nil {
		c.inventory = b.inventory.Clone()
	}
	return c
}

// Equal reports whether two blocks have the same type and state. Inventories are
// not compared.
func (b *Block) Equal(other *Block) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.traits.id == other.traits.id && maps.Equal(b.state, other.state)
}

// trySet commits value to name only if the block has the property and allows
// the value. It reports whether the value was committed. Transformations write
// exclusively through here: a derived value that does not fit this block
// variant is skipped, and the property keeps its previous value.
func (b *Block) trySet(name, value string) bool {
	p, ok := b.traits.Property(name)
	if !ok || !p.Allows(value) {
		return false
	}
	b.state[name] = value
	return true
}
