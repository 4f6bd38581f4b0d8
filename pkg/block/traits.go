package block

import (
	"fmt"
	"strings"
)

// Traits is the definition of a block type: its namespaced id, the ordered list
// of state properties and block-level metadata. Traits are created once at load
// time and shared read-only by every Block of that type.
type Traits struct {
	id             string
	props          []Property
	index          map[string]int
	pistonBehavior PistonBehavior
	containerSlots int
	hasContainer   bool
}

// TraitsOption configures optional block metadata.
type TraitsOption func(*Traits) error

// WithPistonBehavior sets how pistons interact with the block (default NORMAL).
func WithPistonBehavior(pb PistonBehavior) TraitsOption {
	return func(t *Traits) error {
		if err := pb.Validate(); err != nil {
			return err
		}
		t.pistonBehavior = pb
		return nil
	}
}

// WithContainer gives the block an inventory of the given number of slots.
func WithContainer(slots int) TraitsOption {
	return func(t *Traits) error {
		if slots < 0 {
			return fmt.Errorf("%w: container slots must be >= 0, got %d", ErrInvalidTraits, slots)
		}
		t.containerSlots = slots
		t.hasContainer = true
		return nil
	}
}

// NewTraits creates a block definition. The id must be namespaced
// ("namespace:name") and property names must be unique.
func NewTraits(id string, props []Property, opts ...TraitsOption) (*Traits, error) {
	id = strings.TrimSpace(id)
	ns, name, ok := strings.Cut(id, ":")
	if !ok || ns == "" || name == "" {
		return nil, fmt.Errorf("%w: id %q must be of the form namespace:name", ErrInvalidTraits, id)
	}

	t := &Traits{
		id:             id,
		props:          make([]Property, 0, len(props)),
		index:          make(map[string]int, len(props)),
		pistonBehavior: PistonNormal,
	}
	for _, p := range props {
		if p.name == "" {
			return nil, fmt.Errorf("%w: block %s has a zero-value property", ErrInvalidTraits, id)
		}
		if _, dup := t.index[p.name]; dup {
			return nil, fmt.Errorf("%w: block %s defines property '%s' twice", ErrInvalidTraits, id, p.name)
		}
		t.index[p.name] = len(t.props)
		t.props = append(t.props, p)
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("block %s: %w", id, err)
		}
	}
	return t, nil
}

// ID returns the namespaced block id, e.g. "minecraft:oak_button".
func (t *Traits) ID() string { return t.id }

// Namespace returns the part of the id before the colon.
func (t *Traits) Namespace() string {
	ns, _, _ := strings.Cut(t.id, ":")
	return ns
}

// Properties returns the property definitions in definition order.
func (t *Traits) Properties() []Property {
	out := make([]Property, len(t.props))
	copy(out, t.props)
	return out
}

// Property looks up a property definition by (case-insensitive) name.
func (t *Traits) Property(name string) (Property, bool) {
	i, ok := t.index[normalize(name)]
	if !ok {
		return Property{}, false
	}
	return t.props[i], true
}

// PropertyNames returns the property names in definition order.
func (t *Traits) PropertyNames() []string {
	names := make([]string, len(t.props))
	for i, p := range t.props {
		names[i] = p.name
	}
	return names
}

// PistonBehavior returns how pistons interact with the block.
func (t *Traits) PistonBehavior() PistonBehavior { return t.pistonBehavior }

// ContainerSlots returns the inventory capacity and whether the block is a container.
func (t *Traits) ContainerSlots() (int, bool) { return t.containerSlots, t.hasContainer }
