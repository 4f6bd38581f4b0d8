// Package item models item definitions, item stacks and enchantments.
//
// Definitions (Traits, EnchantmentTraits) are immutable once registered and are
// shared by every stack or enchantment created from them. Stacks enforce their
// count and damage bounds on every write.
package item

import (
	"errors"
	"fmt"
	"strings"
)

// Default values applied when a definition omits them.
const (
	DefaultMaxStackSize = 64
	DefaultMaxDamage    = 0
)

var (
	// ErrInvalidCount is returned when a stack count is outside [1, max_stack_size].
	ErrInvalidCount = errors.New("invalid item count")

	// ErrInvalidDamage is returned when damage is outside [0, max_damage].
	ErrInvalidDamage = errors.New("invalid item damage")

	// ErrInvalidDefinition reports a malformed item or enchantment definition.
	ErrInvalidDefinition = errors.New("invalid item definition")
)

// Traits is the definition of an item and its common NBT limits.
type Traits struct {
	ID            string `yaml:"-" toml:"-" json:"id"`
	MaxStackSize  int    `yaml:"max_stack_size" toml:"max_stack_size" json:"max_stack_size"`
	MaxDamage     int    `yaml:"max_damage" toml:"max_damage" json:"max_damage"`
	FireResistant bool   `yaml:"is_fire_resistant" toml:"is_fire_resistant" json:"is_fire_resistant"`
}

// Validate checks the definition and fills in the default stack size.
func (t *Traits) Validate() error {
	if !strings.Contains(t.ID, ":") {
		return fmt.Errorf("%w: id %q must be of the form namespace:name", ErrInvalidDefinition, t.ID)
	}
	if t.MaxStackSize == 0 {
		t.MaxStackSize = DefaultMaxStackSize
	}
	if t.MaxStackSize < 1 {
		return fmt.Errorf("%w: item %s max_stack_size must be >= 1, got %d", ErrInvalidDefinition, t.ID, t.MaxStackSize)
	}
	if t.MaxDamage < 0 {
		return fmt.Errorf("%w: item %s max_damage must be >= 0, got %d", ErrInvalidDefinition, t.ID, t.MaxDamage)
	}
	return nil
}

// Stack is a number of identical items occupying one inventory slot.
type Stack struct {
	traits       *Traits
	count        int
	damage       int
	Enchantments []*Enchantment
}

// NewStack creates a stack of count items with the given damage.
func NewStack(traits *Traits, count, damage int) (*Stack, error) {
	s := &Stack{traits: traits}
	if err := s.SetCount(count); err != nil {
		return nil, err
	}
	if err := s.SetDamage(damage); err != nil {
		return nil, err
	}
	return s, nil
}

// ID returns the item id of the stack.
func (s *Stack) ID() string { return s.traits.ID }

// Traits returns the shared item definition.
func (s *Stack) Traits() *Traits { return s.traits }

// Count returns the number of items in the stack.
func (s *Stack) Count() int { return s.count }

// SetCount changes the number of items. Count must be in [1, max_stack_size].
func (s *Stack) SetCount(n int) error {
	if n < 1 || n > s.traits.MaxStackSize {
		return fmt.Errorf("%w: count %d for %s (max %d)", ErrInvalidCount, n, s.traits.ID, s.traits.MaxStackSize)
	}
	s.count = n
	return nil
}

// Damage returns the accumulated damage.
func (s *Stack) Damage() int { return s.damage }

// SetDamage changes the damage. Damage must be in [0, max_damage].
func (s *Stack) SetDamage(d int) error {
	if d < 0 || d > s.traits.MaxDamage {
		return fmt.Errorf("%w: damage %d for %s (max %d)", ErrInvalidDamage, d, s.traits.ID, s.traits.MaxDamage)
	}
	s.damage = d
	return nil
}

// Equal reports whether two stacks hold the same item with the same count and
// damage. Enchantments are not compared. A nil stack only equals nil.
func (s *Stack) Equal(other *Stack) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.traits.ID == other.traits.ID && s.count == other.count && s.damage == other.damage
}

// Clone returns an independent copy sharing the item definition.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return nil
	}
	c := &Stack{traits: s.traits, count: s.count, damage: s.damage}
	for _, e := range s.Enchantments {
		c.Enchantments = append(c.Enchantments, e.Clone())
	}
	return c
}
