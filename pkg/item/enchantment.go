package item

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned when an enchantment level is outside [1, max_level].
var ErrInvalidLevel = errors.New("invalid enchantment level")

// EnchantmentTraits is the definition of an enchantment.
type EnchantmentTraits struct {
	ID       string `yaml:"-" toml:"-" json:"id"`
	MaxLevel int    `yaml:"level" toml:"level" json:"level"`
	Category string `yaml:"category" toml:"category" json:"category,omitempty"`
	Rarity   string `yaml:"rarity" toml:"rarity" json:"rarity,omitempty"`
	Curse    bool   `yaml:"curse" toml:"curse" json:"curse"`
}

// Validate checks the definition and defaults the max level to 1.
func (t *EnchantmentTraits) Validate() error {
	if !strings.Contains(t.ID, ":") {
		return fmt.Errorf("%w: id %q must be of the form namespace:name", ErrInvalidDefinition, t.ID)
	}
	if t.MaxLevel == 0 {
		t.MaxLevel = 1
	}
	if t.MaxLevel < 1 {
		return fmt.Errorf("%w: enchantment %s level must be >= 1, got %d", ErrInvalidDefinition, t.ID, t.MaxLevel)
	}
	return nil
}

// Enchantment is an applied enchantment at a specific level.
type Enchantment struct {
	traits *EnchantmentTraits
	level  int
}

// NewEnchantment creates an enchantment at the given level.
func NewEnchantment(traits *EnchantmentTraits, level int) (*Enchantment, error) {
	e := &Enchantment{traits: traits}
	if err := e.SetLevel(level); err != nil {
		return nil, err
	}
	return e, nil
}

// ID returns the enchantment id.
func (e *Enchantment) ID() string { return e.traits.ID }

// Traits returns the shared enchantment definition.
func (e *Enchantment) Traits() *EnchantmentTraits { return e.traits }

// Level returns the current level.
func (e *Enchantment) Level() int { return e.level }

// SetLevel changes the level. Level must be in [1, max_level].
func (e *Enchantment) SetLevel(level int) error {
	if level < 1 || level > e.traits.MaxLevel {
		return fmt.Errorf("%w: level %d for %s (max %d)", ErrInvalidLevel, level, e.traits.ID, e.traits.MaxLevel)
	}
	e.level = level
	return nil
}

// Clone returns a copy sharing the definition.
func (e *Enchantment) Clone() *Enchantment {
	return &Enchantment{traits: e.traits, level: e.level}
}
