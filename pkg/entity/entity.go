// Package entity models entity definitions and entity instances.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultCategory is the spawn category used when a definition omits one.
const DefaultCategory = "MISC"

// ErrInvalidDefinition reports a malformed entity definition.
var ErrInvalidDefinition = errors.New("invalid entity definition")

// Traits is the definition of an entity and its common NBT tags.
type Traits struct {
	ID         string  `yaml:"-" toml:"-" json:"id"`
	Category   string  `yaml:"category" toml:"category" json:"category"`
	Width      float64 `yaml:"width" toml:"width" json:"width"`
	Height     float64 `yaml:"height" toml:"height" json:"height"`
	FireImmune bool    `yaml:"fire_immune" toml:"fire_immune" json:"fire_immune"`
}

// Validate checks the definition and defaults the category.
func (t *Traits) Validate() error {
	if !strings.Contains(t.ID, ":") {
		return fmt.Errorf("%w: id %q must be of the form namespace:name", ErrInvalidDefinition, t.ID)
	}
	if t.Category == "" {
		t.Category = DefaultCategory
	}
	t.Category = strings.ToUpper(t.Category)
	if t.Width < 0 || t.Height < 0 {
		return fmt.Errorf("%w: entity %s has negative size %gx%g", ErrInvalidDefinition, t.ID, t.Width, t.Height)
	}
	return nil
}

// Entity is a single entity of a registered type.
type Entity struct {
	traits *Traits
}

// New creates an entity from its definition.
func New(traits *Traits) *Entity {
	return &Entity{traits: traits}
}

// ID returns the entity type id.
func (e *Entity) ID() string { return e.traits.ID }

// Traits returns the shared entity definition.
func (e *Entity) Traits() *Traits { return e.traits }
