package block

import (
	"fmt"
	"slices"
)

// Property describes one block state property: its name, default value and the
// closed set of values it may take. A Property is immutable once created.
type Property struct {
	name     string
	def      string
	allowed  []string
	allowSet map[string]struct{}
}

// NewProperty builds a Property. Name, default and allowed values are lowercased;
// repeated allowed values are collapsed. The allowed set must be non-empty and
// contain the default.
func NewProperty(name, defaultValue string, allowed []string) (Property, error) {
	name = normalize(name)
	if name == "" {
		return Property{}, fmt.Errorf("%w: empty name", ErrInvalidProperty)
	}
	if len(allowed) == 0 {
		return Property{}, fmt.Errorf("%w: property '%s' has no allowed values", ErrInvalidProperty, name)
	}

	p := Property{
		name:     name,
		def:      normalize(defaultValue),
		allowed:  make([]string, 0, len(allowed)),
		allowSet: make(map[string]struct{}, len(allowed)),
	}
	for _, v := range allowed {
		v = normalize(v)
		if _, seen := p.allowSet[v]; seen {
			continue
		}
		p.allowSet[v] = struct{}{}
		p.allowed = append(p.allowed, v)
	}

	if !p.Allows(p.def) {
		return Property{}, fmt.Errorf("%w: default '%s' of property '%s' is not one of %v",
			ErrInvalidProperty, p.def, name, p.allowed)
	}
	return p, nil
}

// MustProperty is like NewProperty but panics on error. Intended for
// package-level definitions and tests.
func MustProperty(name, defaultValue string, allowed ...string) Property {
	p, err := NewProperty(name, defaultValue, allowed)
	if err != nil {
		panic(err)
	}
	return p
}

// BoolProperty is shorthand for a "true"/"false" property.
func BoolProperty(name string, defaultValue bool) Property {
	return MustProperty(name, fmt.Sprint(defaultValue), "true", "false")
}

// Name returns the property name.
func (p Property) Name() string { return p.name }

// Default returns the default value.
func (p Property) Default() string { return p.def }

// Allowed returns a copy of the allowed values in definition order.
func (p Property) Allowed() []string { return slices.Clone(p.allowed) }

// Allows reports whether value (already normalized) is an allowed value.
func (p Property) Allows(value string) bool {
	_, ok := p.allowSet[value]
	return ok
}
