package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraits_Validate(t *testing.T) {
	t.Run("defaults category", func(t *testing.T) {
		traits := &Traits{ID: "test:pig", Width: 0.9, Height: 0.9}
		require.NoError(t, traits.Validate())
		assert.Equal(t, DefaultCategory, traits.Category)
	})

	t.Run("upper-cases category", func(t *testing.T) {
		traits := &Traits{ID: "test:blaze", Category: "monster"}
		require.NoError(t, traits.Validate())
		assert.Equal(t, "MONSTER", traits.Category)
	})

	t.Run("rejects bad definitions", func(t *testing.T) {
		assert.ErrorIs(t, (&Traits{ID: "blaze"}).Validate(), ErrInvalidDefinition)
		assert.ErrorIs(t, (&Traits{ID: "test:blaze", Height: -1}).Validate(), ErrInvalidDefinition)
	})
}

func TestNew(t *testing.T) {
	traits := &Traits{ID: "test:blaze", Category: "MONSTER", Width: 0.6, Height: 1.8, FireImmune: true}
	require.NoError(t, traits.Validate())

	e := New(traits)
	assert.Equal(t, "test:blaze", e.ID())
	assert.Same(t, traits, e.Traits())
	assert.True(t, e.Traits().FireImmune)
}
