package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeCellToggle(t *testing.T) {
	c := NewModeCell(false, false)
	assert.False(t, c.Enabled())
	assert.False(t, c.Forced())

	c.Set(true)
	assert.True(t, c.Enabled())

	c.Set(false)
	assert.False(t, c.Enabled())
}

func TestModeCellForced(t *testing.T) {
	c := NewModeCell(false, true)
	assert.True(t, c.Enabled(), "force implies enabled regardless of the initial value")
	assert.True(t, c.Forced())

	// Toggles are ignored while forced
	c.Set(false)
	assert.True(t, c.Enabled())
}

func TestBackendString(t *testing.T) {
	assert.Equal(t, "relational", Relational.String())
	assert.Equal(t, "document", DocumentStore.String())
}
