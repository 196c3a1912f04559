package signup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeStore(t *testing.T) {
	s := NewCodeStore()

	assert.False(t, s.Verify("12345", "483920"))

	s.Put("12345", "483920")
	assert.True(t, s.Verify("12345", "483920"))
	assert.False(t, s.Verify("12345", "000000"))
	assert.False(t, s.Verify("67890", "483920"))

	// Verify doesn't consume the entry
	assert.True(t, s.Verify("12345", "483920"))

	// A new code replaces the old one
	s.Put("12345", "117744")
	assert.False(t, s.Verify("12345", "483920"))
	assert.True(t, s.Verify("12345", "117744"))

	s.Drop("12345")
	assert.False(t, s.Verify("12345", "117744"))
}

func TestCodeStoreEmptyCodeNeverMatches(t *testing.T) {
	s := NewCodeStore()
	s.Put("12345", "")

	assert.False(t, s.Verify("12345", ""))
}

func TestGenerateCode(t *testing.T) {
	for range 50 {
		code, err := GenerateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "code %q has a non-digit", code)
		}
	}
}
