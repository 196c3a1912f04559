package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringSliceValue(t *testing.T) {
	v, err := StringSlice{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringSlice{"/uploads/a.jpg", "/uploads/b.jpg"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["/uploads/a.jpg","/uploads/b.jpg"]`, v.(string))
}

func TestStringSliceScan(t *testing.T) {
	var s StringSlice

	require.NoError(t, s.Scan(`["/uploads/a.jpg"]`))
	assert.Equal(t, StringSlice{"/uploads/a.jpg"}, s)

	require.NoError(t, s.Scan([]byte(`["/uploads/b.jpg"]`)))
	assert.Equal(t, StringSlice{"/uploads/b.jpg"}, s)

	require.NoError(t, s.Scan(nil))
	assert.Empty(t, s)

	require.NoError(t, s.Scan(""))
	assert.Empty(t, s)

	assert.Error(t, s.Scan(42))
}
