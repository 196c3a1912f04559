package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosterName(t *testing.T) {
	item := Item{PostedBy: &User{UserName: "Jordan Reyes"}}
	assert.Equal(t, "Jordan Reyes", item.PosterName())

	item.PostedBy = nil
	assert.Equal(t, "Anonymous", item.PosterName())

	item.PostedBy = &User{}
	assert.Equal(t, "Anonymous", item.PosterName())
}

func TestOppositeStatus(t *testing.T) {
	lost := Item{Status: StatusLost}
	assert.Equal(t, StatusFound, lost.OppositeStatus())

	found := Item{Status: StatusFound}
	assert.Equal(t, StatusLost, found.OppositeStatus())
}

func TestFirstImage(t *testing.T) {
	item := Item{}
	assert.Empty(t, item.FirstImage())

	item.MediaPaths = StringSlice{"/uploads/a.jpg", "/uploads/b.jpg"}
	assert.Equal(t, "/uploads/a.jpg", item.FirstImage())
}

func TestCategoryStyles(t *testing.T) {
	assert.Equal(t, "fas fa-wallet", CategoryIcon("Wallet"))
	assert.Equal(t, "fas fa-wallet", CategoryIcon("WALLET"))
	assert.Equal(t, "#8e44ad", CategoryColor("wallet"))

	// Unknown categories fall back to the generic box
	assert.Equal(t, "fas fa-box", CategoryIcon("Skateboard"))
	assert.Equal(t, "#7f8c8d", CategoryColor("Skateboard"))
}

func TestValidCategory(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, ValidCategory(c), c)
	}

	assert.True(t, ValidCategory("wallet"))
	assert.False(t, ValidCategory(""))
	assert.False(t, ValidCategory("Skateboard"))
}
