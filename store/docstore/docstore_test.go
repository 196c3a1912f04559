package docstore

import (
	"testing"
	"time"

	"campusfind/lostfound-api/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericID(t *testing.T) {
	a := numericID("V1StGXR8_Z5jdHi6B-myT")
	b := numericID("V1StGXR8_Z5jdHi6B-myT")
	c := numericID("some-other-key")

	assert.Equal(t, a, b, "same key always yields the same id")
	assert.NotEqual(t, a, c)
	assert.Positive(t, a)
	assert.Positive(t, c)
}

func TestDocTimeRoundTrip(t *testing.T) {
	ts := time.Date(2026, 3, 10, 12, 30, 45, 0, time.UTC)

	s := formatDocTime(ts)
	assert.Equal(t, "2026-03-10 12:30:45", s)
	assert.True(t, parseDocTime(s).Equal(ts))

	// Garbage dates come back as the zero time instead of an error
	assert.True(t, parseDocTime("not a date").IsZero())
}

func TestItemDocRoundTrip(t *testing.T) {
	userID := int64(42)
	item := &model.Item{
		ID:          7,
		Name:        "Blue Wallet",
		Category:    "Wallet",
		Description: "Leather, slightly worn",
		Location:    "Library",
		Date:        time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		Status:      model.StatusLost,
		ContactInfo: "room 214",
		MediaPaths:  model.StringSlice{"/uploads/a.jpg"},
		UserID:      &userID,
		PostedBy:    &model.User{ID: userID, UserName: "Jordan Reyes"},
	}

	doc := toItemDoc(item)
	assert.Equal(t, "Jordan Reyes", doc.PosterName, "poster name is denormalized onto the document")

	got := doc.toModel()
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, item.Name, got.Name)
	assert.True(t, got.Date.Equal(item.Date))
	assert.Equal(t, item.MediaPaths, got.MediaPaths)
	require.NotNil(t, got.UserID)
	assert.Equal(t, userID, *got.UserID)

	// Only the display name survives the trip
	require.NotNil(t, got.PostedBy)
	assert.Equal(t, "Jordan Reyes", got.PostedBy.UserName)
	assert.Equal(t, "Jordan Reyes", got.PosterName())
}

func TestItemDocWithoutPoster(t *testing.T) {
	item := &model.Item{ID: 7, Name: "Keys", Status: model.StatusFound}

	doc := toItemDoc(item)
	assert.Empty(t, doc.PosterName)

	got := doc.toModel()
	assert.Nil(t, got.PostedBy)
	assert.Equal(t, "Anonymous", got.PosterName())
}
