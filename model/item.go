// Package model defines database models
package model

import "time"

const (
	StatusLost  = "Lost"
	StatusFound = "Found"
)

type Item struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"not null" json:"name"`
	Category    string      `gorm:"not null" json:"category"` // One of Categories, see category.go
	Description string      `json:"description"`
	Location    string      `gorm:"not null" json:"location"`
	Date        time.Time   `json:"date"` // When the item was lost/found, defaults to creation time
	Status      string      `gorm:"not null" json:"status"`
	ContactInfo string      `json:"contact_info"`
	MediaPaths  StringSlice `json:"media_paths"`

	// Deleting a user keeps their items around with a nulled poster
	UserID   *int64 `json:"user_id,omitempty"`
	PostedBy *User  `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}

// PosterName returns the display name of whoever posted the item. Items
// whose poster was deleted (or that came from the document store without a
// denormalized name) show up as Anonymous.
func (i *Item) PosterName() string {
	if i.PostedBy != nil && i.PostedBy.UserName != "" {
		return i.PostedBy.UserName
	}
	return "Anonymous"
}

// OppositeStatus returns Found for a Lost item and Lost for a Found one.
func (i *Item) OppositeStatus() string {
	if i.Status == StatusLost {
		return StatusFound
	}
	return StatusLost
}

func (i *Item) FirstImage() string {
	if len(i.MediaPaths) == 0 {
		return ""
	}
	return i.MediaPaths[0]
}
