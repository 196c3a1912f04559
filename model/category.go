package model

import "strings"

// Categories is the fixed set of item categories accepted on creation.
var Categories = []string{
	"Wallet", "Phone", "Keys", "ID", "Bag", "Laptop",
	"Watch", "Jewelry", "Clothing", "Books", "Other",
}

type categoryStyle struct {
	Icon  string
	Color string
}

var categoryStyles = map[string]categoryStyle{
	"wallet":   {"fas fa-wallet", "#8e44ad"},
	"phone":    {"fas fa-mobile-alt", "#3498db"},
	"keys":     {"fas fa-key", "#f39c12"},
	"id":       {"fas fa-id-card", "#e74c3c"},
	"bag":      {"fas fa-briefcase", "#2ecc71"},
	"laptop":   {"fas fa-laptop", "#34495e"},
	"watch":    {"fas fa-clock", "#16a085"},
	"jewelry":  {"fas fa-gem", "#e67e22"},
	"clothing": {"fas fa-tshirt", "#9b59b6"},
	"books":    {"fas fa-book", "#c0392b"},
	"other":    {"fas fa-question-circle", "#95a5a6"},
}

var defaultStyle = categoryStyle{"fas fa-box", "#7f8c8d"}

// CategoryIcon returns the FontAwesome icon class for a category, falling
// back to a generic box for anything outside the known set.
func CategoryIcon(category string) string {
	if s, ok := categoryStyles[strings.ToLower(category)]; ok {
		return s.Icon
	}
	return defaultStyle.Icon
}

// CategoryColor returns the display color for a category.
func CategoryColor(category string) string {
	if s, ok := categoryStyles[strings.ToLower(category)]; ok {
		return s.Color
	}
	return defaultStyle.Color
}

// ValidCategory reports whether category is one of the accepted values,
// compared case-insensitively.
func ValidCategory(category string) bool {
	_, ok := categoryStyles[strings.ToLower(category)]
	return ok
}
