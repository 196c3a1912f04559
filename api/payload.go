package api

import (
	"campusfind/lostfound-api/matching"
	"campusfind/lostfound-api/model"

	"github.com/gin-gonic/gin"
)

// itemPayload enriches an item with the derived display attributes the
// frontend renders directly.
func itemPayload(item model.Item) gin.H {
	return gin.H{
		"id":             item.ID,
		"name":           item.Name,
		"category":       item.Category,
		"category_icon":  model.CategoryIcon(item.Category),
		"category_color": model.CategoryColor(item.Category),
		"description":    item.Description,
		"location":       item.Location,
		"date":           item.Date,
		"status":         item.Status,
		"contact_info":   item.ContactInfo,
		"media_paths":    []string(item.MediaPaths),
		"first_image":    item.FirstImage(),
		"poster_name":    item.PosterName(),
	}
}

func itemListPayload(items []model.Item) []gin.H {
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		out = append(out, itemPayload(item))
	}
	return out
}

func matchListPayload(matches []matching.Match) []gin.H {
	out := make([]gin.H, 0, len(matches))
	for _, m := range matches {
		out = append(out, gin.H{
			"item":  itemPayload(m.Item),
			"score": m.Score,
		})
	}
	return out
}
