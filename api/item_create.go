package api

import (
	"net/http"
	"path"
	"strings"
	"time"

	"campusfind/lostfound-api/matching"
	"campusfind/lostfound-api/model"
	"campusfind/lostfound-api/validators"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
)

const mediaKeyCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// ItemCreate persists a new lost/found post and immediately scans the
// opposite-status pool for probable matches. Attachments are written to
// durable media storage before the item record, so recorded paths always
// resolve. Matching runs synchronously: the response carries the ranked
// matches.
func (a *API) ItemCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	userID := c.MustGet("userID").(int64)
	userName := c.GetString("userName")

	if !strings.HasPrefix(c.Request.Header.Get("Content-Type"), "multipart/form-data") {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request",
			"requestID": requestID,
		})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to parse multipart form", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	item := &model.Item{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		Status:      c.PostForm("status"),
		ContactInfo: c.PostForm("contact_info"),
		Date:        time.Now(),
		UserID:      &userID,
		PostedBy:    &model.User{ID: userID, UserName: userName},
		MediaPaths:  model.StringSlice{},
	}

	if raw := c.PostForm("date"); raw != "" {
		date, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error":     "Invalid date, expected RFC 3339",
				"requestID": requestID,
			})
			return
		}
		item.Date = date
	}

	if err := validators.ItemValidator(item); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     err.Error(),
			"requestID": requestID,
		})
		return
	}

	for _, fh := range form.File["files"] {
		key, err := gonanoid.Generate(mediaKeyCharset, 16)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to generate media key", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		key += path.Ext(fh.Filename)

		f, err := fh.Open()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to open uploaded file", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		mediaPath, err := a.Media.Save(c.Request.Context(), key, f, fh.Size, fh.Header.Get("Content-Type"))
		f.Close()
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to store attachment",
				"requestID": requestID,
			})

			zap.L().Error("Failed to store attachment", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		item.MediaPaths = append(item.MediaPaths, mediaPath)
	}

	items := a.Stores.Items()

	saved, err := items.AddItem(c.Request.Context(), item)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	candidates, err := items.ListItemsByStatus(c.Request.Context(), saved.OppositeStatus())
	if err != nil {
		// The item is saved either way, report it without matches
		zap.L().Error("Failed to load match candidates", zap.Error(err), zap.String("requestID", requestID))
		candidates = nil
	}

	matches := matching.Rank(*saved, candidates)

	c.JSON(http.StatusOK, gin.H{
		"item":    itemPayload(*saved),
		"matches": matchListPayload(matches),
	})
}
