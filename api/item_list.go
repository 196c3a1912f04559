package api

import (
	"net/http"

	"campusfind/lostfound-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ItemsAll(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	items, err := a.Stores.Items().ListItems(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list items", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": itemListPayload(items)})
}

func (a *API) ItemsLost(c *gin.Context) {
	a.itemsByStatus(c, model.StatusLost)
}

func (a *API) ItemsFound(c *gin.Context) {
	a.itemsByStatus(c, model.StatusFound)
}

func (a *API) itemsByStatus(c *gin.Context, status string) {
	requestID := c.MustGet("requestID").(string)

	items, err := a.Stores.Items().ListItemsByStatus(c.Request.Context(), status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to list items by status", zap.Error(err),
			zap.String("status", status), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": itemListPayload(items)})
}
