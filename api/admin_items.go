package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) AdminItems(c *gin.Context) {
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

func (a *API) AdminDeleteItem(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid item ID",
			"requestID": requestID,
		})
		return
	}

	deleted, err := a.Stores.Items().DeleteItem(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to delete item", zap.Error(err),
			zap.Int64("itemID", id), zap.String("requestID", requestID))
		return
	}

	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Item not found",
			"requestID": requestID,
		})
		return
	}

	c.Status(http.StatusOK)
}
