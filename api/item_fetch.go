package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ItemFetch(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid item ID",
			"requestID": requestID,
		})
		return
	}

	item, err := a.Stores.Items().ItemByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to fetch item", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":     "Item not found",
			"requestID": requestID,
		})
		return
	}

	c.JSON(http.StatusOK, itemPayload(*item))
}
