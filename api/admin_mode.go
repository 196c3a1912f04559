package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type switchModeBody struct {
	Mirror bool `json:"mirror"`
}

// AdminMode reports whether writes currently mirror into the document
// store and whether the setting is locked by configuration.
func (a *API) AdminMode(c *gin.Context) {
	cell := a.Stores.Cell()

	c.JSON(http.StatusOK, gin.H{
		"mirror":        cell.Enabled(),
		"forced":        cell.Forced(),
		"has_secondary": a.Stores.HasSecondary(),
	})
}

func (a *API) AdminSwitchMode(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data switchModeBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})
		return
	}

	cell := a.Stores.Cell()

	if cell.Forced() {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     "Mirroring is forced by configuration and can't be changed at runtime",
			"requestID": requestID,
		})
		return
	}

	if data.Mirror && !a.Stores.HasSecondary() {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":     "No document store is configured",
			"requestID": requestID,
		})
		return
	}

	cell.Set(data.Mirror)

	zap.L().Info("Storage mode changed", zap.Bool("mirror", data.Mirror), zap.String("requestID", requestID))

	c.JSON(http.StatusOK, gin.H{
		"mirror": cell.Enabled(),
		"forced": cell.Forced(),
	})
}
