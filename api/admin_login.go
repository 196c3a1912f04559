package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type adminLoginBody struct {
	Password string `json:"password"`
}

func (a *API) AdminLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data adminLoginBody
	if err := c.ShouldBind(&data); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	want := viper.GetString("admin.password")
	if subtle.ConstantTimeCompare([]byte(data.Password), []byte(want)) != 1 {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error":     "Invalid credentials",
			"requestID": requestID,
		})
		return
	}

	adminToken, err := makeToken(&jwt.MapClaims{
		"role": "admin",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour * 8).Unix(),
	})
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to generate JWT admin token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ssl := viper.GetBool("host.ssl.enabled")
	c.SetCookie("admin_token", adminToken, 60*60*8, "/", "", ssl, true)
	c.Status(http.StatusOK)
}

func (a *API) AdminLogout(c *gin.Context) {
	ssl := viper.GetBool("host.ssl.enabled")
	c.SetCookie("admin_token", "", -1, "/", "", ssl, true)
	c.Status(http.StatusOK)
}
