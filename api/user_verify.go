package api

import (
	"errors"
	"net/http"

	"campusfind/lostfound-api/signup"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type verifyBody struct {
	AttemptToken string `json:"attempt_token"`
	Code         string `json:"code"`
}

// UserVerify confirms the emailed code and persists the account with its
// verified flag set.
func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data verifyBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	user, err := a.Signup.Confirm(c.Request.Context(), data.AttemptToken, data.Code)
	if err != nil {
		switch {
		case errors.Is(err, signup.ErrCodeEmpty):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Please enter the verification code",
				"requestID": requestID,
			})
		case errors.Is(err, signup.ErrCodeMismatch):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     "Verification code is incorrect",
				"requestID": requestID,
			})
		case errors.Is(err, signup.ErrSessionExpired):
			c.JSON(http.StatusGone, gin.H{
				"error":     "Signup session expired. Please register again",
				"requestID": requestID,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to confirm signup", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Account verified successfully. You can now log in",
		"userID":  user.ID,
	})
}
