package api

import (
	"errors"
	"net/http"

	"campusfind/lostfound-api/signup"
	"campusfind/lostfound-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerBody struct {
	StudentID string `json:"student_id"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// UserRegister starts a signup attempt. The directory resolves the student
// id to a name and email, a code is mailed there, and the caller gets an
// attempt token for the verify step. No account exists yet.
func (a *API) UserRegister(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data registerBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Error("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	res, err := a.Signup.Start(c.Request.Context(), data.StudentID, data.Password, data.Phone)
	if err != nil {
		switch {
		case errors.Is(err, signup.ErrStudentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":     "Student ID not found in the university directory",
				"requestID": requestID,
			})
		case errors.Is(err, signup.ErrAlreadyRegistered):
			c.JSON(http.StatusConflict, gin.H{
				"error":     "This student ID is already registered. Please login instead",
				"requestID": requestID,
			})
		case errors.Is(err, validators.ErrPasswordEmpty),
			errors.Is(err, validators.ErrPasswordTooShort),
			errors.Is(err, validators.ErrPasswordTooLong),
			errors.Is(err, validators.ErrPasswordNoUpper),
			errors.Is(err, validators.ErrPasswordNoDigit):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":     err.Error(),
				"requestID": requestID,
			})
		case errors.Is(err, signup.ErrDirectoryUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":     "Verification service is currently unavailable. Please try again later",
				"requestID": requestID,
			})

			zap.L().Error("Directory lookup failed", zap.Error(err), zap.String("requestID", requestID))
		case errors.Is(err, signup.ErrMailDispatch):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":     "Could not send the verification email. Please try again later",
				"requestID": requestID,
			})

			zap.L().Error("Verification mail failed", zap.Error(err), zap.String("requestID", requestID))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Internal server error",
				"requestID": requestID,
			})

			zap.L().Error("Failed to start signup", zap.Error(err), zap.String("requestID", requestID))
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt_token": res.AttemptToken,
		"name":          res.Name,
		"email":         res.Email,
	})
}
