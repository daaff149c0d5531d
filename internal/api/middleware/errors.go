package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
)

// InternalErrorBody is the only error payload clients ever see.
var InternalErrorBody = gin.H{"error": "Internal server error"}

// ErrorHandler turns handler errors recorded with c.Error and panics into a
// generic 500 response. Details and stack traces are logged, never returned.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				GetLogger(c).
					WithField("panic", fmt.Sprint(r)).
					WithField("stack", string(debug.Stack())).
					Error("Unhandled panic")
				respondInternalError(c)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		GetLogger(c).
			WithError(c.Errors.Last().Err).
			WithField("errors", c.Errors.String()).
			Error("Request failed")
		respondInternalError(c)
	}
}

func respondInternalError(c *gin.Context) {
	if c.Writer.Written() {
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, InternalErrorBody)
}
