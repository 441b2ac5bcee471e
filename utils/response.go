// utils/response.go
package utils

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SlotConflictMessage is returned whenever a create/reschedule hits an
// occupied slot.
const SlotConflictMessage = "This time slot is no longer available..."

// RespondWithError sends a JSON error payload and aborts the request
func RespondWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// RespondWithConflict reports a business rule violation distinctly from
// generic failures
func RespondWithConflict(c *gin.Context, message string) {
	c.AbortWithStatusJSON(409, gin.H{"error": message, "conflict": true})
}

// LogAndRespond logs the underlying error and returns a generic message
// to the client. Internal details never leave the server.
func LogAndRespond(c *gin.Context, code int, message string, err error) {
	GetLogger().Error(message,
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}
