package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"bookworm/internal/shared/logger"
	"bookworm/internal/shared/utils"
)

// Recovery converts panics into 500 responses with a logged stack trace.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, 500, "Internal server error occurred")
	})
}
