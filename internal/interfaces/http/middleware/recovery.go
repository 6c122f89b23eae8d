package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"fibernet/internal/shared/errors"
	"fibernet/internal/shared/logger"
	"fibernet/internal/shared/utils"
)

// Recovery converts panics into 500 responses with a logged stack.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorw("panic recovered",
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"error", recovered,
			"stack", string(debug.Stack()))

		utils.ErrorResponse(c, http.StatusInternalServerError, string(errors.ErrorTypeInternal), "internal server error")
	})
}
