package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/IanFindlay/nc-news/utils"
)

// ErrorHandler drains the last error a handler pushed with c.Error through a
// fixed chain: application-level APIErrors are emitted verbatim, recognised
// database constraint errors are mapped, and anything left becomes an opaque
// 500. Error bodies are always {"msg": ...}.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil {
			return
		}
		err := last.Err

		var apiErr *utils.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"msg": apiErr.Msg})
			return
		}

		if translated := utils.FromDBError(err); translated != nil {
			c.JSON(translated.Status, gin.H{"msg": translated.Msg})
			return
		}

		utils.LogError(err, "Unhandled error")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": utils.MsgInternal})
	}
}
