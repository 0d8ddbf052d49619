package middleware

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"summarize-api/dto"
)

// SizeLimit rejects requests whose declared Content-Length exceeds
// maxBytes, before any handler runs. Requests without the header proceed;
// later checks still bound what actually gets processed.
func SizeLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		size := c.Request.ContentLength
		if cl := c.GetHeader("Content-Length"); cl != "" {
			parsed, err := strconv.ParseInt(cl, 10, 64)
			if err != nil || parsed < 0 {
				c.AbortWithStatusJSON(http.StatusBadRequest, dto.ErrorResponseDTO{
					Error: "invalid Content-Length header",
				})
				return
			}
			size = parsed
		}
		if size > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.ErrorResponseDTO{
				Error: fmt.Sprintf("request payload is too large, limit is %.2f MB", float64(maxBytes)/(1024*1024)),
			})
			return
		}
		c.Next()
	}
}
