package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/griffix/backend/internal/interfaces/http/dto"
)

// AdminTokenHeader carries the shared admin secret on privileged requests.
const AdminTokenHeader = "X-Admin-Token"

// AdminAuth guards privileged routes with a shared-secret header.
// The comparison is constant time. If no secret is configured the
// routes are closed, not open.
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(AdminTokenHeader)
		if secret == "" || token == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Unauthorized"))
			return
		}
		c.Next()
	}
}
