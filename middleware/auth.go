package middleware

import (
	"net/http"
	"strings"
	"time"

	"web-store/models"
	"web-store/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware is the authentication gate. A request without an
// Authorization header proceeds anonymously; routes that need a
// principal reject it further down. A header that is present but
// does not carry a valid token terminates the request here.
func AuthMiddleware(tokens *utils.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid authorization header format",
			})
			c.Abort()
			return
		}

		username, err := tokens.Validate(tokenParts[1], time.Now())
		if err != nil {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Invalid or expired token",
				Error:   err.Error(),
			})
			c.Abort()
			return
		}

		c.Set("principal", username)
		c.Next()
	}
}

// RequirePrincipal guards routes that need an authenticated caller.
func RequirePrincipal() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("principal") == "" {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Success: false,
				Message: "Authorization required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
