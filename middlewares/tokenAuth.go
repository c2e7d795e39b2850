package middlewares

import (
	"CareLink/utils"
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// contextKey defines a custom context key type to store the caller identity.
type contextKey string

const accountIDKey contextKey = "accountID"

// TokenAuthMiddleware validates the access token and stores the caller's
// account id in the request context. The token comes from the
// Authorization header (Bearer scheme) or, failing that, the accessToken
// cookie set at login.
func TokenAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			if cookie, err := c.Cookie("accessToken"); err == nil {
				token = cookie
			}
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing access token"})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		accountID, err := strconv.ParseInt(claims.AccountID, 10, 64)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// ExtractAccountIDFromContext retrieves the caller's account id set by
// TokenAuthMiddleware.
func ExtractAccountIDFromContext(ctx context.Context) (int64, error) {
	accountID, ok := ctx.Value(accountIDKey).(int64)
	if !ok {
		return 0, errors.New("account ID not found in context")
	}
	return accountID, nil
}
