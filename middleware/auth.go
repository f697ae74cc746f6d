package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"healthhive/utils"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "userID"

// UserIDResolver maps a bearer token to a user id.
type UserIDResolver interface {
	UserID(token string) (string, error)
}

// JWTAuthMiddleware verifies the bearer token and stores the user id on the context.
// Tokens are issued by the account service; this API only verifies them.
func JWTAuthMiddleware(verifier UserIDResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "Missing or invalid Authorization header", "")
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		userID, err := verifier.UserID(tokenString)
		if err != nil {
			logger.Debug("Rejected bearer token", zap.String("ip", getClientIP(c)), zap.Error(err))
			utils.JSONError(c, http.StatusUnauthorized, "Invalid token", "")
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id set by JWTAuthMiddleware.
func UserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}
