package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// UserKey is where the verified claims live on the gin context.
	UserKey = "user"
	// TokenKey is where the raw bearer token lives on the gin context.
	TokenKey = "token"
)

// Auth gates protected routes. It verifies the Authorization header against
// the given secret and attaches the decoded claims to the context. Every
// request is re-verified; nothing is cached.
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "No authorization header provided",
			})
			c.Abort()
			return
		}

		// Accept both "Bearer <token>" and a bare token.
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token format",
			})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			status, body := classifyTokenError(err)
			c.JSON(status, body)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			})
			c.Abort()
			return
		}

		c.Set(UserKey, claims)
		c.Set(TokenKey, tokenStr)
		c.Next()
	}
}

// classifyTokenError keeps expired tokens distinguishable from malformed or
// badly signed ones.
func classifyTokenError(err error) (int, gin.H) {
	var ve *jwt.ValidationError
	if errors.As(err, &ve) {
		switch {
		case ve.Errors&jwt.ValidationErrorExpired != 0:
			return http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Token has expired",
			}
		case ve.Errors&(jwt.ValidationErrorMalformed|jwt.ValidationErrorSignatureInvalid|jwt.ValidationErrorUnverifiable) != 0:
			return http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid token",
			}
		}
	}
	msg := "token is invalid"
	if err != nil {
		msg = err.Error()
	}
	return http.StatusUnauthorized, gin.H{
		"success": false,
		"message": "Authorization failed",
		"error":   msg,
	}
}

// CurrentUser returns the claims attached by Auth, if any.
func CurrentUser(c *gin.Context) (jwt.MapClaims, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(jwt.MapClaims)
	return claims, ok
}
