package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hotel-desk/utils"
)

// OperatorToken requires "Authorization: Bearer <token>" whose bcrypt hash
// matches tokenHash. An empty tokenHash lets every request through.
func OperatorToken(tokenHash string) gin.HandlerFunc {
	if tokenHash == "" {
		return func(c *gin.Context) { c.Next() }
	}
	hash := []byte(tokenHash)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Missing bearer token")
			c.Abort()
			return
		}
		if err := bcrypt.CompareHashAndPassword(hash, []byte(strings.TrimSpace(token))); err != nil {
			log.Printf("⚠️ [%s] rejected operator token from %s", RequestID(c), c.ClientIP())
			utils.JSONError(c, http.StatusUnauthorized, "error.unauthorized", "Invalid token")
			c.Abort()
			return
		}
		c.Next()
	}
}

// HashToken produces the value for HOTEL_API_TOKEN_HASH.
func HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
