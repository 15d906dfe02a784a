package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"stockbook/internal/store"
)

const IdentityKey = "identity"

// IdentityClaims are the custom claims embedded in every access token.
type IdentityClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Identity resolves the scoping identity for the request: the email claim of
// a valid Bearer token, or "guest" otherwise. It never rejects — identity
// scoping is a key-prefixing convention, not an authorization boundary, so an
// absent or invalid token simply lands the caller in the guest dataset.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := store.GuestIdentity

		header := c.GetHeader("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			claims := &IdentityClaims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err == nil && token.Valid && claims.Email != "" {
				identity = claims.Email
			}
		}

		c.Set(IdentityKey, identity)
		c.Next()
	}
}

// GetIdentity is a helper to retrieve the resolved identity from the Gin context.
func GetIdentity(c *gin.Context) string {
	identity := c.GetString(IdentityKey)
	if identity == "" {
		return store.GuestIdentity
	}
	return identity
}
