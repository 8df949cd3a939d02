package middleware

import (
	"strings"

	"videau/pkg/apperror"
	"videau/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// Identity is the authenticated caller, set once by AuthMiddleware.
type Identity struct {
	UserID   string
	Username string
}

// TokenValidator is satisfied by *jwt.Service.
type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware requires an "Authorization: Bearer <token>" header. Only the
// second space-separated segment is read; the scheme word is not checked.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			Abort(c, apperror.New(apperror.KindUnauthorized, "You are unauthorizated"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) < 2 || parts[1] == "" {
			Abort(c, apperror.New(apperror.KindUnauthorized, "Could not find token"))
			return
		}

		claims, err := tokens.ValidateToken(parts[1])
		if err != nil {
			Abort(c, apperror.Wrap(apperror.KindUnauthorized, "Invalid authorization", err))
			return
		}

		c.Set(identityKey, Identity{UserID: claims.UserID, Username: claims.Username})
		c.Next()
	}
}

// CurrentIdentity returns the identity attached by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

// UserID is a shorthand for CurrentIdentity(c).UserID; empty when unauthenticated.
func UserID(c *gin.Context) string {
	identity, _ := CurrentIdentity(c)
	return identity.UserID
}

// SetIdentity attaches an identity; used by tests and internal tooling.
func SetIdentity(c *gin.Context, identity Identity) {
	c.Set(identityKey, identity)
}
