package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// tokenTTL is the fixed validity window of issued tokens.
const tokenTTL = time.Hour

// Auth issues and verifies bearer tokens signed with a shared secret.
// Verification is stateless: there is no refresh or revocation list.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// GenerateToken signs a token carrying the identity's id and role.
func (a *Auth) GenerateToken(id uint, role string) (string, error) {
	claims := jwt.MapClaims{
		"id":   id,
		"role": role,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// RequireAuth ensures a valid bearer token is present and stores the decoded
// id and role on the context. Fails closed with 403 and no body.
//
// The closure must not call c.Next(): RequireRole invokes it directly to
// authenticate before its own role check, and gin continues the chain on its
// own when a middleware returns un-aborted.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return a.secret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		id, idOK := claims["id"].(float64)
		role, roleOK := claims["role"].(string)
		if !idOK || !roleOK {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		// Store the identity for downstream handlers
		c.Set("id", uint(id))
		c.Set("role", role)
	}
}

// RequireRole ensures the token is valid and carries exactly the given role.
// The role is checked before the handler chain continues.
func (a *Auth) RequireRole(required string) gin.HandlerFunc {
	authenticate := a.RequireAuth()
	return func(c *gin.Context) {
		authenticate(c)
		if c.IsAborted() {
			return
		}

		if c.GetString("role") != required {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
	}
}
