package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"qr-order-api/config"
	"qr-order-api/models"
)

// TokenCookie is the cookie carrying the signed auth token
const TokenCookie = "token"

const tokenTTL = 24 * time.Hour

type Claims struct {
	AccountID uint        `json:"id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a store owner or admin account
func GenerateToken(accountID uint, email string, role models.Role) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// SetTokenCookie attaches the token to the response as an HTTP-only cookie
func SetTokenCookie(c *gin.Context, token string) {
	c.SetCookie(TokenCookie, token, int(tokenTTL.Seconds()), "/", "", false, true)
}

// ClearTokenCookie expires the auth cookie
func ClearTokenCookie(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
}

// AuthRequired validates the token and injects the principal into context.
// The token is read from the cookie; a Bearer header is accepted as fallback
// for non-browser clients.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(TokenCookie)
		if err != nil || tokenStr == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Authentication required"})
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("accountID", claims.AccountID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that the caller has one of the allowed roles
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.Role(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"success": false,
			"message": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetAccountID extracts the caller's account ID from context
func GetAccountID(c *gin.Context) uint {
	val, _ := c.Get("accountID")
	return val.(uint)
}

// GetEmail extracts the caller's email from context
func GetEmail(c *gin.Context) string {
	val, _ := c.Get("email")
	return val.(string)
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	return models.Role(val.(string))
}
