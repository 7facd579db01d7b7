package middleware

import (
	"net/http"
	"strings"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/auth"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	authRepKey       = "auth_rep_id"
	authUsernameKey  = "auth_username"
	authIsManagerKey = "auth_is_manager"
)

// RequireAuth validates JWT token and sets rep context
func RequireAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract token from Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Check for Bearer token format
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization format. Use: Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]

		// Validate token
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			if err == auth.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			}
			c.Abort()
			return
		}

		// Verify token belongs to the correct organization
		org, exists := GetOrg(c)
		if exists && org.ID != claims.OrgID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Token does not belong to this organization"})
			c.Abort()
			return
		}

		// Store rep info in context
		c.Set(authRepKey, claims.RepID)
		c.Set(authUsernameKey, claims.Username)
		c.Set(authIsManagerKey, claims.IsManager)

		c.Next()
	}
}

// RequireManager ensures the authenticated rep is a manager
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		isManager, exists := c.Get(authIsManagerKey)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !isManager.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Manager access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetAuthRepID retrieves the authenticated rep ID from context
func GetAuthRepID(c *gin.Context) (uuid.UUID, bool) {
	repID, exists := c.Get(authRepKey)
	if !exists {
		return uuid.Nil, false
	}
	return repID.(uuid.UUID), true
}

// GetAuthUsername retrieves the authenticated username from context
func GetAuthUsername(c *gin.Context) (string, bool) {
	username, exists := c.Get(authUsernameKey)
	if !exists {
		return "", false
	}
	return username.(string), true
}

// GetAuthIsManager retrieves whether the authenticated rep is a manager
func GetAuthIsManager(c *gin.Context) (bool, bool) {
	isManager, exists := c.Get(authIsManagerKey)
	if !exists {
		return false, false
	}
	return isManager.(bool), true
}
