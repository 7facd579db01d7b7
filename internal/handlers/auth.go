package handlers

import (
	"net/http"
	"strings"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/auth"
	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	RepID     uuid.UUID `json:"rep_id"`
	Username  string    `json:"username"`
	IsManager bool      `json:"is_manager"`
	OrgID     uuid.UUID `json:"org_id"`
}

// Login authenticates a rep and returns a JWT token
func Login(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		db, ok := middleware.GetOrgDB(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database connection not found"})
			return
		}

		org, ok := middleware.GetOrg(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Organization context required"})
			return
		}

		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
			return
		}

		// Normalize username to lowercase
		username := strings.ToLower(strings.TrimSpace(req.Username))

		// Query rep from organization database
		query := `
			SELECT id, username, password_hash, is_manager, login_enabled
			FROM reps
			WHERE LOWER(username) = $1
		`

		var repID uuid.UUID
		var dbUsername string
		var passwordHash *string
		var isManager bool
		var loginEnabled bool

		err := db.QueryRow(c.Request.Context(), query, username).Scan(
			&repID, &dbUsername, &passwordHash, &isManager, &loginEnabled,
		)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		// Check if login is enabled
		if !loginEnabled {
			c.JSON(http.StatusForbidden, gin.H{"error": "Login is disabled for this user"})
			return
		}

		// Check if password_hash exists
		if passwordHash == nil || *passwordHash == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Password authentication not configured for this user"})
			return
		}

		// Verify password
		err = bcrypt.CompareHashAndPassword([]byte(*passwordHash), []byte(req.Password))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}

		// Generate JWT token
		token, err := jwtService.GenerateToken(repID, org.ID, dbUsername, isManager)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		// Return token and rep info
		c.JSON(http.StatusOK, LoginResponse{
			Token:     token,
			RepID:     repID,
			Username:  dbUsername,
			IsManager: isManager,
			OrgID:     org.ID,
		})
	}
}
