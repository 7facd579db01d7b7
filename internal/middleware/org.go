package middleware

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"github.com/MoAlsharqawy/Sanivita-CRM-sub001/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrgContextKey is the key for storing organization context
type contextKey string

const (
	OrgContextKey contextKey = "org"
	OrgIDKey      contextKey = "org_id"
	OrgSlugKey    contextKey = "org_slug"
	OrgDBKey      contextKey = "org_db"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*[a-z0-9]$`)

// OrgDBProvider interface for getting organization database connections
type OrgDBProvider interface {
	GetOrgDBBySlug(ctx context.Context, slug string) (*pgxpool.Pool, *models.Organization, error)
}

// ExtractOrgSlug extracts the organization slug from subdomain
// Examples:
//   - sanivita.sanivita-crm.com → "sanivita"
//   - acme-pharma.sanivita-crm.com → "acme-pharma"
//   - api.sanivita-crm.com → "" (no org, API-only)
func ExtractOrgSlug(host string, baseDomain string) string {
	// Remove port if present
	if idx := strings.Index(host, ":"); idx != -1 {
		host = host[:idx]
	}

	host = strings.ToLower(host)
	baseDomain = strings.ToLower(baseDomain)

	// If host equals base domain or www, no slug
	if host == baseDomain || host == "www."+baseDomain {
		return ""
	}

	// Check if host ends with base domain
	if !strings.HasSuffix(host, "."+baseDomain) {
		return ""
	}

	// Extract subdomain
	slug := strings.TrimSuffix(host, "."+baseDomain)

	// Reserved subdomains that are not organization slugs
	reserved := map[string]bool{
		"api":     true,
		"www":     true,
		"app":     true,
		"admin":   true,
		"staging": true,
		"dev":     true,
	}

	if reserved[slug] {
		return ""
	}

	return slug
}

// OrgMiddleware extracts the org slug from the subdomain and loads the
// organization context plus its DB connection
func OrgMiddleware(dbProvider OrgDBProvider, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		host := c.Request.Host
		slug := ExtractOrgSlug(host, baseDomain)

		// If no slug, continue without org context (API-only routes)
		if slug == "" {
			c.Next()
			return
		}

		// Validate slug format
		if !ValidateSlug(slug) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid organization identifier",
			})
			c.Abort()
			return
		}

		// Look up organization and get database connection
		orgDB, org, err := dbProvider.GetOrgDBBySlug(c.Request.Context(), slug)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Organization not found",
				"slug":  slug,
			})
			c.Abort()
			return
		}

		// Check if organization is active
		if org.Status != "active" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Organization account is inactive",
			})
			c.Abort()
			return
		}

		// Store org info and DB connection in context
		c.Set(string(OrgIDKey), org.ID)
		c.Set(string(OrgSlugKey), org.Slug)
		c.Set(string(OrgContextKey), org)
		c.Set(string(OrgDBKey), orgDB)

		c.Next()
	}
}

// RequireOrg ensures an organization context exists
func RequireOrg() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get(string(OrgIDKey))
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Organization context required. Please access via your organization subdomain (e.g., yourcompany.sanivita-crm.com)",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetOrgID retrieves organization ID from context
func GetOrgID(c *gin.Context) (uuid.UUID, bool) {
	val, exists := c.Get(string(OrgIDKey))
	if !exists {
		return uuid.Nil, false
	}
	id, ok := val.(uuid.UUID)
	return id, ok
}

// GetOrgSlug retrieves organization slug from context
func GetOrgSlug(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(OrgSlugKey))
	if !exists {
		return "", false
	}
	slug, ok := val.(string)
	return slug, ok
}

// GetOrgDB retrieves organization database connection from context
func GetOrgDB(c *gin.Context) (*pgxpool.Pool, bool) {
	val, exists := c.Get(string(OrgDBKey))
	if !exists {
		return nil, false
	}
	db, ok := val.(*pgxpool.Pool)
	return db, ok
}

// GetOrg retrieves full organization object from context
func GetOrg(c *gin.Context) (*models.Organization, bool) {
	val, exists := c.Get(string(OrgContextKey))
	if !exists {
		return nil, false
	}
	org, ok := val.(*models.Organization)
	return org, ok
}

// ValidateSlug checks if a slug is valid
// Rules:
//   - 3-50 characters
//   - Lowercase letters, numbers, hyphens only
//   - Must start and end with letter or number
//   - Cannot have consecutive hyphens
func ValidateSlug(slug string) bool {
	if len(slug) < 3 || len(slug) > 50 {
		return false
	}

	if !slugRegex.MatchString(slug) {
		return false
	}

	// No consecutive hyphens
	if strings.Contains(slug, "--") {
		return false
	}

	return true
}
