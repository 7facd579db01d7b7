package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequirePaidPlan restricts access to organizations on a paid subscription.
// Use this for endpoints not included in the trial tier (e.g. exports).
func RequirePaidPlan() gin.HandlerFunc {
	return func(c *gin.Context) {
		org, exists := GetOrg(c)
		if !exists {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Organization context required",
			})
			c.Abort()
			return
		}

		if org.Plan == "trial" {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "This feature requires a paid subscription",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
