package middleware

import (
	"net/http"

	"tourdesk/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole lets through only sessions carrying role. Use after SessionAuth.
func RequireRole(role string, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != role {
			denyBrowser(c, http.StatusForbidden, message)
			return
		}
		c.Next()
	}
}

func AdminOnly() gin.HandlerFunc {
	return RequireRole(utils.RoleAdmin, "Admin access only")
}

func CompanyOnly() gin.HandlerFunc {
	return RequireRole(utils.RoleCompany, "Company access only")
}
