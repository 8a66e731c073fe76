package handlers

import (
	"tourdesk/middleware"
	"tourdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// getLogger returns the global logger tagged with the request path and tenant.
func getLogger(c *gin.Context) *zap.Logger {
	logger := utils.GetLogger().With(zap.String("path", c.FullPath()))
	if companyID := middleware.CompanyID(c); companyID != "" {
		logger = logger.With(zap.String("companyID", companyID))
	}
	return logger
}
