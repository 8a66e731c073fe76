package handlers

import (
	"net/http"

	"tourdesk/utils"

	"github.com/gin-gonic/gin"
)

// Health handles GET /health with the latest background probe snapshot.
func Health(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	state := "ok"
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "services": status.Services, "checkedAt": status.CheckedAt})
}

// Constants handles GET /constants.
func Constants(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"currencies":    utils.Currencies,
		"country_codes": utils.CountryCodes,
		"countries":     utils.Countries,
	})
}
