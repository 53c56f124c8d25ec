package controllers

import (
	"net/http"

	"pifah-api/config"
	"pifah-api/services"

	"github.com/gin-gonic/gin"
)

func statisticsService() *services.StatisticsService {
	return services.NewStatisticsService(config.DB)
}

// GetPublicCountryStatistics returns per-country rollups of approved
// projects for the public map.
func GetPublicCountryStatistics(c *gin.Context) {
	stats, err := statisticsService().PublicCountryStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}

// GetPrivilegedCountryStatistics returns rollups over every project
// regardless of status, including status counts and the map display
// status for each country.
func GetPrivilegedCountryStatistics(c *gin.Context) {
	stats, err := statisticsService().PrivilegedCountryStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}

// GetOverviewStatistics returns platform-wide status counts and the
// per-pillar approved/not-approved breakdown.
func GetOverviewStatistics(c *gin.Context) {
	overview, err := statisticsService().OverviewStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
