package controllers

import (
	"errors"
	"net/http"

	"pifah-api/config"
	"pifah-api/models"
	"pifah-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetCountries lists the country reference data for the map.
func GetCountries(c *gin.Context) {
	var countries []models.Country
	if err := config.DB.Order("name ASC").Find(&countries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch countries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"countries": countries,
		"total":     len(countries),
	})
}

// GetCountry returns one country by id.
func GetCountry(c *gin.Context) {
	var country models.Country
	if err := config.DB.Where("country_id = ?", c.Param("id")).First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Country not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch country"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"country": country,
	})
}

type countryRequest struct {
	CountryID  string   `json:"country_id" binding:"required"`
	Name       string   `json:"name" binding:"required"`
	Capital    string   `json:"capital" binding:"required"`
	Population int64    `json:"population" binding:"required"`
	Area       int64    `json:"area" binding:"required"`
	Region     string   `json:"region" binding:"required"`
	GDP        *int64   `json:"gdp"`
	Languages  []string `json:"languages"`
}

// CreateCountry adds a country to the reference data (admin only).
func CreateCountry(c *gin.Context) {
	var req countryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !models.ValidRegion(req.Region) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown region", "field": "region"})
		return
	}

	country := models.Country{
		CountryID:  utils.SanitizeInput(req.CountryID),
		Name:       utils.SanitizeInput(req.Name),
		Capital:    utils.SanitizeInput(req.Capital),
		Population: req.Population,
		Area:       req.Area,
		Region:     req.Region,
		GDP:        req.GDP,
		Languages:  req.Languages,
	}

	if err := config.DB.Create(&country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create country"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"country": country,
	})
}

// UpdateCountry edits a country (admin only).
func UpdateCountry(c *gin.Context) {
	var country models.Country
	if err := config.DB.Where("country_id = ?", c.Param("id")).First(&country).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Country not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch country"})
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body"})
		return
	}
	delete(updates, "country_id")

	if region, ok := updates["region"]; ok {
		str, _ := region.(string)
		if !models.ValidRegion(str) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown region", "field": "region"})
			return
		}
	}

	if err := config.DB.Model(&country).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update country"})
		return
	}

	if err := config.DB.Where("country_id = ?", c.Param("id")).First(&country).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch country"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"country": country,
	})
}

// DeleteCountry removes a country from the reference data (admin only).
func DeleteCountry(c *gin.Context) {
	result := config.DB.Where("country_id = ?", c.Param("id")).Delete(&models.Country{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete country"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Country not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Country deleted",
	})
}

// GetRECs returns the Regional Economic Community reference data.
// Display-only; RECs take no part in the workflow.
func GetRECs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recs":    models.RECs,
	})
}
