package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pifah-api/config"
	"pifah-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func loadSetting(key string, out interface{}) (bool, error) {
	var setting models.Setting
	if err := config.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal([]byte(setting.Value), out); err != nil {
		return false, err
	}
	return true, nil
}

func storeSetting(key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	now := time.Now()
	setting := models.Setting{Key: key, Value: string(raw), UpdateAt: &now}
	return config.DB.Save(&setting).Error
}

// GetRegionColors returns the map region color configuration, falling
// back to the defaults until an admin customizes them.
func GetRegionColors(c *gin.Context) {
	colors := models.DefaultRegionColors()
	if _, err := loadSetting(models.SettingRegionColors, &colors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load region colors"})
		return
	}

	c.JSON(http.StatusOK, colors)
}

// UpdateRegionColors replaces the region color configuration (admin only).
func UpdateRegionColors(c *gin.Context) {
	var colors models.RegionColors
	if err := c.ShouldBindJSON(&colors); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := storeSetting(models.SettingRegionColors, colors); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save region colors"})
		return
	}

	c.JSON(http.StatusOK, colors)
}

// GetBranding returns the logo/banner references shown by the frontend.
func GetBranding(c *gin.Context) {
	var branding models.Branding
	if _, err := loadSetting(models.SettingBranding, &branding); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load branding"})
		return
	}

	c.JSON(http.StatusOK, branding)
}

// UpdateBranding stores new branding references (admin only). The images
// themselves live in external storage; only references are kept here.
func UpdateBranding(c *gin.Context) {
	var branding models.Branding
	if err := c.ShouldBindJSON(&branding); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := storeSetting(models.SettingBranding, branding); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save branding"})
		return
	}

	c.JSON(http.StatusOK, branding)
}
