package controllers

import (
	"errors"
	"net/http"
	"time"

	"pifah-api/config"
	"pifah-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetUsers lists accounts for the admin console.
func GetUsers(c *gin.Context) {
	var users []models.User
	query := config.DB.Where("delete_at IS NULL")

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	if err := query.Order("create_at DESC").Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"users":   users,
		"total":   len(users),
	})
}

// UpdateUserRole changes an account's role (admin only).
func UpdateUserRole(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Unknown role", "field": "role"})
		return
	}

	var user models.User
	if err := config.DB.Where("user_id = ? AND delete_at IS NULL", c.Param("id")).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch user"})
		return
	}

	now := time.Now()
	if err := config.DB.Model(&user).Updates(map[string]interface{}{
		"role":      req.Role,
		"update_at": now,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update role"})
		return
	}

	user.Role = req.Role
	user.UpdateAt = &now

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
