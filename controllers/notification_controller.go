package controllers

import (
	"errors"
	"net/http"

	"pifah-api/config"
	"pifah-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetNotifications lists the calling user's notifications, newest first.
func GetNotifications(c *gin.Context) {
	userID, _ := c.Get("userID")

	var notifications []models.Notification
	if err := config.DB.Where("user_id = ?", userID).
		Order("create_at DESC").
		Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"notifications": notifications,
		"total":         len(notifications),
	})
}

// GetUnreadNotificationCount returns the unread badge count.
func GetUnreadNotificationCount(c *gin.Context) {
	userID, _ := c.Get("userID")

	var count int64
	if err := config.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to count notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"unread":  count,
	})
}

// MarkNotificationRead flips the read flag on one of the caller's
// notifications. The read flag is the only mutable field.
func MarkNotificationRead(c *gin.Context) {
	userID, _ := c.Get("userID")

	var notification models.Notification
	if err := config.DB.Where("notification_id = ? AND user_id = ?", c.Param("id"), userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch notification"})
		return
	}

	if err := config.DB.Model(&notification).Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update notification"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Notification marked as read",
	})
}
