package models

import "time"

// Notification types, one per workflow event.
const (
	NotificationSubmission = "submission"
	NotificationReview     = "review"
	NotificationApproval   = "approval"
	NotificationRejection  = "rejection"
)

type Notification struct {
	NotificationID   string     `gorm:"primaryKey;column:notification_id" json:"notification_id"`
	UserID           string     `gorm:"column:user_id" json:"user_id"`
	Title            string     `gorm:"column:title" json:"title"`
	Message          string     `gorm:"column:message" json:"message"`
	Type             string     `gorm:"column:type" json:"type"` // submission|review|approval|rejection
	RelatedProjectID *string    `gorm:"column:related_project_id" json:"related_project_id,omitempty"`
	IsRead           bool       `gorm:"column:is_read" json:"is_read"`
	CreateAt         time.Time  `gorm:"column:create_at" json:"created_at"`
	UpdateAt         *time.Time `gorm:"column:update_at" json:"-"`
}

func (Notification) TableName() string { return "notifications" }
