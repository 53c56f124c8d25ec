package models

import (
	"time"
)

// Role values. A user's role is the only authorization signal in the system.
const (
	RolePublic      = "public"
	RoleFocalPerson = "focal_person"
	RoleApprover    = "approver"
	RoleAdmin       = "admin"
)

type User struct {
	UserID       string     `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	Password     string     `gorm:"column:password" json:"-"`
	FirstName    string     `gorm:"column:first_name" json:"first_name"`
	LastName     string     `gorm:"column:last_name" json:"last_name"`
	Organization *string    `gorm:"column:organization" json:"organization,omitempty"`
	Role         string     `gorm:"column:role" json:"role"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// ValidRole reports whether role is one of the fixed role values.
func ValidRole(role string) bool {
	switch role {
	case RolePublic, RoleFocalPerson, RoleApprover, RoleAdmin:
		return true
	}
	return false
}
