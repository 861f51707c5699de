package models

import (
	"time"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"not null" json:"-"` // Hash
	FirstName   string    `gorm:"size:100" json:"first_name"`
	LastName    string    `gorm:"size:100" json:"last_name"`
	DisplayName string    `gorm:"size:100" json:"display_name"` // Preferred display name, overrides everything else
	Avatar      string    `gorm:"default:🍳" json:"avatar"`      // emoji avatar
	Role        string    `gorm:"size:20;default:'user';not null" json:"role"` // user, admin
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// No DeletedAt: user rows are hard-deleted, comments keep a null author
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
