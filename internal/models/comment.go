package models

import (
	"time"
)

type Comment struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Cid      string   `gorm:"uniqueIndex;size:8;not null" json:"cid"`
	RecipeID uint     `gorm:"not null;index" json:"recipe_id"`
	Recipe   Recipe   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"recipe"`
	UserID   *uint    `gorm:"index" json:"user_id"` // Nullable: author account may be deleted, comment stays
	User     *User    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"user"`
	ParentID *uint    `gorm:"index" json:"parent_id"` // Nullable for top-level comments
	Parent   *Comment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"parent"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	IsHidden bool     `gorm:"default:false;index" json:"is_hidden"` // Moderated: content jumbled on display, kept at rest
	Reports  []Report `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"reports"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsEdited reports whether the comment was changed after creation.
// GORM stamps both timestamps from the same clock reading on insert,
// so any drift means a later write.
func (c *Comment) IsEdited() bool {
	return c.UpdatedAt.After(c.CreatedAt)
}

// AuthoredBy reports whether the given user wrote this comment.
// Always false for orphaned comments (deleted author).
func (c *Comment) AuthoredBy(userID uint) bool {
	return c.UserID != nil && *c.UserID == userID
}

// ReportedBy reports whether the given user has an active report on
// this comment. Requires Reports to be preloaded.
func (c *Comment) ReportedBy(userID uint) bool {
	for _, r := range c.Reports {
		if r.UserID == userID {
			return true
		}
	}
	return false
}
