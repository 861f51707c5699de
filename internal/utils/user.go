package utils

import (
	"math/rand"
	"strings"

	"github.com/dobromiryor/yum-sub000/internal/models"
)

// Placeholder identity shown for comments whose author account was
// deleted. The comment itself is retained.
const (
	DeletedUserName  = "Deleted User"
	DeletedUserEmail = "deleted@user.com"
)

// DisplayName resolves the name shown next to a comment or recipe.
// Fallback order is fixed: preferred display name, then first+last name
// (only when both are set), then username, then the local part of the
// email. A nil user resolves to the deleted-user placeholder.
func DisplayName(u *models.User) string {
	if u == nil {
		return DeletedUserName
	}
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.FirstName != "" && u.LastName != "" {
		return u.FirstName + " " + u.LastName
	}
	if u.Username != "" {
		return u.Username
	}
	if i := strings.Index(u.Email, "@"); i > 0 {
		return u.Email[:i]
	}
	return DeletedUserName
}

// DisplayEmail resolves the contact address shown on profile surfaces.
func DisplayEmail(u *models.User) string {
	if u == nil || u.Email == "" {
		return DeletedUserEmail
	}
	return u.Email
}

// GetRandomEmoji returns a random emoji used as the default avatar.
func GetRandomEmoji() string {
	emojis := []string{"🍳", "🥘", "🍲", "🥗", "🍜", "🍝", "🥧", "🍰", "🧁", "🥖", "🧀", "🍅"}
	return emojis[rand.Intn(len(emojis))]
}
