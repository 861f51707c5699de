package utils

import (
	"testing"

	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName_FallbackOrder(t *testing.T) {
	u := &models.User{
		DisplayName: "",
		FirstName:   "Ada",
		LastName:    "Lovelace",
		Username:    "ada",
		Email:       "a@x.com",
	}
	assert.Equal(t, "Ada Lovelace", DisplayName(u))

	u.FirstName, u.LastName = "", ""
	assert.Equal(t, "ada", DisplayName(u))

	u.Username = ""
	assert.Equal(t, "a", DisplayName(u))

	u.DisplayName = "Chef Ada"
	assert.Equal(t, "Chef Ada", DisplayName(u))
}

func TestDisplayName_PartialLegalName(t *testing.T) {
	// A lone first name is not enough; fall through to username.
	u := &models.User{FirstName: "Ada", Username: "ada", Email: "a@x.com"}
	assert.Equal(t, "ada", DisplayName(u))
}

func TestDisplayName_DeletedUser(t *testing.T) {
	assert.Equal(t, DeletedUserName, DisplayName(nil))
	assert.Equal(t, DeletedUserEmail, DisplayEmail(nil))

	// Degenerate row with nothing usable still renders something fixed.
	assert.Equal(t, DeletedUserName, DisplayName(&models.User{}))
}
