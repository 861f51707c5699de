package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCommentIsEdited(t *testing.T) {
	now := time.Now()

	// Fresh insert: both timestamps from the same clock reading.
	c := Comment{CreatedAt: now, UpdatedAt: now}
	assert.False(t, c.IsEdited())

	// An edit right after posting still counts as an edit.
	c.UpdatedAt = now.Add(200 * time.Millisecond)
	assert.True(t, c.IsEdited())
}
