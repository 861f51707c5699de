package services

import (
	"testing"

	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	author   = &models.User{ID: 1, Role: "user"}
	admin    = &models.User{ID: 2, Role: "admin"}
	stranger = &models.User{ID: 3, Role: "user"}
)

func ownComment() models.Comment {
	uid := uint(1)
	return models.Comment{ID: 10, UserID: &uid}
}

func TestAuthorize_Matrix(t *testing.T) {
	visible := ownComment()
	hidden := ownComment()
	hidden.IsHidden = true
	orphaned := models.Comment{ID: 11, UserID: nil}

	tests := []struct {
		name    string
		actor   *models.User
		comment models.Comment
		action  Action
		allowed bool
	}{
		{"author edits own visible comment", author, visible, ActionEdit, true},
		{"author cannot edit while hidden", author, hidden, ActionEdit, false},
		{"admin cannot edit someone else's comment", admin, visible, ActionEdit, false},
		{"stranger cannot edit", stranger, visible, ActionEdit, false},

		{"author hides own comment", author, visible, ActionHide, true},
		{"admin hides any comment", admin, visible, ActionHide, true},
		{"stranger cannot hide", stranger, visible, ActionHide, false},

		{"author deletes own comment", author, visible, ActionDelete, true},
		{"admin deletes any comment", admin, visible, ActionDelete, true},
		{"stranger cannot delete", stranger, visible, ActionDelete, false},

		{"stranger reports a comment", stranger, visible, ActionReport, true},
		{"author cannot report own comment", author, visible, ActionReport, false},
		{"hidden comment cannot be reported", stranger, hidden, ActionReport, false},
		{"orphaned comment can be reported", stranger, orphaned, ActionReport, true},

		{"admin resolves reports", admin, visible, ActionResolveReport, true},
		{"author cannot resolve reports", author, visible, ActionResolveReport, false},

		{"anyone replies to a root comment", stranger, visible, ActionReply, true},

		{"nobody edits an orphaned comment", admin, orphaned, ActionEdit, false},
		{"admin still moderates orphaned comments", admin, orphaned, ActionHide, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Authorize(tc.actor, tc.comment, tc.action)
			assert.Equal(t, tc.allowed, d.Allowed)
			if !tc.allowed {
				assert.NotEmpty(t, d.Reason, "denials must carry a reason")
			}
		})
	}
}

func TestAuthorize_AnonymousDeniedEverything(t *testing.T) {
	c := ownComment()
	for _, action := range []Action{ActionEdit, ActionHide, ActionDelete, ActionReport, ActionResolveReport, ActionReply} {
		d := Authorize(nil, c, action)
		assert.False(t, d.Allowed, "anonymous viewer allowed %s", action)
		assert.Equal(t, ReasonLoginRequired, d.Reason)
	}
}

func TestAuthorize_ReplyDepth(t *testing.T) {
	parentID := uint(10)
	reply := models.Comment{ID: 20, ParentID: &parentID}

	d := Authorize(stranger, reply, ActionReply)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonReplyDepth, d.Reason)
}

// Filing a report blocks a second one from the same user; resolving it
// (report row removed) makes reporting possible again.
func TestAuthorize_ReportExclusivity(t *testing.T) {
	c := ownComment()

	assert.True(t, Authorize(stranger, c, ActionReport).Allowed)

	c.Reports = append(c.Reports, models.Report{UserID: stranger.ID, CommentID: c.ID})
	d := Authorize(stranger, c, ActionReport)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonAlreadyFiled, d.Reason)

	// Someone else's report does not block this user.
	c.Reports = []models.Report{{UserID: admin.ID, CommentID: c.ID}}
	assert.True(t, Authorize(stranger, c, ActionReport).Allowed)

	// Resolved: no reports left.
	c.Reports = nil
	assert.True(t, Authorize(stranger, c, ActionReport).Allowed)
}

func TestAuthorize_UnknownAction(t *testing.T) {
	d := Authorize(author, ownComment(), Action("bump"))
	assert.False(t, d.Allowed)
	assert.NotEmpty(t, d.Reason)
}
