package services

import (
	"github.com/dobromiryor/yum-sub000/internal/models"
)

// Action is a moderation or write operation a viewer may attempt
// against a comment.
type Action string

const (
	ActionEdit          Action = "edit"
	ActionHide          Action = "hide" // covers unhide, same rule
	ActionDelete        Action = "delete"
	ActionReport        Action = "report"
	ActionResolveReport Action = "resolve_report"
	ActionReply         Action = "reply"
)

// Decision is the outcome of an authorization check. Denial is a normal
// value, not an error: handlers translate it into a 403 page, templates
// use it to decide which buttons to show.
type Decision struct {
	Allowed bool
	Reason  string
}

const (
	ReasonLoginRequired = "login required"
	ReasonNotAuthor     = "only the author may do this"
	ReasonNotAuthorized = "only the author or an administrator may do this"
	ReasonAdminOnly     = "administrators only"
	ReasonHidden        = "comment is hidden"
	ReasonOwnComment    = "you cannot report your own comment"
	ReasonAlreadyFiled  = "you already reported this comment"
	ReasonReplyDepth    = "replies cannot be replied to"
)

func allow() Decision { return Decision{Allowed: true} }
func deny(reason string) Decision { return Decision{Reason: reason} }

var policyRules = map[Action]func(actor *models.User, c models.Comment) Decision{
	ActionEdit:          canEdit,
	ActionHide:          canModerate,
	ActionDelete:        canModerate,
	ActionReport:        canReport,
	ActionResolveReport: canResolveReport,
	ActionReply:         canReply,
}

// Authorize decides whether actor may perform action on the comment.
// The rules for all actions live here rather than inline at each call
// site, so handlers and templates cannot drift apart. A nil actor is an
// anonymous viewer and is denied every action. For ActionReport the
// comment's Reports must be preloaded.
func Authorize(actor *models.User, c models.Comment, action Action) Decision {
	if actor == nil {
		return deny(ReasonLoginRequired)
	}
	rule, ok := policyRules[action]
	if !ok {
		return deny("unknown action: " + string(action))
	}
	return rule(actor, c)
}

// Edit: author only, and never while hidden. Admins moderate via
// hide/delete, they do not rewrite other people's words.
func canEdit(actor *models.User, c models.Comment) Decision {
	if !c.AuthoredBy(actor.ID) {
		return deny(ReasonNotAuthor)
	}
	if c.IsHidden {
		return deny(ReasonHidden)
	}
	return allow()
}

// Hide/unhide and delete share a rule: author or admin.
func canModerate(actor *models.User, c models.Comment) Decision {
	if c.AuthoredBy(actor.ID) || actor.IsAdmin() {
		return allow()
	}
	return deny(ReasonNotAuthorized)
}

func canReport(actor *models.User, c models.Comment) Decision {
	if c.AuthoredBy(actor.ID) {
		return deny(ReasonOwnComment)
	}
	if c.ReportedBy(actor.ID) {
		return deny(ReasonAlreadyFiled)
	}
	if c.IsHidden {
		return deny(ReasonHidden)
	}
	return allow()
}

func canResolveReport(actor *models.User, _ models.Comment) Decision {
	if actor.IsAdmin() {
		return allow()
	}
	return deny(ReasonAdminOnly)
}

// Reply: only against a top-level comment, keeping threads one level
// deep. The comment passed in is the would-be parent.
func canReply(_ *models.User, c models.Comment) Decision {
	if c.ParentID != nil {
		return deny(ReasonReplyDepth)
	}
	return allow()
}
