package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/dobromiryor/yum-sub000/internal/db"
	"github.com/dobromiryor/yum-sub000/internal/middleware"
	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/dobromiryor/yum-sub000/internal/services"
	"github.com/dobromiryor/yum-sub000/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentHandler struct{}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// loadComment fetches a comment by public id with the associations the
// policy needs (author and active reports).
func loadComment(cid string) (*models.Comment, error) {
	var comment models.Comment
	err := db.DB.Preload("User").Preload("Reports").Preload("Recipe").
		Where("cid = ?", cid).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func invalidateRecipePage(recipeID uint) {
	var recipe models.Recipe
	if err := db.DB.First(&recipe, recipeID).Error; err == nil {
		utils.GetCache().Delete(recipeCacheKey(recipe.Pid))
	}
}

// Create handles both top-level comments and replies. A reply is only
// accepted against a top-level comment; deeper nesting is denied by the
// policy, not silently re-parented.
func (h *CommentHandler) Create(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	pid := c.Param("pid")

	var recipe models.Recipe
	if err := db.DB.Where("pid = ?", pid).First(&recipe).Error; err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	content := c.PostForm("content")
	parentCid := c.PostForm("parent_cid")

	if content == "" {
		c.Redirect(http.StatusFound, "/r/"+pid)
		return
	}

	var parentID *uint
	var parent *models.Comment
	if parentCid != "" {
		var err error
		parent, err = loadComment(parentCid)
		if err != nil {
			RenderError(c, http.StatusNotFound, "Comment not found")
			return
		}
		if d := services.Authorize(user, *parent, services.ActionReply); !d.Allowed {
			RenderError(c, http.StatusForbidden, d.Reason)
			return
		}
		parentID = &parent.ID
	}

	userID := user.ID
	comment := models.Comment{
		Cid:      utils.RandStringBytesMaskImpr(8),
		RecipeID: recipe.ID,
		UserID:   &userID,
		ParentID: parentID,
		Content:  content,
	}

	if err := db.DB.Create(&comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to post comment")
		return
	}

	utils.GetCache().Delete(recipeCacheKey(recipe.Pid))

	// Notify the parent comment's author on reply, the recipe author on
	// a new top-level comment. Never notify yourself.
	go func() {
		if parent != nil {
			if parent.UserID != nil && *parent.UserID != user.ID {
				notification := models.Notification{
					UserID:  *parent.UserID,
					ActorID: &user.ID,
					Type:    models.NotificationTypeReplyComment,
					Reason: fmt.Sprintf("replied to your comment on <a href=\"/r/%s#comment-%s\">%s</a>",
						recipe.Pid, comment.Cid, html.EscapeString(recipe.Title)),
				}
				db.DB.Create(&notification)
			}
		} else if recipe.UserID != user.ID {
			notification := models.Notification{
				UserID:  recipe.UserID,
				ActorID: &user.ID,
				Type:    models.NotificationTypeCommentRecipe,
				Reason: fmt.Sprintf("commented on your recipe <a href=\"/r/%s#comment-%s\">%s</a>",
					recipe.Pid, comment.Cid, html.EscapeString(recipe.Title)),
			}
			db.DB.Create(&notification)
		}
	}()

	c.Redirect(http.StatusFound, "/r/"+pid+"#comment-"+comment.Cid)
}

func (h *CommentHandler) Edit(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	cid := c.Param("cid")

	comment, err := loadComment(cid)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if d := services.Authorize(user, *comment, services.ActionEdit); !d.Allowed {
		RenderError(c, http.StatusForbidden, d.Reason)
		return
	}

	content := c.PostForm("content")
	if content == "" {
		c.Redirect(http.StatusFound, "/r/"+comment.Recipe.Pid)
		return
	}

	comment.Content = content
	if err := db.DB.Save(comment).Error; err != nil {
		RenderError(c, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	utils.GetCache().Delete(recipeCacheKey(comment.Recipe.Pid))
	c.Redirect(http.StatusFound, "/r/"+comment.Recipe.Pid+"#comment-"+comment.Cid)
}

// ToggleHidden flips the hidden flag. The content itself is untouched:
// hidden comments render jumbled and unhiding restores the original.
func (h *CommentHandler) ToggleHidden(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	cid := c.Param("cid")

	comment, err := loadComment(cid)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if d := services.Authorize(user, *comment, services.ActionHide); !d.Allowed {
		RenderError(c, http.StatusForbidden, d.Reason)
		return
	}

	comment.IsHidden = !comment.IsHidden
	if err := db.DB.Model(comment).Update("is_hidden", comment.IsHidden).Error; err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Delete(recipeCacheKey(comment.Recipe.Pid))

	// An admin hiding someone else's comment is a moderation event the
	// author should hear about.
	if user.IsAdmin() && comment.UserID != nil && *comment.UserID != user.ID && comment.IsHidden {
		go func(authorID uint) {
			notification := models.Notification{
				UserID: authorID,
				Type:   models.NotificationTypeModeration,
				Reason: fmt.Sprintf("Your comment on <a href=\"/r/%s#comment-%s\">%s</a> was hidden by a moderator.",
					comment.Recipe.Pid, comment.Cid, html.EscapeString(comment.Recipe.Title)),
			}
			db.DB.Create(&notification)
		}(*comment.UserID)
	}

	c.Status(http.StatusOK)
}

// Delete removes a comment for good, replies included. Hiding is the
// reversible path; deletion is not.
func (h *CommentHandler) Delete(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	cid := c.Param("cid")

	comment, err := loadComment(cid)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if d := services.Authorize(user, *comment, services.ActionDelete); !d.Allowed {
		c.Status(http.StatusForbidden)
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("parent_id = ?", comment.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(comment).Error
	})
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Delete(recipeCacheKey(comment.Recipe.Pid))
	HtmxRedirect(c, "/r/"+comment.Recipe.Pid)
}

// Report files a report against a comment. One active report per
// (user, comment) pair; the policy denies duplicates and the unique
// index backs it up at the write layer.
func (h *CommentHandler) Report(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)
	cid := c.Param("cid")
	reason := reportReason(c)

	comment, err := loadComment(cid)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if d := services.Authorize(user, *comment, services.ActionReport); !d.Allowed {
		RenderError(c, http.StatusForbidden, d.Reason)
		return
	}

	report := models.Report{
		UserID:    user.ID,
		CommentID: comment.ID,
		Reason:    reason,
	}
	if err := db.DB.Create(&report).Error; err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	utils.GetCache().Delete(recipeCacheKey(comment.Recipe.Pid))

	// Fan the report out to every admin.
	go func() {
		var admins []models.User
		if err := db.DB.Where("role = ?", "admin").Find(&admins).Error; err != nil {
			return
		}

		link := fmt.Sprintf("/r/%s#comment-%s", comment.Recipe.Pid, comment.Cid)
		for _, admin := range admins {
			notification := models.Notification{
				UserID:  admin.ID,
				ActorID: &user.ID,
				Type:    models.NotificationTypeReport,
				Reason:  reportNotice(link, comment.Recipe.Title, reason),
			}
			db.DB.Create(&notification)
		}
	}()

	c.String(http.StatusOK, "Reported")
}

// reportReason extracts the reporter's free-text reason. HTMX prompts
// arrive in the HX-Prompt request header; a plain form posts a field.
func reportReason(c *gin.Context) string {
	if reason := c.GetHeader("HX-Prompt"); reason != "" {
		return reason
	}
	return c.PostForm("reason")
}

// reportNotice builds the notification message shown to admins. The
// notification template renders it as HTML, so the user-supplied parts
// are escaped here.
func reportNotice(link, title, reason string) string {
	return fmt.Sprintf("reported <a href=\"%s\">a comment</a> on %s, reason: %s",
		link, html.EscapeString(title), html.EscapeString(reason))
}
