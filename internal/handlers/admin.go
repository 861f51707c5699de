package handlers

import (
	"net/http"

	"github.com/dobromiryor/yum-sub000/internal/db"
	"github.com/dobromiryor/yum-sub000/internal/middleware"
	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/dobromiryor/yum-sub000/internal/services"
	"github.com/dobromiryor/yum-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// AdminRequired middleware helper
func (h *AdminHandler) checkAdmin(c *gin.Context) *models.User {
	u, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil
	}
	user := u.(*models.User)
	if user.Role != "admin" {
		return nil
	}
	return user
}

// ListReports shows the open report queue, newest first.
func (h *AdminHandler) ListReports(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var reports []models.Report
	db.DB.Preload("User").Preload("Comment").Preload("Comment.User").Preload("Comment.Recipe").
		Order("created_at DESC").
		Find(&reports)

	Render(c, http.StatusOK, "admin/reports.html", gin.H{
		"Title":   "Reports",
		"Reports": reports,
	})
}

// ResolveReport removes a report row, which also restores the
// reporter's ability to report the comment again.
func (h *AdminHandler) ResolveReport(c *gin.Context) {
	admin := h.checkAdmin(c)
	if admin == nil {
		c.Status(http.StatusForbidden)
		return
	}

	id := utils.StringToInt(c.Param("id"))
	var report models.Report
	if err := db.DB.Preload("Comment").First(&report, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if d := services.Authorize(admin, report.Comment, services.ActionResolveReport); !d.Allowed {
		c.Status(http.StatusForbidden)
		return
	}

	db.DB.Delete(&report)
	invalidateRecipePage(report.Comment.RecipeID)

	c.Status(http.StatusOK)
}
