package handlers

import (
	"fmt"
	"html/template"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/dobromiryor/yum-sub000/internal/db"
	"github.com/dobromiryor/yum-sub000/internal/middleware"
	"github.com/dobromiryor/yum-sub000/internal/models"
	"github.com/dobromiryor/yum-sub000/internal/services"
	"github.com/dobromiryor/yum-sub000/internal/utils"

	"github.com/gin-gonic/gin"
)

type RecipeHandler struct{}

func NewRecipeHandler() *RecipeHandler {
	return &RecipeHandler{}
}

// CommentView is a comment prepared for rendering: display name
// resolved, content jumbled when hidden, and the viewer's allowed
// actions precomputed so templates never re-derive policy.
type CommentView struct {
	models.Comment
	AuthorName  string
	ContentHTML template.HTML
	Edited      bool
	Reported    bool // any active report; shown to admins only
	CanEdit     bool
	CanHide     bool
	CanDelete   bool
	CanReport   bool
	CanReply    bool
}

// ThreadView is one rendered thread: a root comment and its replies.
type ThreadView struct {
	CommentView
	Replies []CommentView
}

// recipePage is the shared (viewer-independent) data cached per recipe.
type recipePage struct {
	Recipe   models.Recipe
	Comments []models.Comment
}

func recipeCacheKey(pid string) string {
	return fmt.Sprintf("recipe:detail:shared:%s", pid)
}

// fillCommentCounts batch-loads comment counts for a recipe listing.
func fillCommentCounts(recipes []models.Recipe) map[uint]int {
	countMap := make(map[uint]int)
	if len(recipes) == 0 {
		return countMap
	}

	recipeIDs := make([]uint, len(recipes))
	for i, r := range recipes {
		recipeIDs[i] = r.ID
	}

	type CountResult struct {
		RecipeID uint
		Count    int
	}
	var results []CountResult
	db.DB.Model(&models.Comment{}).
		Select("recipe_id, COUNT(*) as count").
		Where("recipe_id IN ?", recipeIDs).
		Group("recipe_id").
		Scan(&results)

	for _, r := range results {
		countMap[r.RecipeID] = r.Count
	}
	return countMap
}

func (h *RecipeHandler) List(c *gin.Context) {
	page := 1
	if p := c.Query("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}

	perPage := 30
	offset := (page - 1) * perPage

	var total int64
	db.DB.Model(&models.Recipe{}).Count(&total)

	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	var recipes []models.Recipe
	db.DB.Preload("User").
		Order("created_at DESC").
		Limit(perPage).
		Offset(offset).
		Find(&recipes)

	counts := fillCommentCounts(recipes)

	Render(c, http.StatusOK, "recipe/list.html", gin.H{
		"Title":         "Recipes",
		"Recipes":       recipes,
		"CommentCounts": counts,
		"CurrentPage":   page,
		"TotalPages":    totalPages,
	})
}

// Detail renders a recipe with its comment threads. The recipe row and
// comment rows are cached shared across viewers; the thread view is
// rebuilt per request because jumbled content must re-randomize on
// every render and the action buttons depend on who is looking.
func (h *RecipeHandler) Detail(c *gin.Context) {
	pid := c.Param("pid")
	viewer := middleware.CurrentUser(c)

	var page recipePage
	cached := utils.GetCache().Get(recipeCacheKey(pid))
	if data, ok := cached.(recipePage); ok {
		page = data
	} else {
		if err := db.DB.Preload("User").Where("pid = ?", pid).First(&page.Recipe).Error; err != nil {
			RenderError(c, http.StatusNotFound, "Recipe not found")
			return
		}

		db.DB.Preload("User").Preload("Reports").
			Where("recipe_id = ?", page.Recipe.ID).
			Order("created_at ASC").
			Find(&page.Comments)

		utils.GetCache().Set(recipeCacheKey(pid), page, 5*time.Minute)
	}

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	threads := services.BuildThread(page.Comments)

	threadViews := make([]ThreadView, len(threads))
	for i, thread := range threads {
		threadViews[i] = ThreadView{
			CommentView: buildCommentView(thread.Comment, viewer, rnd),
		}
		threadViews[i].Replies = make([]CommentView, len(thread.Replies))
		for j, reply := range thread.Replies {
			threadViews[i].Replies[j] = buildCommentView(reply, viewer, rnd)
		}
	}

	Render(c, http.StatusOK, "recipe/detail.html", gin.H{
		"Title":        page.Recipe.Title,
		"Recipe":       page.Recipe,
		"Description":  utils.RenderMarkdown(page.Recipe.Description),
		"Threads":      threadViews,
		"CommentCount": len(page.Comments),
	})
}

func buildCommentView(comment models.Comment, viewer *models.User, rnd *rand.Rand) CommentView {
	content := services.RenderableContent(comment, rnd)

	return CommentView{
		Comment:     comment,
		AuthorName:  utils.DisplayName(comment.User),
		ContentHTML: utils.RenderMarkdown(content),
		Edited:      comment.IsEdited(),
		Reported:    viewer.IsAdmin() && len(comment.Reports) > 0,
		CanEdit:     services.Authorize(viewer, comment, services.ActionEdit).Allowed,
		CanHide:     services.Authorize(viewer, comment, services.ActionHide).Allowed,
		CanDelete:   services.Authorize(viewer, comment, services.ActionDelete).Allowed,
		CanReport:   services.Authorize(viewer, comment, services.ActionReport).Allowed,
		CanReply:    services.Authorize(viewer, comment, services.ActionReply).Allowed,
	}
}
