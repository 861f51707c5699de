package router

import (
	"github.com/dobromiryor/yum-sub000/internal/handlers"
	"github.com/dobromiryor/yum-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	recipeHandler := handlers.NewRecipeHandler()
	commentHandler := handlers.NewCommentHandler()
	adminHandler := handlers.NewAdminHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// Public Routes
	r.GET("/", recipeHandler.List)
	r.GET("/r/:pid", recipeHandler.Detail)

	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.POST("/r/:pid/comment", commentHandler.Create)
		authorized.POST("/comment/:cid/edit", commentHandler.Edit)
		authorized.POST("/comment/:cid/hide", commentHandler.ToggleHidden)
		authorized.POST("/comment/:cid/report", commentHandler.Report)
		authorized.DELETE("/comment/:cid", commentHandler.Delete)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.DELETE("/notifications/:id", notificationHandler.Delete)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}

	// Admin Routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.GET("/reports", adminHandler.ListReports)
		admin.POST("/reports/:id/resolve", adminHandler.ResolveReport)
	}
}
