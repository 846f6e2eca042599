package api

import (
	"net/http"

	analyticsDelivery "ankiplan-backend/internal/analytics/delivery"
	authDelivery "ankiplan-backend/internal/auth/delivery"
	authUsecasePkg "ankiplan-backend/internal/auth/usecase"
	groupDelivery "ankiplan-backend/internal/group/delivery"
	"ankiplan-backend/internal/motivation"
	taskDelivery "ankiplan-backend/internal/task/delivery"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	r *gin.Engine,
	authUsecase authUsecasePkg.AuthUsecase,
	authHandler *authDelivery.AuthHandler,
	taskHandler *taskDelivery.TaskHandler,
	groupHandler *groupDelivery.GroupHandler,
	analyticsHandler *analyticsDelivery.AnalyticsHandler,
	motivationHandler *motivation.Handler,
) {
	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authDelivery.AuthMiddleware(authUsecase), authHandler.Me)
		}

		// Task routes (protected)
		tasks := api.Group("/tasks")
		tasks.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			tasks.GET("", taskHandler.GetTasks)
			tasks.POST("", taskHandler.CreateTask)
			tasks.GET("/priority_queue", taskHandler.GetPriorityQueue)
			tasks.GET("/:id", taskHandler.GetTaskByID)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.PATCH("/:id/status", taskHandler.UpdateTaskStatus)
			tasks.POST("/:id/complete", taskHandler.CompleteTask)
			tasks.POST("/:id/skip", taskHandler.SkipTask)
			tasks.POST("/:id/proof", taskHandler.UploadProof)
		}

		// Group routes (protected)
		groups := api.Group("/groups")
		groups.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			groups.GET("", groupHandler.MyGroups)
			groups.POST("", groupHandler.CreateGroup)
			groups.GET("/:id", groupHandler.GetGroup)
			groups.POST("/:id/join", groupHandler.JoinGroup)
		}

		// Leaderboard routes (protected)
		leaderboard := api.Group("/leaderboard")
		leaderboard.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			leaderboard.GET("/all-time", groupHandler.AllTimeLeaderboard)
			leaderboard.GET("/group/:id", groupHandler.GroupLeaderboard)
		}

		// Analytics routes (protected)
		analytics := api.Group("/analytics")
		analytics.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			analytics.GET("/me", analyticsHandler.Dashboard)
			analytics.GET("/me/range", analyticsHandler.Range)
		}

		// AI assistant routes (protected)
		ai := api.Group("/ai")
		ai.Use(authDelivery.AuthMiddleware(authUsecase))
		{
			ai.GET("/motivate", motivationHandler.Motivate)
			ai.GET("/suggest", motivationHandler.Suggest)
		}
	}
}
