package routes

import (
	"alumni-network-api/controllers"
	"alumni-network-api/middleware"
	"alumni-network-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "Alumni Network API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// Auth management
			protected.POST("/logout", controllers.Logout)
			protected.POST("/refresh", controllers.RefreshToken)

			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Notifications
			protected.GET("/notifications", controllers.GetNotifications)
			protected.PUT("/notifications/:id/read", controllers.MarkNotificationRead)

			// Submissions (owner side of the approval workflow)
			submissions := protected.Group("/submissions")
			{
				submissions.POST("", controllers.CreateSubmission)
				submissions.POST("/:id/resubmit", controllers.ResubmitSubmission)
				submissions.GET("/mine", controllers.GetMySubmissions)
			}

			// Review queues and decisions (admins and coordinators only)
			review := protected.Group("/review")
			review.Use(middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator))
			{
				review.GET("/pending", controllers.GetPendingEntities)
				review.GET("/approved", controllers.GetApprovedEntities)
				review.GET("/stats", controllers.GetReviewStats)
				review.POST("/decisions", controllers.SubmitDecision)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			dashboard.Use(middleware.RequireRole(models.RoleAdmin, models.RoleCoordinator))
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}
		}
	}
}
