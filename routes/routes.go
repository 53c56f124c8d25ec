package routes

import (
	"pifah-api/controllers"
	"pifah-api/middleware"
	"pifah-api/services"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication)
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)
			public.POST("/register", controllers.Register)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "PIFAH Investment API is running",
				})
			})

			// Reference data for the map
			public.GET("/countries", controllers.GetCountries)
			public.GET("/countries/:id", controllers.GetCountry)
			public.GET("/recs", controllers.GetRECs)
			public.GET("/region-colors", controllers.GetRegionColors)
			public.GET("/branding", controllers.GetBranding)

			// Public map data: approved projects only
			public.GET("/projects/public", controllers.GetPublicProjects)
			public.GET("/statistics/countries", controllers.GetPublicCountryStatistics)
			public.GET("/statistics/overview", controllers.GetOverviewStatistics)

			// PIFAH assistant
			public.POST("/assistant/chat", controllers.AssistantChat)
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Projects
			projects := protected.Group("/projects")
			{
				// Any authenticated role may submit and list (listing is
				// scoped to own submissions inside the handler for
				// non-privileged roles)
				projects.POST("", middleware.RequirePermission(services.OpSubmitProject), controllers.CreateProject)
				projects.GET("", controllers.GetProjects)
				projects.GET("/:id", controllers.GetProject)

				// Owner edit while pending; admin escape hatch
				projects.PUT("/:id", controllers.UpdateProject)

				// Workflow transitions
				projects.PUT("/:id/review", middleware.RequirePermission(services.OpReviewProject), controllers.ReviewProject)
				projects.PUT("/:id/decision", middleware.RequirePermission(services.OpApproveRejectProject), controllers.DecideProject)

				// Admin delete
				projects.DELETE("/:id", middleware.RequireAdmin(), controllers.DeleteProject)
			}

			// Privileged statistics: every status, with map display colors
			protected.GET("/statistics/countries/privileged",
				middleware.RequirePermission(services.OpViewAllProjects),
				controllers.GetPrivilegedCountryStatistics)

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.GET("/unread-count", controllers.GetUnreadNotificationCount)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}

			// Country reference management
			countries := protected.Group("/countries")
			countries.Use(middleware.RequirePermission(services.OpManageCountries))
			{
				countries.POST("", controllers.CreateCountry)
				countries.PUT("/:id", controllers.UpdateCountry)
				countries.DELETE("/:id", controllers.DeleteCountry)
			}

			// Application settings
			settings := protected.Group("")
			settings.Use(middleware.RequirePermission(services.OpManageSettings))
			{
				settings.PUT("/region-colors", controllers.UpdateRegionColors)
				settings.PUT("/branding", controllers.UpdateBranding)
			}

			// User management
			users := protected.Group("/users")
			users.Use(middleware.RequirePermission(services.OpManageUsers))
			{
				users.GET("", controllers.GetUsers)
				users.PUT("/:id/role", controllers.UpdateUserRole)
			}
		}
	}
}
