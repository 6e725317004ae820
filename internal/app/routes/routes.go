package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sentimente/backend/internal/app/controllers"
	"github.com/sentimente/backend/internal/app/models/dto"
	"github.com/sentimente/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	classController *controllers.ClassController,
	emotionController *controllers.EmotionController,
	dateController *controllers.DateController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/dashboard", authController.Dashboard)

		classes := authenticated.Group("/classes")
		{
			classes.POST("", classController.CreateClass)
			classes.GET("", classController.ListClasses)
			classes.GET("/:id", classController.GetClass)
		}

		emotions := authenticated.Group("/emotions")
		{
			emotions.GET("", emotionController.TallyVotes)
			emotions.GET("/student/:studentId", emotionController.StudentHistory)
			emotions.POST("/:classId/student/:studentId", emotionController.RecordEmotion)
		}

		dates := authenticated.Group("/dates")
		{
			dates.GET("", dateController.ListDates)
			dates.POST("", dateController.AddDate)
			dates.DELETE("/:id", dateController.DeleteDate)
		}
	}

	// Health check endpoint (public)
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
