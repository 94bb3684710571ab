package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edunexus/edunexus-backend/internal/app/controllers"
	"github.com/edunexus/edunexus-backend/internal/app/models"
	"github.com/edunexus/edunexus-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public Course reads ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.GetAllCourses)
		courses.GET("/:id", courseController.GetCourseByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/users/profile", userController.GetProfile)

		coursesProtected := authenticated.Group("/courses")
		{
			// Course management requires an instructor or admin role;
			// ownership checks happen in the service on top of that.
			coursesManaged := coursesProtected.Group("")
			coursesManaged.Use(authMiddleware.RoleRequired(string(models.RoleInstructor), string(models.RoleAdmin)))
			{
				coursesManaged.POST("", courseController.CreateCourse)
				coursesManaged.PUT("/:id", courseController.UpdateCourse)
			}

			coursesAdmin := coursesProtected.Group("")
			coursesAdmin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
				coursesAdmin.POST("/:id/assistants", courseController.AddAssistant)
			}

			coursesStudent := coursesProtected.Group("")
			coursesStudent.Use(authMiddleware.RoleRequired(string(models.RoleStudent)))
			{
				coursesStudent.POST("/:id/enroll", courseController.Enroll)
			}

			// Any authenticated user can post to the course feeds
			coursesProtected.POST("/:id/announcements", courseController.AddAnnouncement)
			coursesProtected.POST("/:id/discussions", courseController.AddDiscussion)
			coursesProtected.POST("/:id/discussions/:discussionId/replies", courseController.AddReply)
		}
	}
}
