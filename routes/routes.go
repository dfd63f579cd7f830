package routes

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/parladach/parladach-api/config"
	"github.com/parladach/parladach-api/controllers"
	"github.com/parladach/parladach-api/middleware"
	"github.com/parladach/parladach-api/models"
	"github.com/parladach/parladach-api/services"
	"github.com/parladach/parladach-api/utils"
)

func SetupRouter(r *gin.Engine, db *gorm.DB, s config.Settings, logger *slog.Logger) *gin.Engine {
	hasher := utils.NewPasswordHasher()
	tokens := utils.NewTokenService(s.SecretKey, s.AccessTokenTTL)
	mailer := utils.NewMailer(s)
	photos := utils.NewPhotoStorage(s)

	authService := services.NewAuthService(db, hasher, tokens, logger)
	teacherService := services.NewTeacherService(db, logger, mailer)

	authCtl := controllers.NewAuthController(authService)
	teacherCtl := controllers.NewTeacherController(teacherService, photos)
	adminCtl := controllers.NewAdminTeacherController(teacherService)
	publicCtl := controllers.NewPublicController(teacherService)

	r.Use(middleware.Recovery(logger))

	r.GET("/health", controllers.HealthCheck(db))

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", middleware.AuthMiddleware(db, tokens), authCtl.Me)
		auth.GET("/me/admin-test", middleware.RequireRoles(db, tokens, models.RoleAdmin), authCtl.AdminTest)
	}

	// Dashboards: cada endpoint exige su rol exacto
	r.GET("/student/dashboard", middleware.RequireRoles(db, tokens, models.RoleStudent), controllers.StudentDashboard)
	r.GET("/teacher/dashboard", middleware.RequireRoles(db, tokens, models.RoleTeacher), controllers.TeacherDashboard)
	r.GET("/admin/dashboard", middleware.RequireRoles(db, tokens, models.RoleAdmin), controllers.AdminDashboard)

	teacher := r.Group("/teacher/me/profile")
	{
		teacher.Use(middleware.RequireRoles(db, tokens, models.RoleTeacher))
		teacher.GET("", teacherCtl.GetMyProfile)
		teacher.POST("", teacherCtl.CreateMyProfile)
		teacher.PATCH("", teacherCtl.UpdateMyProfile)
		teacher.POST("/submit", teacherCtl.SubmitMyProfile)
		teacher.POST("/photo", teacherCtl.UploadProfilePhoto)
	}

	admin := r.Group("/admin/teachers")
	{
		admin.Use(middleware.RequireRoles(db, tokens, models.RoleAdmin))
		admin.GET("", adminCtl.List)
		admin.POST("/:id/approve", adminCtl.Approve)
		admin.POST("/:id/pause", adminCtl.Pause)
	}

	r.GET("/public/teachers", publicCtl.ListTeachers)

	return r
}
