package app

import (
	"classboard_backend/docs"
	"classboard_backend/internal/config"
	"classboard_backend/internal/middleware"
	"classboard_backend/internal/model"
	"classboard_backend/internal/session"
	"classboard_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, policy session.Policy, store session.Store, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由
	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.POST("/login", c.auth.Login)
		// 登出不设认证门，带了无效令牌也照样清理并放行
		api.POST("/logout", middleware.TryAuthMiddleware(policy, store), c.auth.Logout)
	}

	// 认证路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(policy, store))
	{
		authGroup.GET("/profile", c.auth.Profile)

		// 三个首页按角色分门
		authGroup.GET("/student-dashboard", c.dashboard.StudentDashboard)
		authGroup.GET("/teacher-dashboard", middleware.RoleMiddleware(model.RoleTeacher), c.dashboard.TeacherDashboard)
		authGroup.GET("/admin-dashboard", middleware.RoleMiddleware(model.RoleAdmin), c.dashboard.AdminDashboard)

		authGroup.GET("/classes", c.class.ListClasses)

		classGroup := authGroup.Group("/classes/:classId")
		{
			classGroup.GET("", c.class.GetClass)
			classGroup.GET("/stream", c.class.Stream)
			classGroup.GET("/classwork", c.class.Classwork)
			classGroup.GET("/quizzes", c.class.Quizzes)
			classGroup.GET("/discussions", c.class.Discussions)
			classGroup.GET("/resources", c.class.Resources)
			classGroup.GET("/people", c.class.People)

			// 教师工具
			teacherGroup := classGroup.Group("")
			teacherGroup.Use(middleware.RoleMiddleware(model.RoleTeacher))
			{
				teacherGroup.GET("/grades", c.grade.Gradebook)
				teacherGroup.GET("/analytics", c.analytics.ClassAnalytics)
				teacherGroup.POST("/resources/upload", c.resource.Upload)
			}
		}
	}
}
