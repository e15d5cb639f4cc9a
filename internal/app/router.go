package app

import (
	"career_guide_backend/docs"
	"career_guide_backend/internal/config"
	"career_guide_backend/internal/middleware"
	"career_guide_backend/internal/model"
	"career_guide_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 2. 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)

	// 测评题目与维度（学生视图不含权重与维度映射）
	rg.GET("/questions", c.catalog.GetStudentQuestions)
	rg.GET("/aptitudes", c.catalog.ListAptitudes)

	// 测评提交与结果
	rg.POST("/tests", c.test.SubmitTest)
	rg.GET("/tests", c.test.ListMyTests)
	rg.GET("/tests/:id/results", c.test.GetResults)

	// 职业与大学浏览
	rg.GET("/careers", c.career.List)
	rg.GET("/careers/:id", c.career.Get)
	rg.GET("/universities", c.university.List)
	rg.GET("/universities/:id", c.university.Get)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.POST("/aptitudes", c.catalog.CreateAptitude)
		admin.PUT("/aptitudes/:id", c.catalog.UpdateAptitude)
		admin.DELETE("/aptitudes/:id", c.catalog.DeleteAptitude)

		admin.POST("/questions", c.catalog.CreateQuestion)
		admin.GET("/questions", c.catalog.ListQuestions)
		admin.GET("/questions/:id", c.catalog.GetQuestion)
		admin.PUT("/questions/:id", c.catalog.UpdateQuestion)
		admin.DELETE("/questions/:id", c.catalog.DeleteQuestion)
		admin.POST("/questions/:id/options", c.catalog.AddOption)
		admin.DELETE("/options/:id", c.catalog.DeleteOption)

		admin.POST("/careers", c.career.Create)
		admin.PUT("/careers/:id", c.career.Update)
		admin.DELETE("/careers/:id", c.career.Delete)

		admin.POST("/universities", c.university.Create)
		admin.PUT("/universities/:id", c.university.Update)
		admin.DELETE("/universities/:id", c.university.Delete)
		admin.POST("/universities/:id/logo", c.university.UploadLogo)
	}
}
