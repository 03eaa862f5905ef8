package app

import (
	"testcreator_backend/docs"
	"testcreator_backend/internal/config"
	"testcreator_backend/internal/middleware"
	"testcreator_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（无需登录）
	a.registerPublicRoutes(router, c)

	// 2. 试卷目录与答题
	a.registerTestRoutes(router, c, cfg)

	// 3. 题目、选项、寄语的维护接口
	a.registerContentRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.Check)
		public.POST("/token/auth", c.token.Auth)
		public.POST("/user", c.user.Register)

		// 答题视图与判分对游客开放
		public.GET("/testAttempt/:id", c.testAttempt.Get)
		public.POST("/testAttempt", c.testAttempt.CalculateResult)
	}

	// 目录变更的 WebSocket 推送
	router.GET("/api/tests/ws", func(ctx *gin.Context) {
		a.services.testsHub.ServeWS(ctx.Writer, ctx.Request)
	})
}

func (a *App) registerTestRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	tests := router.Group("/api/test")
	{
		// 列表与详情：可选认证，登录用户能看到自己可编辑的标记
		tests.GET("", middleware.TryAuthMiddleware(cfg), c.test.List)
		tests.GET("/:id", middleware.TryAuthMiddleware(cfg), c.test.Get)
		tests.GET("/search/:num", middleware.TryAuthMiddleware(cfg), c.test.Search)

		// 浏览计数允许匿名上报
		tests.PATCH("", c.test.UpdateViewCount)

		authorized := tests.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("", c.test.Post)
			authorized.PUT("", c.test.Put)
			authorized.DELETE("/:id", c.test.Delete)
		}
	}
}

func (a *App) registerContentRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	api := router.Group("/api")
	{
		api.GET("/question", c.question.List)
		api.GET("/question/:id", c.question.Get)
		api.GET("/answer", c.answer.List)
		api.GET("/answer/:id", c.answer.Get)
		api.GET("/result", c.result.List)
		api.GET("/result/:id", c.result.Get)

		api.GET("/user/me", middleware.AuthMiddleware(cfg), c.user.Me)

		authorized := api.Group("")
		authorized.Use(middleware.AuthMiddleware(cfg))
		{
			authorized.POST("/question", c.question.Post)
			authorized.PUT("/question", c.question.Put)
			authorized.DELETE("/question/:id", c.question.Delete)

			authorized.POST("/answer", c.answer.Post)
			authorized.PUT("/answer", c.answer.Put)
			authorized.DELETE("/answer/:id", c.answer.Delete)

			authorized.POST("/result", c.result.Post)
			authorized.PUT("/result", c.result.Put)
			authorized.DELETE("/result/:id", c.result.Delete)
		}
	}
}
