package app

import (
	"center_backend/docs"
	"center_backend/internal/middleware"
	"center_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 页面
	a.registerPageRoutes(router, c, s)

	// 2. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 3. 需要登录的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(s.session))
	{
		a.registerAdminRoutes(authGroup, c)
		a.registerCheckinRoutes(authGroup, c)
		a.registerCollectRoutes(authGroup, c)
		a.registerLotteryRoutes(authGroup, c)
	}
}

func (a *App) registerPageRoutes(router *gin.Engine, c *controllers, s *services) {
	router.GET("/", c.page.Index)
	router.GET("/login", middleware.OptionalAuthMiddleware(s.session), c.page.Login)
	router.GET("/admin", middleware.PageAuthMiddleware(s.session), c.page.Admin)
	// 浏览器直接访问，未登录同样回到登录页
	router.GET("/api/logout", middleware.PageAuthMiddleware(s.session), c.auth.Logout)

	// 已上传文件，任意存储后端都经由此处读取
	router.GET("/upload/*filepath", c.upload.Serve)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	router.GET("/api", c.page.Meta)

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)

		// 学生端提交
		public.POST("/checkin/do", c.checkin.Do)
		public.GET("/checkin/task", c.checkin.Tasks)
		public.POST("/collect/do", c.collect.Do)
		public.GET("/collect/task", c.collect.Tasks)
		public.POST("/upload", c.upload.Upload)
	}
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/user", c.auth.GetUser)

	admin := rg.Group("/admin")
	{
		admin.POST("/add", c.admin.Add)
		admin.POST("/delete", c.admin.Delete)
		admin.POST("/edit", c.admin.Edit)
	}
}

func (a *App) registerCheckinRoutes(rg *gin.RouterGroup, c *controllers) {
	checkin := rg.Group("/checkin")
	{
		checkin.POST("/create", c.checkin.Create)
		checkin.POST("/leave", c.checkin.Leave)
		checkin.GET("/list", c.checkin.List)
		checkin.GET("/record", c.checkin.Record)
	}
}

func (a *App) registerCollectRoutes(rg *gin.RouterGroup, c *controllers) {
	collect := rg.Group("/collect")
	{
		collect.POST("/create", c.collect.Create)
		collect.GET("/list", c.collect.List)
		collect.GET("/record", c.collect.Record)
		collect.GET("/download", c.collect.Download)
	}
}

func (a *App) registerLotteryRoutes(rg *gin.RouterGroup, c *controllers) {
	lottery := rg.Group("/lottery")
	{
		lottery.GET("/list", c.lottery.List)
		lottery.POST("/do", c.lottery.Do)
	}
}
