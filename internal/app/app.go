package app

import (
	"center_backend/internal/config"
	"center_backend/internal/controller"
	"center_backend/internal/repository"
	"center_backend/internal/service"
	"center_backend/internal/sso"
	"center_backend/pkg/database"
	"center_backend/pkg/logger"
	"center_backend/pkg/monitoring"
	"center_backend/pkg/security"
	"center_backend/pkg/tracing"
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	services *services

	// 后台协程（限流清理等）随 cancel 退出
	ctx    context.Context
	cancel context.CancelFunc

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
	tracerProvider  *sdktrace.TracerProvider
}

type repositories struct {
	user    *repository.UserRepository
	role    *repository.RoleRepository
	checkin *repository.CheckinRepository
	collect *repository.CollectRepository
}

type services struct {
	session *service.SessionService
	auth    *service.AuthService
	user    *service.UserService
	storage *service.StorageService
	checkin *service.CheckinService
	collect *service.CollectService
	lottery *service.LotteryService
}

type controllers struct {
	auth    *controller.AuthController
	admin   *controller.AdminController
	checkin *controller.CheckinController
	collect *controller.CollectController
	lottery *controller.LotteryController
	upload  *controller.UploadController
	page    *controller.PageController
	health  *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件变更后依次通知各组件
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := append([]func(*config.Config){}, a.configCallbacks...)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		role:    repository.NewRoleRepository(db),
		checkin: repository.NewCheckinRepository(db),
		collect: repository.NewCollectRepository(db),
	}
}

// newAuthority 未启用统一认证时返回 nil
func newAuthority(cfg *config.SSOConfig) sso.Authority {
	if !cfg.Enabled {
		return nil
	}
	return sso.NewCASClient(cfg, nil)
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.session = service.NewSessionService(rdb, cfg.Session.Secret, cfg.Session.TTL)
	s.auth = service.NewAuthService(repos.user, s.session, newAuthority(&cfg.SSO))
	s.user = service.NewUserService(repos.user, cfg.Admin.SuperTag)
	s.storage = service.NewStorageService(&cfg.Storage)
	s.checkin = service.NewCheckinService(repos.checkin, repos.user, cfg.Tasks.EnforceExpiry)
	s.collect = service.NewCollectService(repos.collect, repos.user, s.storage, cfg.Tasks.EnforceExpiry)
	s.lottery = service.NewLotteryService(repos.user, repos.role, cfg.Lottery.EveryoneLabel)

	return s
}

func (a *App) initControllers(s *services, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:    controller.NewAuthController(s.auth),
		admin:   controller.NewAdminController(s.user),
		checkin: controller.NewCheckinController(s.checkin),
		collect: controller.NewCollectController(s.collect),
		lottery: controller.NewLotteryController(s.lottery),
		upload:  controller.NewUploadController(s.storage),
		page:    controller.NewPageController(&cfg.App),
		health:  controller.NewHealthController(db, rdb),
	}
}

// registerConfigCallbacks 统一认证和抽签配置支持热更新
func (a *App) registerConfigCallbacks(s *services) {
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.auth.SetAuthority(newAuthority(&cfg.SSO))
	})
	a.RegisterConfigCallback(func(cfg *config.Config) {
		s.lottery.SetEveryoneLabel(cfg.Lottery.EveryoneLabel)
	})
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 && cfg.RateLimit.WindowMinutes > 0 {
		router.Use(security.RateLimiter(a.ctx, cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.TTL / time.Second * sessionCookieFactor),
		HttpOnly: true,
		Secure:   cfg.Session.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(cfg.Session.CookieName, store))
}

// cookie 与令牌的最长有效期一致，实际过期由 Redis 中的会话决定
const sessionCookieFactor = 7

func loadTemplates(router *gin.Engine, glob string) {
	matches, err := filepath.Glob(glob)
	if err != nil || len(matches) == 0 {
		logger.Log.Warn("No page templates found", zap.String("glob", glob))
		return
	}
	router.LoadHTMLGlob(glob)
}

// New 用已建立的数据库与 Redis 连接组装应用
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}
	app.ctx, app.cancel = context.WithCancel(context.Background())

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, cfg, db, rdb)
	app.registerConfigCallbacks(services)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)
	loadTemplates(router, cfg.Server.TemplateGlob)
	app.registerRoutes(router, controllers, services)

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == gin.DebugMode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := New(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("center-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	a.cancel()
	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
