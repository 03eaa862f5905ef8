package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"testcreator_backend/internal/config"
	"testcreator_backend/internal/controller"
	"testcreator_backend/internal/repository"
	"testcreator_backend/internal/service"
	"testcreator_backend/pkg/database"
	"testcreator_backend/pkg/logger"
	"testcreator_backend/pkg/monitoring"
	"testcreator_backend/pkg/security"
	"testcreator_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	token    *repository.TokenRepository
	test     *repository.TestRepository
	question *repository.QuestionRepository
	answer   *repository.AnswerRepository
	result   *repository.ResultRepository
}

type services struct {
	token    *service.TokenService
	user     *service.UserService
	test     *service.TestService
	question *service.QuestionService
	answer   *service.AnswerService
	result   *service.ResultService
	scoring  *service.ScoringService
	testsHub *service.TestsHub
}

type controllers struct {
	token       *controller.TokenController
	user        *controller.UserController
	test        *controller.TestController
	testAttempt *controller.TestAttemptController
	question    *controller.QuestionController
	answer      *controller.AnswerController
	result      *controller.ResultController
	health      *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OnConfigReload 配置热加载入口，由配置监听器调用。
func (a *App) OnConfigReload(cfg *config.Config) {
	a.Config = cfg
	a.services.token.Cfg = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		token:    repository.NewTokenRepository(db),
		test:     repository.NewTestRepository(db),
		question: repository.NewQuestionRepository(db),
		answer:   repository.NewAnswerRepository(db),
		result:   repository.NewResultRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.testsHub = service.NewTestsHub()
	go s.testsHub.Run()

	s.token = service.NewTokenService(repos.user, repos.token, cfg)
	s.user = service.NewUserService(repos.user)
	s.test = service.NewTestService(repos.test, repos.user, rdb, s.testsHub)
	s.question = service.NewQuestionService(repos.question)
	s.answer = service.NewAnswerService(repos.answer)
	s.result = service.NewResultService(repos.result)
	s.scoring = service.NewScoringService()

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		token:       controller.NewTokenController(s.token),
		user:        controller.NewUserController(s.user),
		test:        controller.NewTestController(s.test),
		testAttempt: controller.NewTestAttemptController(s.scoring, s.test),
		question:    controller.NewQuestionController(s.question),
		answer:      controller.NewAnswerController(s.answer),
		result:      controller.NewResultController(s.result),
		health:      controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("testcreator", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

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

	// 先断开 WebSocket 目录推送连接
	if a.services != nil && a.services.testsHub != nil {
		a.services.testsHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
