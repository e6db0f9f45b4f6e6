package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classboard_backend/internal/config"
	"classboard_backend/internal/controller"
	"classboard_backend/internal/fixture"
	"classboard_backend/internal/repository"
	"classboard_backend/internal/repository/gormdb"
	"classboard_backend/internal/repository/memdb"
	"classboard_backend/internal/service"
	"classboard_backend/internal/session"
	"classboard_backend/pkg/database"
	"classboard_backend/pkg/logger"
	"classboard_backend/pkg/monitoring"
	"classboard_backend/pkg/security"
	"classboard_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	tracerProvider *sdktrace.TracerProvider
}

type services struct {
	auth      *service.AuthService
	classroom *service.ClassroomService
	dashboard *service.DashboardService
	grade     *service.GradeService
	analytics *service.AnalyticsService
	storage   *service.StorageService
	resource  *service.ResourceService
}

type controllers struct {
	auth      *controller.AuthController
	dashboard *controller.DashboardController
	class     *controller.ClassController
	grade     *controller.GradeController
	analytics *controller.AnalyticsController
	resource  *controller.ResourceController
	health    *controller.HealthController
}

// initCatalog 按配置选择目录后端：memory 走内置数据，mysql 走 gorm
func (a *App) initCatalog(cfg *config.Config) (*repository.Repositories, error) {
	if cfg.Catalog.Driver == "mysql" {
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		a.DB = db
		return gormdb.New(db), nil
	}
	return memdb.New(fixture.Load()), nil
}

// initSessionStore 会话后端：memory 进程内，redis 跨进程
func (a *App) initSessionStore(cfg *config.Config) (session.Store, error) {
	if cfg.Session.Backend == "redis" {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		return session.NewRedisStore(rdb, cfg.JWT.ExpireTime), nil
	}
	return session.NewMemoryStore(cfg.JWT.ExpireTime), nil
}

func (a *App) initSessionPolicy(cfg *config.Config, store session.Store) session.Policy {
	if cfg.Session.Policy == "jwt" {
		return &session.JWTPolicy{Store: store, Secret: cfg.JWT.Secret}
	}
	return &session.PresencePolicy{Store: store}
}

func (a *App) initServices(repos *repository.Repositories, store session.Store, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.Users, store, cfg)
	s.classroom = service.NewClassroomService(repos)
	s.dashboard = service.NewDashboardService(repos)
	s.grade = service.NewGradeService(repos)
	s.analytics = service.NewAnalyticsService(repos)
	s.resource = service.NewResourceService(repos, s.storage)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		dashboard: controller.NewDashboardController(s.dashboard),
		class:     controller.NewClassController(s.classroom),
		grade:     controller.NewGradeController(s.grade),
		analytics: controller.NewAnalyticsController(s.analytics),
		resource:  controller.NewResourceController(s.resource),
		health:    controller.NewHealthController(a.DB, a.Config.Catalog.Driver, a.Config.Session.Backend),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests == 0 {
		maxRequests = 1000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes == 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	repos, err := app.initCatalog(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize catalog", zap.Error(err))
	}

	store, err := app.initSessionStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize session store", zap.Error(err))
	}
	policy := app.initSessionPolicy(cfg, store)

	services := app.initServices(repos, store, cfg)
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("classboard", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, policy, store, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
