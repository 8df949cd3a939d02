package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	videohttp "videau/internal/controller/http"
	"videau/internal/repo/persistent"
	"videau/internal/usecase"
	"videau/pkg/cache"
	"videau/pkg/config"
	"videau/pkg/database"
	"videau/pkg/jwt"
	"videau/pkg/logger"
	"videau/pkg/middleware"
	"videau/pkg/queue"
	"videau/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "videau/docs" // Swagger docs
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	logger.SetLevel(cfg.LogLevel)
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := persistent.AutoMigrate(db); err != nil {
		log.Error("Failed to migrate database: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Failed to connect to redis: %v (rate limiting disabled)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s3Client.EnsureBucket(ctx); err != nil {
		log.Warn("Avatar bucket %s is not reachable: %v", cfg.S3BucketName, err)
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwt.NewService(cfg.JWTSecret, cfg.JWTExpiration),
		queueClient: queueClient,
	}, nil
}

// corsConfig allows any origin, without credentials, when none are configured.
func corsConfig(origins []string) cors.Config {
	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}
	if len(origins) == 0 {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	return corsCfg
}

// publisher returns nil, not a typed nil, when RabbitMQ is unavailable.
func (a *App) publisher() usecase.EventPublisher {
	if a.queueClient == nil {
		return nil
	}
	return a.queueClient
}

func (a *App) storage() usecase.FileStorage {
	if a.s3Client == nil {
		return nil
	}
	return a.s3Client
}

// Router wires repositories, use cases and handlers onto a new engine.
func (a *App) Router() *gin.Engine {
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)
	commentRepo := persistent.NewCommentRepository(a.db)

	userUseCase := usecase.NewUserUseCase(
		userRepo,
		usecase.NewPasswordHasher(a.cfg.BcryptCost),
		a.jwtService,
		a.storage(),
		a.cfg.DefaultAvatarURL,
		a.log,
	)
	videoUseCase := usecase.NewVideoUseCase(videoRepo, userRepo, commentRepo, a.publisher(), a.log)
	commentUseCase := usecase.NewCommentUseCase(commentRepo, videoRepo, a.publisher(), a.log)
	ownershipUseCase := usecase.NewOwnershipUseCase(videoRepo, commentRepo)

	r := gin.New()
	// gin.Recovery only catches panics in the middleware above ErrorHandler.
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(a.log))
	r.Use(cors.New(corsConfig(a.cfg.CORSAllowedOrigins)))
	r.Use(middleware.ErrorHandler(a.log))
	r.Use(middleware.Recovery())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	var rateLimit gin.HandlerFunc
	if a.redisClient != nil {
		rateLimit = middleware.RateLimitMiddleware(a.redisClient, a.cfg.RateLimitRequests, a.cfg.RateLimitWindow)
	}

	videohttp.Routes{
		Users:        videohttp.NewUserHandler(userUseCase),
		Videos:       videohttp.NewVideoHandler(videoUseCase),
		Comments:     videohttp.NewCommentHandler(commentUseCase),
		Auth:         middleware.AuthMiddleware(a.jwtService),
		RateLimit:    rateLimit,
		VideoOwner:   videohttp.VideoOwnerGuard(ownershipUseCase),
		CommentOwner: videohttp.CommentOwnerGuard(ownershipUseCase),
	}.Register(r)

	r.NoRoute(middleware.NotFound())
	return r
}

func (a *App) Run() error {
	gin.SetMode(gin.ReleaseMode)

	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: a.Router(),
	}

	go func() {
		a.log.Info("Videau API starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down Videau API...")
}

func (a *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	if a.queueClient != nil {
		if err := a.queueClient.Close(); err != nil {
			a.log.Error("Error closing RabbitMQ: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	a.log.Info("Videau API exited")
	return nil
}
