package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/amitb25/habit-backend-sub001/internal/clock"
	"github.com/amitb25/habit-backend-sub001/internal/config"
	cronpkg "github.com/amitb25/habit-backend-sub001/internal/infrastructure/cron"
	infradb "github.com/amitb25/habit-backend-sub001/internal/infrastructure/db"
	"github.com/amitb25/habit-backend-sub001/internal/infrastructure/kafka"
	"github.com/amitb25/habit-backend-sub001/internal/infrastructure/postgres"
	infraredis "github.com/amitb25/habit-backend-sub001/internal/infrastructure/redis"
	"github.com/amitb25/habit-backend-sub001/internal/logger"
	"github.com/amitb25/habit-backend-sub001/internal/service"
	transport "github.com/amitb25/habit-backend-sub001/internal/transport/http"
	"github.com/amitb25/habit-backend-sub001/internal/transport/http/middleware"
	"github.com/amitb25/habit-backend-sub001/pkg/jwt"
)

// App represents the application
type App struct {
	config        *config.Config
	logger        *zap.SugaredLogger
	httpServer    *http.Server
	freezeGranter *cronpkg.FreezeGranter
	producer      *kafka.Producer
	redisClient   *goredis.Client
	dbPool        *pgxpool.Pool
}

// New creates a new application
func New() (*App, error) {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	log.Infow("configuration loaded", "service", cfg.Service.Name, "environment", cfg.Service.Environment)

	clk, err := clock.NewWall(cfg.Service.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid service timezone: %w", err)
	}

	// Initialize PostgreSQL connection pool
	ctx := context.Background()
	dbPool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	log.Info("connected to PostgreSQL")

	// Initialize Redis (analytics cache). Optional: a failed connection
	// degrades to uncached reads instead of refusing to start.
	var redisClient *goredis.Client
	var cache service.AnalyticsCache
	redisClient, err = infraredis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		log.Warnw("redis unavailable, analytics cache disabled", "error", err)
		redisClient = nil
	} else {
		cache = infraredis.NewAnalyticsCache(redisClient, cfg.Redis.AnalyticsTTL, log)
		log.Info("connected to Redis")
	}

	// Initialize Kafka producer for gamification events
	producer := kafka.NewProducer(&cfg.Kafka)
	log.Infow("kafka producer initialized", "topic", cfg.Kafka.Topic)

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	habitRepo := postgres.NewHabitRepository(dbPool)
	logRepo := postgres.NewHabitLogRepository(dbPool)
	checkinRepo := postgres.NewDailyCheckinRepository(dbPool)
	xpLogRepo := postgres.NewXPLogRepository(dbPool)
	freezeRepo := postgres.NewStreakFreezeRepository(dbPool)

	// Initialize services
	gamificationService := service.NewGamificationService(
		profileRepo, habitRepo, logRepo, checkinRepo, xpLogRepo, freezeRepo,
		clk, producer, cache, log,
	)
	analyticsService := service.NewAnalyticsService(habitRepo, logRepo, checkinRepo, xpLogRepo, clk, cache, log)
	habitService := service.NewHabitService(habitRepo, profileRepo, clk)
	freezeService := service.NewFreezeService(profileRepo, clk, log)
	log.Info("services initialized")

	// Initialize freeze granter (if enabled)
	var freezeGranter *cronpkg.FreezeGranter
	if cfg.Scheduler.Enabled {
		freezeGranter = cronpkg.NewFreezeGranter(freezeService, cfg.Scheduler.GrantInterval, log)
		log.Info("freeze granter initialized")
	} else {
		log.Info("freeze granter is disabled in configuration")
	}

	// Initialize HTTP transport
	tokenManager := jwt.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenTTL, cfg.JWT.Issuer)
	authMiddleware := middleware.NewAuthMiddleware(tokenManager)
	rateLimiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitPerMin)

	habitHandler := transport.NewHabitHandler(gamificationService, analyticsService, habitService, log)
	profileHandler := transport.NewProfileHandler(habitService, log)
	router := transport.NewRouter(habitHandler, profileHandler, authMiddleware, rateLimiter, log)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	return &App{
		config:        cfg,
		logger:        log,
		httpServer:    httpServer,
		freezeGranter: freezeGranter,
		producer:      producer,
		redisClient:   redisClient,
		dbPool:        dbPool,
	}, nil
}

// Run starts the application
func (a *App) Run() error {
	// Setup signal handling for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// Start freeze granter if enabled
	if a.freezeGranter != nil {
		if err := a.freezeGranter.Start(); err != nil {
			return fmt.Errorf("failed to start freeze granter: %w", err)
		}
	}

	// Start HTTP server in a goroutine
	go func() {
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Errorw("http server error", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	a.logger.Infow("service started", "name", a.config.Service.Name, "port", a.config.HTTP.Port)

	// Wait for interrupt signal
	<-quit
	a.logger.Info("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
	defer cancel()
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Errorw("http shutdown error", "error", err)
	}

	// Stop freeze granter
	if a.freezeGranter != nil {
		a.freezeGranter.Stop()
	}

	if err := a.producer.Close(); err != nil {
		a.logger.Errorw("kafka producer close error", "error", err)
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Errorw("redis close error", "error", err)
		}
	}

	// Close database pool
	a.dbPool.Close()

	a.logger.Info("server shutdown complete")
	return nil
}
