package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"expohall/api/routes"
	"expohall/internal/notifications"
	"expohall/internal/shared/config"
	"expohall/internal/shared/database"
	"expohall/pkg/logger"
	"expohall/pkg/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	appLogger := logger.GetDefault()

	if err := godotenv.Load(); err != nil {
		appLogger.Info("No .env file found, using system environment variables")
	} else {
		appLogger.Info("Loaded .env file")
	}

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Rate limiter
	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled && db.GetRedis() != nil {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
			Enabled:             cfg.RateLimit.Enabled,
			WindowDuration:      cfg.RateLimit.WindowDuration,
			AuthRequests:        cfg.RateLimit.AuthRequests,
			ReservationRequests: cfg.RateLimit.ReservationRequests,
			DefaultRequests:     cfg.RateLimit.DefaultRequests,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
		)
	}

	// Reservation event pipeline (optional)
	var producer notifications.Producer
	if cfg.Kafka.Enabled {
		producerConfig := notifications.DefaultProducerConfig()
		producerConfig.Brokers = cfg.Kafka.Brokers
		producerConfig.Topic = cfg.Kafka.Topic

		producer, err = notifications.NewKafkaProducer(producerConfig)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka producer", slog.Any("error", err))
			appLogger.Info("Continuing without reservation events")
			producer = nil
		} else {
			defer producer.Close()
		}

		consumerConfig := notifications.DefaultConsumerConfig()
		consumerConfig.Brokers = cfg.Kafka.Brokers
		consumerConfig.Topics = []string{cfg.Kafka.Topic}
		consumerConfig.GroupID = cfg.Kafka.GroupID

		consumer, err := notifications.NewKafkaConsumer(consumerConfig, nil)
		if err != nil {
			appLogger.Error("Failed to initialize Kafka consumer", slog.Any("error", err))
		} else {
			consumerCtx, consumerCancel := context.WithCancel(context.Background())
			defer consumerCancel()
			go func() {
				if err := consumer.Start(consumerCtx); err != nil {
					appLogger.Error("Notification consumer stopped", slog.Any("error", err))
				}
			}()
			defer consumer.Stop()
			appLogger.Info("Notification consumer started", slog.String("group", consumerConfig.GroupID))
		}
	}

	router := setupRouter(cfg, db, producer, rateLimiter)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("version", Version),
			slog.Bool("redis_cache", db.GetRedis() != nil),
			slog.Bool("rate_limiting", rateLimiter != nil),
			slog.Bool("reservation_events", producer != nil),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}

	appLogger.Info("Server exited gracefully")
}

func setupRouter(cfg *config.Config, db *database.DB, producer notifications.Producer, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(RequestLoggerMiddleware(appLogger), gin.Recovery())

	engine.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRouter := routes.NewRouter(cfg, db, producer, rateLimiter)
	appRouter.SetupRoutes(engine)

	return engine
}

func RequestLoggerMiddleware(l *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		l.LogHTTPRequest(c, duration)
	}
}
