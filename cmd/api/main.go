package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/sociable/social-api/config"
	"github.com/sociable/social-api/internal/api"
	"github.com/sociable/social-api/internal/database"
	"github.com/sociable/social-api/internal/middleware"
	"github.com/sociable/social-api/internal/router"
	"github.com/sociable/social-api/internal/server"
	"github.com/sociable/social-api/internal/service"
	"github.com/sociable/social-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	db, err := database.New(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		zlog.Fatal("failed to connect to Redis", zap.Error(err))
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	followService := service.NewFollowService(db)

	var imageService service.IImageService
	if cfg.AWSRegion != "" {
		s3Config, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			zlog.Fatal("failed to configure S3", zap.Error(err))
		}
		imageService = service.NewImageService(s3Config)
	} else {
		zlog.Warn("AWS_REGION not set, profile image uploads disabled")
	}

	var rateLimiter *middleware.RateLimiter
	if redisClient != nil {
		rateLimiter = middleware.NewFollowRateLimiter(redisClient)
	}

	engine := router.Setup(
		zlog,
		authService,
		api.NewAuthHandler(authService),
		api.NewProfileHandler(profileService, followService, imageService),
		api.NewSearchHandler(profileService, followService, rateLimiter),
		api.NewHealthHandler(db),
	)

	srv := server.New(cfg, engine, zlog)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	case sig := <-quit:
		zlog.Info("received signal", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server shutdown error", zap.Error(err))
	}
	zlog.Info("server stopped")
}
