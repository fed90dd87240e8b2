package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/cache"
	"storefront/common/logger"
	"storefront/controllers"
	"storefront/database"
	"storefront/repository"
	"storefront/routes"
	"storefront/services"
)

func main() {
	// Load .env file (optional, falls back to system env)
	_ = godotenv.Load()

	cfg := LoadConfig()

	log := logger.Initialize(cfg.Env)
	defer log.Sync()

	if cfg.JWTSecret == "your_secret_key" {
		zap.L().Warn("JWT_SECRET not set, using insecure default")
	}

	// --- Storage ---

	if err := database.ConnectWithConfig(cfg.MongoURL, cfg.MongoDB); err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	zap.L().Info("Connected to MongoDB", zap.String("db", cfg.MongoDB))

	redisClient := database.NewRedisClient(cfg.RedisURL)

	// --- Dependency injection ---

	cartRepo := repository.NewCartRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	productRepo := repository.NewProductRepository(database.DB)
	feedbackRepo := repository.NewFeedbackRepository(database.DB)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := cartRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure cart indexes", zap.Error(err))
	}
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		zap.L().Warn("Failed to ensure user indexes", zap.Error(err))
	}
	indexCancel()

	productCache := cache.NewRedisCache(redisClient, cfg.CacheTTL)

	secret := []byte(cfg.JWTSecret)
	cartService := services.NewCartService(cartRepo, log)
	authService := services.NewAuthService(userRepo, secret, log)
	productService := services.NewProductService(productRepo, productCache, log)
	feedbackService := services.NewFeedbackService(feedbackRepo, log)

	cartController := controllers.NewCartController(cartService)
	authController := controllers.NewAuthController(authService)
	productController := controllers.NewProductController(productService)
	feedbackController := controllers.NewFeedbackController(feedbackService)

	// --- HTTP server ---

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger())

	// Per-request timeout so a hung store call cannot pin a handler forever.
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.Register(r, secret, authController, productController, feedbackController, cartController)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		zap.L().Info("Storefront starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down storefront...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Fatal("Server forced to shutdown", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		zap.L().Error("Failed to close Redis", zap.Error(err))
	}
	if err := database.Close(); err != nil {
		zap.L().Error("Failed to close MongoDB", zap.Error(err))
	}

	zap.L().Info("Storefront stopped gracefully")
}
