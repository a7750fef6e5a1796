package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/shopfront/backend/internal/application/catalog"
	storeapp "github.com/shopfront/backend/internal/application/store"
	storefrontapp "github.com/shopfront/backend/internal/application/storefront"
	"github.com/shopfront/backend/internal/domain/storefront"
	"github.com/shopfront/backend/internal/infrastructure/cache"
	"github.com/shopfront/backend/internal/infrastructure/config"
	"github.com/shopfront/backend/internal/infrastructure/logger"
	"github.com/shopfront/backend/internal/infrastructure/persistence"
	"github.com/shopfront/backend/internal/interfaces/http/handler"
	"github.com/shopfront/backend/internal/interfaces/http/middleware"
	"github.com/shopfront/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Shopfront Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	storeRepo := persistence.NewGormStoreRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)

	// Initialize cart session store
	cartStore, closeCartStore, err := newCartStore(cfg)
	if err != nil {
		log.Fatal("Failed to initialize cart store", zap.Error(err))
	}
	defer func() {
		if err := closeCartStore(); err != nil {
			log.Error("Error closing cart store", zap.Error(err))
		}
	}()
	log.Info("Cart store ready",
		zap.String("backend", cfg.Cart.Backend),
		zap.Duration("session_ttl", cfg.Cart.SessionTTL),
	)

	// Initialize application services
	storeService := storeapp.NewStoreService(storeRepo)
	productService := catalogapp.NewProductService(productRepo)
	storefrontService := storefrontapp.NewStorefrontService(storeRepo, productRepo)
	cartService := storefrontapp.NewCartService(storeRepo, productRepo, cartStore, cfg.Cart.SessionTTL)

	// Initialize handlers
	storeHandler := handler.NewStoreHandler(storeService)
	productHandler := handler.NewProductHandler(productService)
	storefrontHandler := handler.NewStorefrontHandler(storefrontService, cartService)
	systemHandler := handler.NewSystemHandler(db)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Register custom binding validators
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Middleware order matters:
	// 1. RequestID - Generate/propagate request ID
	// 2. Recovery - Catch panics
	// 3. Logger - Log requests
	// 4. CORS - Handle cross-origin requests
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))

	corsConfig := middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-Cart-Session"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	engine.Use(middleware.CORSWithConfig(corsConfig))

	// Setup API routes using router
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))

	// Store settings (merchant-facing)
	storeRoutes := router.NewDomainGroup("store", "/store")
	storeRoutes.POST("", storeHandler.Create)
	storeRoutes.GET("", storeHandler.Get)
	storeRoutes.PUT("", storeHandler.Update)

	// Catalog management (merchant-facing)
	catalogRoutes := router.NewDomainGroup("catalog", "/catalog")
	catalogRoutes.POST("/products", productHandler.Create)
	catalogRoutes.GET("/products", productHandler.List)
	catalogRoutes.GET("/products/:id", productHandler.GetByID)
	catalogRoutes.PUT("/products/:id", productHandler.Update)
	catalogRoutes.PUT("/products/:id/visibility", productHandler.SetVisibility)
	catalogRoutes.DELETE("/products/:id", productHandler.Delete)

	// Public storefront (shopper-facing, addressed by slug)
	storefrontRoutes := router.NewDomainGroup("storefront", "/storefront")
	storefrontRoutes.GET("/:slug", storefrontHandler.View)
	storefrontRoutes.GET("/:slug/cart", storefrontHandler.GetCart)
	storefrontRoutes.POST("/:slug/cart/items", storefrontHandler.AddCartItem)
	storefrontRoutes.PUT("/:slug/cart/items/:productId", storefrontHandler.SetCartQuantity)
	storefrontRoutes.POST("/:slug/checkout", storefrontHandler.Checkout)

	// System routes
	systemRoutes := router.NewDomainGroup("system", "/system")
	systemRoutes.GET("/info", systemHandler.GetSystemInfo)
	systemRoutes.GET("/health", systemHandler.Health)

	// Register all domain groups
	r.Register(storeRoutes).
		Register(catalogRoutes).
		Register(storefrontRoutes).
		Register(systemRoutes)

	// Setup routes
	r.Setup()

	// Keep a simple ping at root API level for basic health checks
	engine.GET("/api/v1/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Health check endpoint (outside API versioning)
	engine.GET("/healthz", systemHandler.Health)

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newCartStore builds the cart session store selected in config along
// with its cleanup function
func newCartStore(cfg *config.Config) (storefront.CartStore, func() error, error) {
	switch cfg.Cart.Backend {
	case "redis":
		store, err := cache.NewRedisCartStore(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		store := cache.NewInMemoryCartStore()
		return store, store.Close, nil
	}
}
