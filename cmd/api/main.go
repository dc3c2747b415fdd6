package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/printdeck/printdeck_api/internal/cache"
	"github.com/printdeck/printdeck_api/internal/config"
	"github.com/printdeck/printdeck_api/internal/database"
	"github.com/printdeck/printdeck_api/internal/handler"
	"github.com/printdeck/printdeck_api/internal/middleware"
	"github.com/printdeck/printdeck_api/internal/repository"
	"github.com/printdeck/printdeck_api/internal/service"
	"github.com/printdeck/printdeck_api/internal/worker"
	"github.com/printdeck/printdeck_api/pkg/pressroom"
)

// main is the application entrypoint for the Printdeck storefront API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting printdeck api")

	// 3. Connect database
	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 3a. Run migrations
	if err := runMigrations(db.DB); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 3b. Connect to Redis
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Error().Err(err).Msg("redis connection failed")
		fmt.Fprintf(os.Stderr, "redis connection failed: %v\n", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	log.Info().Msg("redis connected successfully")

	// 3c. Initialize caches
	catalogCache := cache.NewCatalogCache(redisClient, cfg.Cache.CatalogTTL)
	quoteCache := cache.NewQuoteCache(redisClient, cfg.Cache.QuoteTTL)

	// 4. Initialize pressroom client for gang-run submissions
	pressroomClient := pressroom.NewClient(pressroom.Config{
		BaseURL:    cfg.Pressroom.BaseURL,
		FacilityID: cfg.Pressroom.FacilityID,
		APISecret:  cfg.Pressroom.APISecret,
	})

	// 5. Initialize repositories
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	sizeRepo := repository.NewStandardSizeRepository(db)
	qtyRepo := repository.NewStandardQuantityRepository(db)
	groupRepo := repository.NewQuantityGroupRepository(db)
	paperRepo := repository.NewPaperStockRepository(db)
	configRepo := repository.NewPricingConfigRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	batchRepo := repository.NewGangBatchRepository(db)
	artworkRepo := repository.NewArtworkRepository(db)
	adminRepo := repository.NewAdminUserRepository(db)

	// 6. Initialize services
	authSvc := service.NewAuthService(clientRepo)
	adminAuthSvc := service.NewAdminAuthService(adminRepo)
	clientSvc := service.NewClientService(clientRepo)
	catalogSvc := service.NewCatalogService(sizeRepo, qtyRepo, groupRepo, paperRepo, productRepo, catalogCache)
	productSvc := service.NewProductService(productRepo, configRepo, catalogSvc)
	quoteSvc := service.NewQuoteService(productRepo, configRepo, groupRepo, sizeRepo, qtyRepo, paperRepo, quoteCache, int(cfg.Cache.QuoteTTL.Seconds()))
	orderSvc := service.NewOrderService(orderRepo, productRepo, artworkRepo, quoteCache)
	productMgmtSvc := service.NewProductManagementService(productRepo, groupRepo, paperRepo, configRepo, sizeRepo, qtyRepo, orderRepo, catalogCache)

	// Initialize S3 service for artwork storage
	s3Svc, err := service.NewS3Service(&cfg.S3)
	if err != nil {
		log.Warn().Err(err).Msg("S3 service initialization failed - artwork upload will be disabled")
	}
	artworkSvc := service.NewArtworkService(artworkRepo, s3Svc, cfg)

	// 7. Initialize handlers
	handlers := &Handlers{
		Health:            handler.NewHealthHandler(db, redisClient),
		Catalog:           handler.NewCatalogHandler(catalogSvc),
		Product:           handler.NewProductHandler(productSvc),
		Quote:             handler.NewQuoteHandler(quoteSvc),
		Order:             handler.NewOrderHandler(orderSvc),
		Artwork:           handler.NewArtworkHandler(artworkSvc),
		Client:            handler.NewClientHandler(clientSvc),
		ProductManagement: handler.NewProductManagementHandler(productMgmtSvc),
		Auth:              handler.NewAuthHandler(adminAuthSvc),
	}

	// 8. Initialize middleware
	authMw := middleware.NewAuthMiddleware(authSvc)
	jwtMw := middleware.NewJWTMiddleware()

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggingMiddleware())
	setupRoutes(router, handlers, authMw, jwtMw)

	// 10. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 11. Start workers
	go worker.NewGangBatchWorker(orderRepo, batchRepo, artworkRepo, paperRepo, pressroomClient, cfg.Worker.GangBatchInterval).Start(ctx)
	go worker.NewArtworkScanWorker(artworkSvc, cfg.S3.Bucket, cfg.Worker.ArtworkScanInterval).Start(ctx)

	// 12. Start HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 13. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 14. Cancel context to stop workers
	cancel()

	// 15. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

// Handlers groups all HTTP handlers used by the server.
type Handlers struct {
	Health            *handler.HealthHandler
	Catalog           *handler.CatalogHandler
	Product           *handler.ProductHandler
	Quote             *handler.QuoteHandler
	Order             *handler.OrderHandler
	Artwork           *handler.ArtworkHandler
	Client            *handler.ClientHandler
	ProductManagement *handler.ProductManagementHandler
	Auth              *handler.AuthHandler
}

// setupRoutes registers all routes.
func setupRoutes(router *gin.Engine, handlers *Handlers, authMiddleware *middleware.AuthMiddleware, jwtMiddleware *middleware.JWTMiddleware) {
	router.GET("/v1/health", handlers.Health.GetHealth)

	// Catalog routes (protected with client API key)
	catalog := router.Group("/v1/catalog")
	catalog.Use(authMiddleware.Handle())
	{
		catalog.GET("/sizes", handlers.Catalog.GetSizes)
		catalog.GET("/quantities", handlers.Catalog.GetQuantities)
		catalog.GET("/quantity-groups", handlers.Catalog.GetQuantityGroups)
		catalog.GET("/quantity-groups/:id", handlers.Catalog.GetQuantityGroup)
		catalog.GET("/paper-stocks", handlers.Catalog.GetPaperStocks)
		catalog.GET("/categories", handlers.Catalog.GetCategories)
	}

	// Product routes (protected with client API key)
	products := router.Group("/v1/products")
	products.Use(authMiddleware.Handle())
	{
		products.GET("", handlers.Product.GetProducts)
		products.GET("/:slug", handlers.Product.GetProduct)
	}

	// Quote routes (protected with client API key)
	quote := router.Group("/v1/quote")
	quote.Use(authMiddleware.Handle())
	{
		quote.POST("", handlers.Quote.CreateQuote)
		quote.POST("/validate", handlers.Quote.ValidateInput)
	}

	// Order routes (protected with client API key)
	orders := router.Group("/v1/orders")
	orders.Use(authMiddleware.Handle())
	{
		orders.POST("", handlers.Order.CreateOrder)
		orders.GET("/:orderNumber", handlers.Order.GetOrder)
		orders.POST("/:orderNumber/pay", handlers.Order.PayOrder)
	}

	// Artwork routes (protected with client API key)
	artwork := router.Group("/v1/artwork")
	artwork.Use(authMiddleware.Handle())
	{
		artwork.POST("", handlers.Artwork.Upload)
		artwork.GET("/:id", handlers.Artwork.GetArtwork)
		artwork.GET("/:id/download", handlers.Artwork.Download)
	}

	// Admin routes
	admin := router.Group("/v1/admin")
	admin.POST("/auth/login", handlers.Auth.Login)
	admin.Use(jwtMiddleware.Handle())
	{
		// Client Management
		admin.POST("/clients", handlers.Client.CreateClient)
		admin.GET("/clients", handlers.Client.ListClients)
		admin.PUT("/clients/:id", handlers.Client.UpdateClient)
		admin.POST("/clients/:id/rotate-keys", handlers.Client.RotateKeys)

		// Product Management
		admin.GET("/products", handlers.ProductManagement.ListProducts)
		admin.POST("/products", handlers.ProductManagement.CreateProduct)
		admin.GET("/products/:id", handlers.ProductManagement.GetProduct)
		admin.PUT("/products/:id", handlers.ProductManagement.UpdateProduct)
		admin.DELETE("/products/:id", handlers.ProductManagement.DeleteProduct)
		admin.PUT("/products/:id/pricing-config", handlers.ProductManagement.SetPricingConfig)

		// Quantity Group Management
		admin.POST("/quantity-groups", handlers.ProductManagement.CreateQuantityGroup)
		admin.PUT("/quantity-groups/:id", handlers.ProductManagement.UpdateQuantityGroup)
		admin.DELETE("/quantity-groups/:id", handlers.ProductManagement.DeleteQuantityGroup)

		// Paper Stock Management
		admin.POST("/paper-stocks", handlers.ProductManagement.CreatePaperStock)
		admin.PUT("/paper-stocks/:id", handlers.ProductManagement.UpdatePaperStock)
		admin.PUT("/paper-stocks/:id/exception", handlers.ProductManagement.SetPaperException)
		admin.DELETE("/paper-stocks/:id/exception", handlers.ProductManagement.DeletePaperException)

		// Standard Sizes & Quantities
		admin.PUT("/sizes", handlers.ProductManagement.UpsertStandardSize)
		admin.PUT("/quantities", handlers.ProductManagement.UpsertStandardQuantity)

		// Order Management
		admin.GET("/orders", handlers.ProductManagement.ListOrders)
		admin.GET("/orders/stats", handlers.ProductManagement.OrderStats)
		admin.PUT("/orders/:id/status", handlers.ProductManagement.UpdateOrderStatus)
	}
}

// runMigrations runs database migrations using golang-migrate.
func runMigrations(db *sql.DB) error {
	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("could not create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres", driver)
	if err != nil {
		return fmt.Errorf("could not create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("could not run migrations: %w", err)
	}

	return nil
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
