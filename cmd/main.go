package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"storefront-service/internal/api"
	"storefront-service/internal/client"
	"storefront-service/internal/config"
	"storefront-service/internal/consumer"
	"storefront-service/internal/repository"
	"storefront-service/internal/service"
	"storefront-service/migrations"
)

func connectDB(dsn string) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Printf("✅ Connected to catalog DB")
				return db, nil
			}
		}
		log.Printf("❌ Retry %d: Failed to connect to catalog DB: %v", i+1, err)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to catalog DB after retries: %v", err)
}

func main() {
	cfg := config.Load()

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})

	menuClient := client.NewMenuClient(cfg.MenuAPIBaseURL, cfg.HTTPTimeout)
	orderClient := client.NewOrderClient(cfg.OrderAPIBaseURL, cfg.HTTPTimeout)
	authClient := client.NewAuthClient(cfg.AuthAPIBaseURL, cfg.HTTPTimeout)
	telegramClient := client.NewTelegramClient(cfg.TelegramAPIBaseURL, cfg.HTTPTimeout)

	// Fallback catalog is opt-in; without it a menu service outage is
	// surfaced to the customer instead of silently masked.
	var fallback service.CatalogSource
	if cfg.CatalogFallback == "db" {
		db, err := connectDB(cfg.CatalogDSN)
		if err != nil {
			panic(err)
		}
		if err := migrations.AutoMigrateCatalog(3, db); err != nil {
			log.Fatalf("Failed to migrate catalog table: %v", err)
		}
		if err := migrations.SeedCatalog(db); err != nil {
			log.Fatalf("Failed to seed catalog table: %v", err)
		}
		fallback = repository.NewCatalogRepository(db)
	}

	cartRepo := repository.NewCartRepository(rdb)
	sessionRepo := repository.NewSessionRepository(rdb)
	promoRepo := repository.NewPromoRepository(rdb)
	idempotencyRepo := repository.NewIdempotencyRepository(rdb)

	var orderSource service.OrderSource = orderClient
	if cfg.DemoMode {
		demoSource := service.NewDemoOrderSource()
		orderSource = demoSource
		simulator := service.NewSimulator(demoSource, 45*time.Second)
		simulator.Start(context.Background())
		log.Printf("Demo mode enabled: order tracking is simulated")
	}

	catalogService := service.NewCatalogService(menuClient, fallback)
	cartService := service.NewCartService(cartRepo)
	checkoutService := service.NewCheckoutService(orderClient, cartRepo, promoRepo, idempotencyRepo)
	orderService := service.NewOrderService(orderSource, cfg.PageSize)
	authService := service.NewAuthService(authClient, sessionRepo)
	telegramService := service.NewTelegramService(telegramClient, promoRepo)

	catalogHandler := api.NewCatalogHandler(catalogService)
	cartHandler := api.NewCartHandler(cartService)
	orderHandler := api.NewOrderHandler(checkoutService, orderService)
	authHandler := api.NewAuthHandler(authService)
	telegramHandler := api.NewTelegramHandler(telegramService)
	supportHandler := api.NewSupportHandler(cfg.TelegramBotUsername, cfg.WhatsAppNumber)

	// Order status events feed Telegram notifications; pointless in
	// demo mode where no real order service publishes.
	if !cfg.DemoMode {
		reader := config.NewKafkaReader(cfg.KafkaBrokers, cfg.OrderEventsTopic, cfg.ConsumerGroup)
		eventConsumer := consumer.NewConsumer(reader, telegramClient, cfg.ServiceToken)
		go eventConsumer.Start(context.Background())
	}

	e := echo.New()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	// Public routes
	e.GET("/api/categories", catalogHandler.GetCategories)
	e.GET("/api/menu", catalogHandler.GetMenu)
	e.POST("/api/auth/login", authHandler.Login)
	e.POST("/api/auth/register", authHandler.Register)
	e.GET("/api/support", supportHandler.GetLinks)

	// Session-protected routes
	g := e.Group("/api")
	g.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	g.GET("/auth/me", authHandler.Me)
	g.POST("/auth/logout", authHandler.Logout)

	g.GET("/cart", cartHandler.GetCart)
	g.POST("/cart/items", cartHandler.AddItem)
	g.PUT("/cart/items/:productId", cartHandler.UpdateItem)
	g.DELETE("/cart/items/:productId", cartHandler.RemoveItem)
	g.DELETE("/cart", cartHandler.ClearCart)

	g.GET("/checkout/quote", orderHandler.Quote)
	g.POST("/checkout", orderHandler.Checkout)
	g.GET("/orders", orderHandler.ListOrders)
	g.PUT("/orders/cancel/:id", orderHandler.CancelOrder)

	g.POST("/telegram/request-code", telegramHandler.RequestCode)
	g.POST("/telegram/link-account", telegramHandler.LinkAccount)
	g.GET("/telegram/status", telegramHandler.Status)
	g.POST("/telegram/unlink-account", telegramHandler.Unlink)
	g.GET("/telegram/promotion", telegramHandler.Promotion)
	g.POST("/telegram/promotion/dismiss", telegramHandler.DismissBanner)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "storefront-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
