package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	analyticsHttp "visitor-analytics-service/internal/analytics/adapters/http/fiber"
	analyticsRepoPg "visitor-analytics-service/internal/analytics/adapters/postgres"
	analyticsUsecase "visitor-analytics-service/internal/analytics/core/usecase"

	contentHttp "visitor-analytics-service/internal/content/adapters/http/fiber"
	contentRepoPg "visitor-analytics-service/internal/content/adapters/postgres"
	contentUsecase "visitor-analytics-service/internal/content/core/usecase"

	"visitor-analytics-service/internal/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "visitor-analytics-service/docs"
)

const defaultContentCacheTTL = 60 * time.Second

func main() {
	// Config
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	dsn := os.Getenv("POSTGRES_DSN")
	if dsn == "" {
		log.Fatal("POSTGRES_DSN is not set")
	}

	// DB connection
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to open postgres: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("failed to ping postgres: %v", err)
	}

	// Adapter-level DB wrappers
	analyticsDB := analyticsRepoPg.NewSQLDB(db)
	contentDB := contentRepoPg.NewSQLDB(db)

	// Repositories
	eventStore := analyticsRepoPg.NewEventStoreRepository(analyticsDB)
	contentRepository := contentRepoPg.NewContentRepository(contentDB)

	// Usecases
	overviewUC := analyticsUsecase.NewGetOverviewUseCase(eventStore)
	channelsUC := analyticsUsecase.NewGetChannelsUseCase(eventStore)
	conversionsUC := analyticsUsecase.NewGetConversionsUseCase(eventStore)
	devicesUC := analyticsUsecase.NewGetDevicesUseCase(eventStore)
	pagesUC := analyticsUsecase.NewGetPagesUseCase(eventStore)
	realtimeUC := analyticsUsecase.NewGetRealtimeUseCase(eventStore)

	contentCache := cache.New(contentCacheTTL(), time.Now)
	contentUC := contentUsecase.NewGetSiteContentUseCase(contentRepository, contentCache)

	// HTTP (Fiber) app + handlers
	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// analytics endpoints
	analyticsHandler := analyticsHttp.NewAnalyticsHandler(
		overviewUC, channelsUC, conversionsUC, devicesUC, pagesUC, realtimeUC,
	)
	analytics := app.Group("/api/analytics")
	analytics.Get("/overview", analyticsHandler.GetOverview)
	analytics.Get("/channels", analyticsHandler.GetChannels)
	analytics.Get("/conversions", analyticsHandler.GetConversions)
	analytics.Get("/devices", analyticsHandler.GetDevices)
	analytics.Get("/pages", analyticsHandler.GetPages)
	analytics.Get("/realtime", analyticsHandler.GetRealtime)

	// site content endpoints
	contentHandler := contentHttp.NewContentHandler(contentUC)
	app.Get("/api/site-content/:key", contentHandler.GetContent)
	app.Post("/api/site-content/:key/invalidate", contentHandler.Invalidate)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			log.Printf("fiber stopped: %v", err)
		}
	}()

	log.Printf("server started on :%s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("fiber shutdown error: %v", err)
	}

	log.Println("server exiting")
}

func contentCacheTTL() time.Duration {
	raw := os.Getenv("CONTENT_CACHE_TTL")
	if raw == "" {
		return defaultContentCacheTTL
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Printf("invalid CONTENT_CACHE_TTL %q, using default", raw)
		return defaultContentCacheTTL
	}
	return time.Duration(secs) * time.Second
}
