// Package main is the entry point for the application. It initializes all
// dependencies, sets up the HTTP server and starts the application.
package main

import (
	"context"
	"log"
	"time"

	"finflow/internal/config"
	"finflow/internal/metrics"
	"finflow/internal/models"
	"finflow/internal/repositories"
	"finflow/internal/repositories/cache"
	"finflow/internal/routes"
	"finflow/internal/services/auth"
	"finflow/internal/services/wallet"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	config.LoadEnv()

	// Transaction store: Postgres when configured, in-memory otherwise
	repo, err := repositories.NewRepository()
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}

	// Balance cache: Redis when configured
	var balanceCache wallet.BalanceCache = &wallet.NoopBalanceCache{}
	if config.GetBoolEnv("REDIS_ENABLED", false) {
		client := cache.NewRedisClient(&cache.RedisConfig{
			Host:     config.GetEnv("REDIS_HOST", "localhost"),
			Port:     config.GetEnv("REDIS_PORT", "6379"),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			DB:       config.GetIntEnv("REDIS_DB", 0),
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			log.Printf("Redis unavailable, balance cache disabled: %v", err)
		} else {
			redisCache := cache.NewBalanceCache(client, 5*time.Minute)
			defer redisCache.Close()
			balanceCache = redisCache
			log.Println("Connected to Redis, balance cache enabled")
		}
	}

	// Built-in demo account
	demoUser, err := auth.DemoUser(
		config.GetEnv("DEMO_EMAIL", "demo@finflow.com"),
		config.GetEnv("DEMO_NAME", "Demo User"),
		config.GetEnv("DEMO_PASSWORD", "demo123"),
	)
	if err != nil {
		log.Fatalf("Failed to create demo user: %v", err)
	}

	// Seed the demo fixture into a fresh in-memory store
	if _, ok := repo.(*repositories.MemoryRepository); ok && config.GetBoolEnv("DEMO_SEED", true) {
		if err := repositories.SeedDemoData(context.Background(), repo, demoUser.ID); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Seeded demo transactions")
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnv("CORS_ORIGINS", "http://localhost:3000"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowCredentials: true,
	}))

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Use("/api/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, routes.Dependencies{
		Repo:         repo,
		BalanceCache: balanceCache,
		Metrics:      metrics.NewPrometheusCollector(),
		DemoUsers:    []models.User{demoUser},
	})

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "8080")))
}
