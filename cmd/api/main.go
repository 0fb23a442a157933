package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"apartment-portal/internal/config"
	"apartment-portal/internal/database"
	"apartment-portal/internal/handlers"
	"apartment-portal/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set env vars directly
	_ = godotenv.Load()

	seedFlag := flag.Bool("seed", false, "seed sample apartments when the table is empty")
	flag.Parse()

	// Load configuration
	configPath := getEnv("CONFIG_PATH", "config/config.yaml")
	appConfig, err := config.LoadConfig(configPath)
	if err != nil {
		log.Printf("Warning: Failed to load config from %s: %v. Using defaults.", configPath, err)
		appConfig = config.DefaultConfig()
	} else {
		log.Printf("Loaded configuration from %s", configPath)
	}

	// Initialize database based on configuration
	dbType := appConfig.Database.Type
	if dbType == "" {
		dbType = getEnv("DB_TYPE", "postgres")
	}

	var db *database.GormDB
	if dbType == "sqlite" {
		log.Println("Using SQLite")
		db, err = database.NewSQLiteDB(getEnvOrConfig(appConfig.Database.SQLite.Path, "DB_PATH", "apartments.db"))
	} else {
		log.Println("Using PostgreSQL")
		pgCfg := appConfig.Database.Postgres
		pgCfg.Host = getEnvOrConfig(pgCfg.Host, "DB_HOST", "localhost")
		pgCfg.User = getEnvOrConfig(pgCfg.User, "DB_USER", "apartments_user")
		pgCfg.Password = getEnvOrConfig(pgCfg.Password, "DB_PASSWORD", "apartments_pass")
		pgCfg.Database = getEnvOrConfig(pgCfg.Database, "DB_NAME", "apartments_db")
		db, err = database.NewPostgresDB(pgCfg)
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Initialize schema
	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	if *seedFlag || appConfig.Server.Seed {
		if err := db.SeedApartments(); err != nil {
			log.Fatalf("Failed to seed apartments: %v", err)
		}
	}

	// Initialize rate limiter for write endpoints
	rateLimiter := ratelimit.NewRateLimiter(
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)
	log.Printf("Rate limiter initialized: %d req/min, %d req/hour (enabled: %v)",
		appConfig.RateLimit.RequestsPerMinute,
		appConfig.RateLimit.RequestsPerHour,
		appConfig.RateLimit.Enabled,
	)

	// Setup Gin router
	r := gin.Default()

	// CORS configuration
	r.Use(cors.New(cors.Config{
		AllowOrigins:     appConfig.Server.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Hour,
	}))

	r.GET("/health", healthCheck)

	apartmentHandler := handlers.NewApartmentHandler(db)

	v1 := r.Group("/api/v1")
	{
		apartments := v1.Group("/apartments")
		{
			apartments.POST("", rateLimiter.Middleware(), apartmentHandler.Create)
			apartments.GET("", apartmentHandler.List)
			apartments.GET("/projects", apartmentHandler.GetProjects)
			apartments.GET("/:id", apartmentHandler.GetByID)
		}

		v1.GET("/ratelimit/stats", func(c *gin.Context) {
			c.JSON(http.StatusOK, rateLimiter.GetStats())
		})
	}

	port := getEnv("PORT", appConfig.Server.Port)
	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now(),
	})
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvOrConfig prefers the config file value, then the environment
// variable, then the fallback.
func getEnvOrConfig(configValue, envKey, fallback string) string {
	if configValue != "" {
		return configValue
	}
	return getEnv(envKey, fallback)
}
