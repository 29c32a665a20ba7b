package app

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/globaledge/consult-api/api"
	"github.com/globaledge/consult-api/config"
	"github.com/globaledge/consult-api/database"
	"github.com/globaledge/consult-api/router"
	"github.com/globaledge/consult-api/services/cron"
	"github.com/globaledge/consult-api/utils"
	"github.com/globaledge/consult-api/utils/cache"
	"github.com/globaledge/consult-api/utils/middleware"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	appLogger := utils.NewLogger(getEnv.LOG_LEVEL, getEnv.LOG_FORMAT)

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		appLogger.Error().Err(err).Msg("Check whether Postgres is running")
		return err
	}

	if err := store.Init(); err != nil {
		appLogger.Error().Err(err).Msg("Failed to initialize database tables")
		return err
	}

	db, ok := store.GetDB().(*gorm.DB)
	if !ok {
		return fmt.Errorf("failed to get GORM DB instance")
	}

	if err := database.SeedDefaults(db); err != nil {
		appLogger.Warn().Err(err).Msg("Seeding defaults failed")
	}

	// Redis backs the public list cache; the app degrades to
	// uncached reads when it is unreachable.
	var redisCache *cache.RedisCache
	redisURL := getEnv.REDIS_URL
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}
	redisCache, err = cache.NewRedisCache(redisURL)
	if err != nil {
		appLogger.Warn().Err(err).Msg("Failed to connect to Redis, list caching disabled")
		redisCache = nil
	}

	// Housekeeping jobs (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		cronManager = cron.NewCronManager(db, redisCache)
		if err := cronManager.Start(); err != nil {
			appLogger.Warn().Err(err).Msg("Failed to start cron jobs")
		}
	}

	// Defer closing DB, cache and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		if redisCache != nil {
			redisCache.Close()
		}
		store.Close()
	}()

	// Init API
	server := api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Attach Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(middleware.Metrics())

	// Setup Routes
	router.SetupRoutes(app, store, redisCache)

	appLogger.Info().Int("port", getEnv.PORT).Msg("API ready")

	// Get the PORT & Start the Server
	return server.Run()
}
