package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/aleksmelnikov/fitness-helper/internal/bot"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/handlers"
	"github.com/aleksmelnikov/fitness-helper/internal/bot/state"
	"github.com/aleksmelnikov/fitness-helper/internal/config"
	"github.com/aleksmelnikov/fitness-helper/internal/food"
	"github.com/aleksmelnikov/fitness-helper/internal/geo"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
	"github.com/aleksmelnikov/fitness-helper/internal/services"
	"github.com/aleksmelnikov/fitness-helper/internal/storage"
	"github.com/aleksmelnikov/fitness-helper/internal/weather"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitWithConfig(logger.Config{
		Level:      cfg.Logger.Level,
		OutputPath: cfg.Logger.OutputPath,
		Format:     cfg.Logger.Format,
	}); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	logger.Info("Starting Fitness Helper Bot...")

	// Storage: Postgres when configured, in-memory otherwise.
	var store storage.Store
	if cfg.DB.Host != "" {
		pg, err := storage.NewPostgresStore(cfg.DB)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		store = pg
		logger.Info("Using PostgreSQL storage", "host", cfg.DB.Host)
	} else {
		store = storage.NewMemoryStore()
		logger.Info("Using in-memory storage")
	}

	// External service adapters.
	weatherClient := weather.NewClient(cfg.WeatherBaseURL, cfg.OpenWeatherAPIKey, cfg.HTTPTimeout)
	geoClient, err := geo.NewClient(cfg.GeocoderBaseURL, cfg.HTTPTimeout)
	if err != nil {
		logger.Fatalf("Failed to create geo client: %v", err)
	}
	foodClient, err := food.NewCachedProvider(food.NewClient(cfg.FoodBaseURL, cfg.HTTPTimeout), cfg.FoodCacheSize)
	if err != nil {
		logger.Fatalf("Failed to create food client: %v", err)
	}

	// Services.
	goalService := services.NewGoalService(weatherClient)
	userService := services.NewUserService(store, goalService)
	trackingService := services.NewTrackingService(store, geoClient, foodClient)
	logger.Info("Services initialized successfully")

	// Session state: Redis when configured, in-memory otherwise.
	var stateManager state.StateManager
	if cfg.RedisAddr != "" {
		redisManager, err := state.NewRedisManager(cfg.RedisAddr)
		if err != nil {
			logger.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisManager.Close()
		stateManager = redisManager
		logger.Info("Using Redis session state", "addr", cfg.RedisAddr)
	} else {
		stateManager = state.NewManager()
	}

	deps := handlers.Dependencies{
		UserService: userService,
		Tracking:    trackingService,
	}

	telegramBot, err := bot.NewBot(cfg.TelegramToken, deps, stateManager)
	if err != nil {
		logger.Fatalf("Failed to create bot: %v", err)
	}
	logger.Info("Bot initialized successfully")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := telegramBot.Start(ctx); err != nil {
		logger.Info("Bot stopped", "reason", err)
	}
}
