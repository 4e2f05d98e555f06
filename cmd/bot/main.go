package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Ramilbey/china-agent-bot/internal/config"
	"github.com/Ramilbey/china-agent-bot/internal/handler"
	"github.com/Ramilbey/china-agent-bot/internal/middleware"
	"github.com/Ramilbey/china-agent-bot/internal/repository/jsonfile"
	"github.com/Ramilbey/china-agent-bot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting China Agent Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully",
		zap.Int("admins", len(cfg.AdminIDs)),
		zap.String("data_dir", cfg.DataDir),
	)

	// Open document stores
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		logger.Fatal("Failed to create data directory", zap.Error(err))
	}

	prefsStore, err := jsonfile.NewPrefsStore(cfg.PrefsPath())
	if err != nil {
		logger.Fatal("Failed to load language preferences", zap.Error(err))
	}
	statsStore, err := jsonfile.NewStatsStore(cfg.StatsPath())
	if err != nil {
		logger.Fatal("Failed to load usage counters", zap.Error(err))
	}
	requestStore, err := jsonfile.NewRequestStore(cfg.RequestsPath())
	if err != nil {
		logger.Fatal("Failed to load request log", zap.Error(err))
	}

	logger.Info("Document stores loaded")

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: buildPoller(cfg, logger),
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize services
	languageService := service.NewLanguageService(prefsStore, statsStore, logger)
	statsService := service.NewStatsService(statsStore, logger)
	requestService := service.NewRequestService(
		requestStore,
		statsStore,
		handler.NewTelegramNotifier(bot),
		cfg.AdminIDs,
		logger,
	)

	// Initialize handler
	bot.Use(middleware.Tally(statsService, logger))

	h := handler.NewHandler(bot, languageService, statsService, requestService, logger)
	h.RegisterHandlers(middleware.AdminOnly(cfg.IsAdmin, logger))

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// buildPoller selects webhook delivery when a public URL is configured,
// long polling otherwise
func buildPoller(cfg *config.Config, logger *zap.Logger) tele.Poller {
	if cfg.WebhookURL == "" {
		return &tele.LongPoller{Timeout: 10 * time.Second}
	}

	logger.Info("Using webhook transport",
		zap.String("url", cfg.WebhookURL),
		zap.String("port", cfg.Port),
	)
	return &tele.Webhook{
		Listen: ":" + cfg.Port,
		Endpoint: &tele.WebhookEndpoint{
			PublicURL: cfg.WebhookURL,
		},
	}
}
