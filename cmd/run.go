package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"ringside/ai"
	"ringside/bot"
	"ringside/config"
	"ringside/events"
	"ringside/service"
	"ringside/storage"
	"ringside/web"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting ringside bot...")

	// Load .env before the config singleton reads the environment
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, using process environment")
	}
	cfg := config.Get()

	// Initialize file-backed stores
	log.Info("Initializing stores...")
	balanceStore := storage.NewBalanceStore(filepath.Join(cfg.DataDir, config.CoinsFile))
	matchStore := storage.NewMatchStore(filepath.Join(cfg.DataDir, config.MatchFile))
	betStore := storage.NewBetStore(filepath.Join(cfg.DataDir, config.BetsFile))
	historyStore := storage.NewHistoryStore(filepath.Join(cfg.DataDir, config.HistoryFile))
	stateStore := storage.NewStateStore(filepath.Join(cfg.DataDir, config.BettingStateFile))
	memoryStore := storage.NewMemoryStore(filepath.Join(cfg.DataDir, config.MemoriesFile))

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize services over a shared mutex serializing compound
	// ledger operations
	log.Info("Initializing services...")
	mu := &sync.Mutex{}
	balanceService := service.NewBalanceService(mu, balanceStore, eventBus)
	historyService := service.NewHistoryService(historyStore)
	matchService := service.NewMatchService(mu, matchStore, betStore, stateStore, eventBus)
	betService := service.NewBetService(mu, stateStore, matchStore, betStore, balanceService, historyService, eventBus)
	payoutService := service.NewPayoutService(mu, matchStore, betStore, stateStore, balanceService, historyService, eventBus)

	// Initialize AI completer
	completer := ai.NewOpenAIClient(cfg)

	// Initialize Discord bot
	log.Info("Initializing Discord bot...")
	discordBot, err := bot.New(cfg, balanceService, matchService, betService, historyService, payoutService, completer, memoryStore, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Info("Discord bot initialized successfully")

	// Start the HTTP API for the frontend
	server := web.NewServer(cfg, ".env", balanceStore, balanceService, matchService, historyService)
	serverErr := make(chan error, 1)
	go func() {
		if err := server.Listen(cfg.HTTPPort); err != nil {
			serverErr <- err
		}
	}()

	log.Infof("Bot is running in %s mode...", cfg.Environment)
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Errorf("HTTP server error: %v", err)
	}

	// Cleanup resources
	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.Errorf("Error closing Discord bot: %v", err)
	}
	if err := server.Shutdown(); err != nil {
		log.Errorf("Error shutting down HTTP server: %v", err)
	}

	// Give in-flight event handlers time to finish
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
