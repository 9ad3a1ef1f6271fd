package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Persisted document file names, also surfaced over the constants API
const (
	BettingStateFile = "betting_state.json"
	HistoryFile      = "bet_history.json"
	CoinsFile        = "coins.json"
	MatchFile        = "current_match.json"
	BetsFile         = "current_bets.json"
	MemoriesFile     = "memories.json"
)

// AIText holds the mutable AI prompt strings. These can be changed at runtime
// through the constants API, so reads go through Config.AI() which copies
// under a lock.
type AIText struct {
	SystemMessage     string
	UserMessageFirst  string
	UserMessageSecond string
	Character         string
	AssistantMessage  string
	ErrorMessage      string
}

// Config holds all application configuration
type Config struct {
	// Discord configuration
	BotToken        string
	DiscordGuildID  string
	HandlerRoleName string

	// Champion role configuration
	ChampionRoleID  string
	ChampionEnabled bool

	// Persistence
	DataDir string

	// HTTP API
	HTTPPort int

	// OpenAI configuration
	OpenAIKey string
	AIModel   string

	// Environment: "development", "production" or "test"
	Environment string

	aiMu sync.RWMutex
	ai   AIText
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		BotToken:        os.Getenv("BOT_TOKEN"),
		DiscordGuildID:  os.Getenv("DISCORD_GUILD_ID"),
		HandlerRoleName: os.Getenv("HANDLER_ROLE_NAME"),

		ChampionRoleID:  os.Getenv("CHAMPION_ROLE_ID"),
		ChampionEnabled: os.Getenv("CHAMPION_ROLE_ID") != "",

		DataDir: os.Getenv("DATA_DIR"),

		HTTPPort: 3000,

		OpenAIKey: os.Getenv("OPENAI_API_KEY"),
		AIModel:   os.Getenv("AI_MODEL"),

		Environment: os.Getenv("ENVIRONMENT"),

		ai: AIText{
			SystemMessage:     os.Getenv("AI_SYSTEM_MESSAGE"),
			UserMessageFirst:  os.Getenv("AI_USER_MESSAGE_FIRST"),
			UserMessageSecond: os.Getenv("AI_USER_MESSAGE_SECOND"),
			Character:         os.Getenv("AI_CHARACTER"),
			AssistantMessage:  os.Getenv("AI_ASSISTANT_MESSAGE"),
			ErrorMessage:      os.Getenv("AI_ERROR_MESSAGE"),
		},
	}

	// Defaults
	if config.HandlerRoleName == "" {
		config.HandlerRoleName = "Handler"
	}
	if config.DataDir == "" {
		config.DataDir = "."
	}
	if port := os.Getenv("PORT"); port != "" {
		if parsedPort, err := strconv.Atoi(port); err == nil {
			config.HTTPPort = parsedPort
		}
	}
	if config.Environment == "" {
		config.Environment = "development"
	}
	if config.ai.ErrorMessage == "" {
		config.ai.ErrorMessage = "Sorry, I can't talk right now. Try again later."
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.BotToken == "" {
			return nil, fmt.Errorf("BOT_TOKEN is required")
		}
	}

	return config, nil
}

// AI returns a copy of the current AI prompt strings
func (c *Config) AI() AIText {
	c.aiMu.RLock()
	defer c.aiMu.RUnlock()
	return c.ai
}
