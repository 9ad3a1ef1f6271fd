package web

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"ringside/config"
	"ringside/models"
	"ringside/service"
)

// BalanceReader reads balances without initializing unknown users
type BalanceReader interface {
	Get(userID string) (int64, bool)
}

// Server exposes the read API consumed by the frontend plus the constants
// endpoint used to tune the AI personality at runtime
type Server struct {
	app            *fiber.App
	cfg            *config.Config
	envPath        string
	balances       BalanceReader
	balanceService service.BalanceService
	matchService   service.MatchService
	historyService service.HistoryService
}

func NewServer(cfg *config.Config, envPath string, balances BalanceReader, balanceService service.BalanceService, matchService service.MatchService, historyService service.HistoryService) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})
	app.Use(cors.New())

	s := &Server{
		app:            app,
		cfg:            cfg,
		envPath:        envPath,
		balances:       balances,
		balanceService: balanceService,
		matchService:   matchService,
		historyService: historyService,
	}

	api := app.Group("/api")
	api.Get("/constants", s.getConstants)
	api.Put("/constants", s.putConstants)
	api.Get("/match", s.getMatch)
	api.Get("/betting-state", s.getBettingState)
	api.Get("/coins/:userId", s.getCoins)
	api.Get("/history/:userId", s.getHistory)
	api.Get("/bets", s.getBets)
	api.Get("/ranking", s.getRanking)

	return s
}

// Listen blocks serving HTTP until Shutdown is called
func (s *Server) Listen(port int) error {
	log.WithFields(log.Fields{"port": port}).Info("HTTP API listening")
	return s.app.Listen(fmt.Sprintf(":%d", port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App returns the underlying fiber app, used by tests
func (s *Server) App() *fiber.App {
	return s.app
}

func (s *Server) getConstants(c *fiber.Ctx) error {
	ai := s.cfg.AI()
	return c.JSON(fiber.Map{
		"BETTING_STATE_FILE":     config.BettingStateFile,
		"BET_HISTORY_FILE":       config.HistoryFile,
		"COINS_FILE":             config.CoinsFile,
		"CURRENT_MATCH_FILE":     config.MatchFile,
		"CURRENT_BETS_FILE":      config.BetsFile,
		"MEMORIES_FILE":          config.MemoriesFile,
		"INITIAL_COINS":          service.InitialCoins,
		"AI_SYSTEM_MESSAGE":      ai.SystemMessage,
		"AI_USER_MESSAGE_FIRST":  ai.UserMessageFirst,
		"AI_USER_MESSAGE_SECOND": ai.UserMessageSecond,
		"AI_CHARACTER":           ai.Character,
		"AI_ASSISTANT_MESSAGE":   ai.AssistantMessage,
		"AI_ERROR_MESSAGE":       ai.ErrorMessage,
	})
}

func (s *Server) putConstants(c *fiber.Ctx) error {
	var values map[string]string
	if err := c.BodyParser(&values); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.cfg.UpdateAI(values, s.envPath); err != nil {
		log.Errorf("Failed to update constants: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to persist constants"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) getMatch(c *fiber.Ctx) error {
	state := s.matchService.CurrentState()
	if state.Match == nil {
		return c.JSON(fiber.Map{"wrestlers": []string{}})
	}
	return c.JSON(state.Match)
}

func (s *Server) getBettingState(c *fiber.Ctx) error {
	state := s.matchService.CurrentState()
	return c.JSON(fiber.Map{"isBettingOpen": state.IsBettingOpen})
}

func (s *Server) getCoins(c *fiber.Ctx) error {
	balance, _ := s.balances.Get(c.Params("userId"))
	return c.JSON(fiber.Map{"coins": balance})
}

func (s *Server) getHistory(c *fiber.Ctx) error {
	records := s.historyService.Recent(c.Params("userId"), service.DefaultHistoryLimit)
	if records == nil {
		records = []models.HistoryRecord{}
	}
	return c.JSON(records)
}

func (s *Server) getBets(c *fiber.Ctx) error {
	state := s.matchService.CurrentState()
	if state.Bets == nil {
		return c.JSON(map[string]models.Bet{})
	}
	return c.JSON(state.Bets)
}

func (s *Server) getRanking(c *fiber.Ctx) error {
	ranked := s.balanceService.RankedBalances()
	if ranked == nil {
		ranked = []models.RankedBalance{}
	}
	return c.JSON(ranked)
}
