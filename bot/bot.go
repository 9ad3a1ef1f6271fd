package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"ringside/ai"
	"ringside/config"
	"ringside/events"
	"ringside/models"
	"ringside/service"
)

// MemoryStore defines the interface for AI conversation memories
type MemoryStore interface {
	Add(userID string, mem models.Memory)
	ForUser(userID string) []models.Memory
}

type Bot struct {
	cfg            *config.Config
	session        *discordgo.Session
	balanceService service.BalanceService
	matchService   service.MatchService
	betService     service.BetService
	historyService service.HistoryService
	payoutService  service.PayoutService
	completer      ai.Completer
	memories       MemoryStore
	eventBus       *events.Bus
}

func New(cfg *config.Config, balanceService service.BalanceService, matchService service.MatchService, betService service.BetService, historyService service.HistoryService, payoutService service.PayoutService, completer ai.Completer, memories MemoryStore, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	bot := &Bot{
		cfg:            cfg,
		session:        dg,
		balanceService: balanceService,
		matchService:   matchService,
		betService:     betService,
		historyService: historyService,
		payoutService:  payoutService,
		completer:      completer,
		memories:       memories,
		eventBus:       eventBus,
	}

	// Register slash command handlers
	dg.AddHandler(bot.handleCommands)

	// Register the mention handler for AI replies
	dg.AddHandler(bot.handleMention)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Subscribe to balance change events for champion role updates
	if cfg.ChampionEnabled {
		eventBus.Subscribe(events.EventTypeBalanceChange, func(ctx context.Context, event events.Event) {
			if _, ok := event.(events.BalanceChangeEvent); ok {
				if err := bot.updateChampionRole(); err != nil {
					log.Errorf("Failed to update champion role: %v", err)
				}
			}
		})
		log.Info("Champion role management enabled")
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleCommands dispatches slash commands to their handlers
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "start":
		b.handleStart(s, i)
	case "bet":
		b.handleBet(s, i)
	case "closebet":
		b.handleCloseBet(s, i)
	case "result":
		b.handleResult(s, i)
	case "balance":
		b.handleBalance(s, i)
	case "betstate":
		b.handleBetState(s, i)
	case "history":
		b.handleHistory(s, i)
	case "addcoins":
		b.handleAddCoins(s, i)
	case "donate":
		b.handleDonate(s, i)
	case "ranking":
		b.handleRanking(s, i)
	}
}

// updateChampionRole moves the champion role to the current top balance
// holder
func (b *Bot) updateChampionRole() error {
	ranked := b.balanceService.RankedBalances()
	if len(ranked) == 0 {
		return nil
	}
	championID := ranked[0].UserID

	members, err := b.session.GuildMembers(b.cfg.DiscordGuildID, "", 1000)
	if err != nil {
		return fmt.Errorf("failed to get guild members: %w", err)
	}

	for _, member := range members {
		hasRole := false
		for _, roleID := range member.Roles {
			if roleID == b.cfg.ChampionRoleID {
				hasRole = true
				break
			}
		}

		switch {
		case member.User.ID == championID && !hasRole:
			if err := b.session.GuildMemberRoleAdd(b.cfg.DiscordGuildID, member.User.ID, b.cfg.ChampionRoleID); err != nil {
				return fmt.Errorf("failed to add champion role to %s: %w", member.User.ID, err)
			}
			log.WithFields(log.Fields{"userID": member.User.ID}).Info("Champion role assigned")
		case member.User.ID != championID && hasRole:
			if err := b.session.GuildMemberRoleRemove(b.cfg.DiscordGuildID, member.User.ID, b.cfg.ChampionRoleID); err != nil {
				return fmt.Errorf("failed to remove champion role from %s: %w", member.User.ID, err)
			}
		}
	}

	return nil
}
