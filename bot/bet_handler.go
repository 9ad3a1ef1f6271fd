package bot

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"ringside/service"
)

// handleBet places a bet for the calling user
func (b *Bot) handleBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	choice := int(options[0].IntValue())
	amount := options[1].IntValue()

	userID := interactionUserID(i)
	if userID == "" {
		respond(s, i, "Could not identify you. Try again from a server channel.", true)
		return
	}

	bet, err := b.betService.Place(userID, choice, amount)
	if err != nil {
		respond(s, i, userMessage(err), true)
		return
	}

	respond(s, i, fmt.Sprintf("Bet placed successfully on **%s** (Wrestler %d) with %d coins.", bet.Wrestler, choice, bet.Amount), true)
}

// handleBetState shows the current match and all placed bets
func (b *Bot) handleBetState(s *discordgo.Session, i *discordgo.InteractionCreate) {
	state := b.matchService.CurrentState()
	if state.Match == nil {
		respond(s, i, userMessage(service.ErrNoActiveMatch), true)
		return
	}

	var message strings.Builder
	fmt.Fprintf(&message, "Current match: **%s**\n", state.Match.Description())
	if state.IsBettingOpen {
		message.WriteString("Betting is **open**.\n")
	} else {
		message.WriteString("Betting is **closed**.\n")
	}

	if len(state.Bets) == 0 {
		message.WriteString("No bets placed yet.")
	} else {
		message.WriteString("\nPlaced bets:\n")
		userIDs := make([]string, 0, len(state.Bets))
		for userID := range state.Bets {
			userIDs = append(userIDs, userID)
		}
		sort.Strings(userIDs)
		for _, userID := range userIDs {
			bet := state.Bets[userID]
			fmt.Fprintf(&message, "- %s: %d coins on **%s**\n", displayName(s, userID), bet.Amount, bet.Wrestler)
		}
	}

	respond(s, i, message.String(), true)
}

// handleHistory shows the calling user's recent bets
func (b *Bot) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	records := b.historyService.Recent(userID, service.DefaultHistoryLimit)
	if len(records) == 0 {
		respond(s, i, "You have no betting history yet.", true)
		return
	}

	var message strings.Builder
	fmt.Fprintf(&message, "Your last %d bets:\n", len(records))
	for _, record := range records {
		fmt.Fprintf(&message, "- **%s**: %d coins on **%s**. %s\n", record.Match, record.Bet.Amount, record.Bet.Wrestler, record.Result)
	}

	respond(s, i, message.String(), true)
}
