package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// handleBalance shows the calling user's coin balance
func (b *Bot) handleBalance(s *discordgo.Session, i *discordgo.InteractionCreate) {
	userID := interactionUserID(i)
	balance := b.balanceService.GetBalance(userID)
	respond(s, i, fmt.Sprintf("Your current balance is %d coins.", balance), true)
}

// handleAddCoins grants coins to a user (Handler role only)
func (b *Bot) handleAddCoins(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.hasHandlerRole(s, i) {
		respond(s, i, "You do not have permission to add coins.", false)
		return
	}

	options := i.ApplicationCommandData().Options
	target := options[0].UserValue(s)
	amount := options[1].IntValue()

	if target == nil {
		respond(s, i, "Invalid user.", true)
		return
	}

	newBalance, err := b.balanceService.Grant(target.ID, amount)
	if err != nil {
		respond(s, i, userMessage(err), true)
		return
	}

	respond(s, i, fmt.Sprintf("Added %d coins to **%s**. Their new balance is %d coins.", amount, target.Username, newBalance), false)
}

// handleDonate transfers coins from the caller to another user
func (b *Bot) handleDonate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	options := i.ApplicationCommandData().Options
	target := options[0].UserValue(s)
	amount := options[1].IntValue()

	userID := interactionUserID(i)
	if target == nil || userID == "" {
		respond(s, i, "Invalid user.", true)
		return
	}

	remaining, err := b.balanceService.Donate(userID, target.ID, amount)
	if err != nil {
		respond(s, i, userMessage(err), true)
		return
	}

	respond(s, i, fmt.Sprintf("You donated %d coins to **%s**. You have %d coins left.", amount, target.Username, remaining), false)
}

// handleRanking shows all users ranked by coin balance
func (b *Bot) handleRanking(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ranked := b.balanceService.RankedBalances()
	if len(ranked) == 0 {
		respond(s, i, "Nobody has any coins yet.", false)
		return
	}

	var message strings.Builder
	message.WriteString("**Coin Balance Ranking**\n")
	for position, entry := range ranked {
		fmt.Fprintf(&message, "%d. %s: %d coins\n", position+1, displayName(s, entry.UserID), entry.Balance)
	}

	respond(s, i, message.String(), false)
}
