package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"ringside/service"
)

// handleStart opens a new betting round (Handler role only)
func (b *Bot) handleStart(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.hasHandlerRole(s, i) {
		respond(s, i, "You do not have permission to start a bet.", false)
		return
	}

	var wrestlers []string
	for _, option := range i.ApplicationCommandData().Options {
		if name := strings.TrimSpace(option.StringValue()); name != "" {
			wrestlers = append(wrestlers, name)
		}
	}

	match, err := b.matchService.Start(wrestlers)
	if err != nil {
		respond(s, i, userMessage(err), false)
		return
	}

	var message strings.Builder
	message.WriteString("Betting is now open!\n")
	for index, wrestler := range match.Wrestlers {
		fmt.Fprintf(&message, "%d: **%s**\n", index+1, wrestler)
	}
	message.WriteString("\nUse `/bet` to place your bet.")
	respond(s, i, message.String(), false)
}

// handleCloseBet stops accepting bets for the current round
func (b *Bot) handleCloseBet(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := b.matchService.Close(); err != nil {
		respond(s, i, userMessage(err), false)
		return
	}
	respond(s, i, "Betting is now closed! No more bets can be placed.", false)
}

// handleResult declares the winner and distributes payouts (Handler role only)
func (b *Bot) handleResult(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if !b.hasHandlerRole(s, i) {
		respond(s, i, "You do not have permission to submit the result.", false)
		return
	}

	winnerChoice := int(i.ApplicationCommandData().Options[0].IntValue())

	state := b.matchService.CurrentState()
	if state.Match == nil {
		respond(s, i, userMessage(service.ErrInvalidWinner), false)
		return
	}
	winner, ok := state.Match.WrestlerAt(winnerChoice)
	if !ok {
		respond(s, i, userMessage(service.ErrInvalidWinner), false)
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		log.Errorf("Error deferring result response: %v", err)
		return
	}

	result, err := b.payoutService.Resolve(winner)
	if err != nil {
		b.editReply(s, i, userMessage(err))
		return
	}

	if _, err := s.ChannelMessageSend(i.ChannelID, fmt.Sprintf("**%s** has won the match!", result.Winner)); err != nil {
		log.Errorf("Error announcing match winner: %v", err)
	}

	b.editReply(s, i, "Results processed and payouts distributed.")
}

func (b *Bot) editReply(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &content,
	}); err != nil {
		log.Errorf("Error editing interaction response: %v", err)
	}
}
