package bot

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"ringside/service"
)

// respond sends a plain interaction response
func respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string, ephemeral bool) {
	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   flags,
		},
	})
	if err != nil {
		log.Errorf("Error responding to interaction: %v", err)
	}
}

// hasHandlerRole checks whether the interaction member holds the privileged
// role, matched by role name
func (b *Bot) hasHandlerRole(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if i.Member == nil {
		return false
	}

	roles, err := s.GuildRoles(i.GuildID)
	if err != nil {
		log.Errorf("Error fetching guild roles for %s: %v", i.GuildID, err)
		return false
	}

	roleNames := make(map[string]string, len(roles))
	for _, role := range roles {
		roleNames[role.ID] = role.Name
	}

	for _, roleID := range i.Member.Roles {
		if roleNames[roleID] == b.cfg.HandlerRoleName {
			return true
		}
	}
	return false
}

// interactionUserID extracts the invoking user's ID from a guild or DM
// interaction
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// displayName resolves a user ID to a readable name, falling back when the
// user cannot be fetched
func displayName(s *discordgo.Session, userID string) string {
	user, err := s.User(userID)
	if err != nil || user == nil {
		return fmt.Sprintf("Unknown User (%s)", userID)
	}
	return user.Username
}

// userMessage maps a domain error to the text shown to the user
func userMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrInvalidMatch):
		return "Must specify at least 2 wrestlers."
	case errors.Is(err, service.ErrNoActiveBetting):
		return "There is no active bet to close."
	case errors.Is(err, service.ErrBettingClosed):
		return "There is no active betting right now."
	case errors.Is(err, service.ErrNoActiveMatch):
		return "No active match found."
	case errors.Is(err, service.ErrInvalidChoice):
		return "Invalid wrestler choice."
	case errors.Is(err, service.ErrInvalidWager):
		return "Invalid bet amount or insufficient balance."
	case errors.Is(err, service.ErrInvalidWinner):
		return "Invalid winner."
	default:
		return err.Error()
	}
}
