package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"ringside/models"
)

// handleMention replies to messages that mention the bot using the AI
// completer, with the user's stored memories as context
func (b *Bot) handleMention(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	mentioned := false
	for _, user := range m.Mentions {
		if user.ID == s.State.User.ID {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return
	}

	prompt := stripMention(m.Content, s.State.User.ID)
	if prompt == "" {
		return
	}

	if err := s.ChannelTyping(m.ChannelID); err != nil {
		log.Debugf("Error sending typing indicator: %v", err)
	}

	memories := b.memories.ForUser(m.Author.ID)
	reply, err := b.completer.Complete(context.Background(), prompt, memories)
	if err != nil {
		log.Errorf("AI completion failed: %v", err)
		reply = b.cfg.AI().ErrorMessage
	} else {
		b.memories.Add(m.Author.ID, models.Memory{
			Timestamp: time.Now().Unix(),
			Content:   fmt.Sprintf("User said: %q. You replied: %q.", prompt, reply),
		})
	}

	if _, err := s.ChannelMessageSendReply(m.ChannelID, reply, m.Reference()); err != nil {
		log.Errorf("Error sending AI reply: %v", err)
	}
}

// stripMention removes the bot's mention tokens from the message content
func stripMention(content, botID string) string {
	content = strings.ReplaceAll(content, "<@"+botID+">", "")
	content = strings.ReplaceAll(content, "<@!"+botID+">", "")
	return strings.TrimSpace(content)
}
