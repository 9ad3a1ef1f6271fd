package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"ringside/service"
)

// wrestlerChoices builds the 1..8 numeric choices shared by the bet and
// result commands
func wrestlerChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, service.MaxWrestlers)
	for i := 1; i <= service.MaxWrestlers; i++ {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  fmt.Sprintf("Wrestler %d", i),
			Value: i,
		})
	}
	return choices
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	startOptions := []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "wrestler1",
			Description: "First wrestler",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "wrestler2",
			Description: "Second wrestler",
			Required:    true,
		},
	}
	for i := 3; i <= service.MaxWrestlers; i++ {
		startOptions = append(startOptions, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        fmt.Sprintf("wrestler%d", i),
			Description: fmt.Sprintf("Wrestler %d (optional)", i),
		})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "start",
			Description: "Starts a betting round",
			Options:     startOptions,
		},
		{
			Name:        "bet",
			Description: "Place a bet",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "choice",
					Description: "Choose wrestler number (1-8)",
					Required:    true,
					Choices:     wrestlerChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Bet amount",
					Required:    true,
				},
			},
		},
		{
			Name:        "closebet",
			Description: "Closes betting",
		},
		{
			Name:        "result",
			Description: "Declare the match result",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "winner",
					Description: "Winning wrestler",
					Required:    true,
					Choices:     wrestlerChoices(),
				},
			},
		},
		{
			Name:        "balance",
			Description: "Check your coin balance",
		},
		{
			Name:        "betstate",
			Description: "Check the current betting state",
		},
		{
			Name:        "history",
			Description: "View your betting history",
		},
		{
			Name:        "addcoins",
			Description: "Add coins to a user (Handler only)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to add coins to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins to add",
					Required:    true,
				},
			},
		},
		{
			Name:        "donate",
			Description: "Donate coins to another user",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "user",
					Description: "User to donate to",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "amount",
					Description: "Amount of coins to donate",
					Required:    true,
				},
			},
		},
		{
			Name:        "ranking",
			Description: "Show the ranking of users based on their coin balance",
		},
	}

	for _, command := range commands {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.cfg.DiscordGuildID, command); err != nil {
			return fmt.Errorf("failed to register command %q: %w", command.Name, err)
		}
	}

	return nil
}
