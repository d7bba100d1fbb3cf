package handlers

import (
	"onboarding-bot/bot"
	"onboarding-bot/models"

	"github.com/bwmarrin/discordgo"
)

// InteractionCreate handles slash command interactions.
func InteractionCreate(b *bot.Bot, cfg *models.Config) func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		if i.Type != discordgo.InteractionApplicationCommand {
			return
		}
		CommandDispatcher(s, i, cfg)
	}
}

// CommandDispatcher routes an application command interaction to its handler.
func CommandDispatcher(s *discordgo.Session, i *discordgo.InteractionCreate, cfg *models.Config) {
	switch i.ApplicationCommandData().Name {
	case "onboarding_stats":
		HandleOnboardingStats(s, i, cfg)
	case "ping":
		HandlePing(s, i)
	default:
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "Unknown command.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}
}
