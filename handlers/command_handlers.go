package handlers

import (
	"fmt"
	"log"

	"onboarding-bot/database"
	"onboarding-bot/models"

	"github.com/bwmarrin/discordgo"
)

// HandleOnboardingStats handles the /onboarding_stats command: today's
// onboarding counters for the invoking guild, replied ephemerally.
func HandleOnboardingStats(s *discordgo.Session, i *discordgo.InteractionCreate, cfg *models.Config) {
	if i.GuildID == "" {
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: "This command only works inside a server.",
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	db, err := database.NewOnboardingStatsDB(cfg.StatsDBPath)
	if err != nil {
		log.Printf("Error opening stats database: %v", err)
		respondError(s, i, "Could not open the stats database.")
		return
	}
	defer db.Close()

	stats, err := db.TodayStats(i.GuildID)
	if err != nil {
		log.Printf("Error reading stats for guild %s: %v", i.GuildID, err)
		respondError(s, i, "Could not read today's stats.")
		return
	}

	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Onboarding stats for %s", stats.Date),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Joins", Value: fmt.Sprint(stats.Joins), Inline: true},
			{Name: "Leaves", Value: fmt.Sprint(stats.Leaves), Inline: true},
			{Name: "Promotions", Value: fmt.Sprint(stats.Promotions), Inline: true},
			{Name: "Rejections", Value: fmt.Sprint(stats.Rejections), Inline: true},
			{Name: "Escalations", Value: fmt.Sprint(stats.Escalations), Inline: true},
			{Name: "Still unclassified", Value: fmt.Sprint(stats.UnclassifiedTotal), Inline: true},
		},
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}

// HandlePing handles the /ping command.
func HandlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: "Pong!",
		},
	})
}

func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
}
