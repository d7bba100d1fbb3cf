package command

import "github.com/bwmarrin/discordgo"

// OnboardingStatsCommand defines the structure for the /onboarding_stats command.
type OnboardingStatsCommand struct{}

// Definition returns the application command definition.
func (c *OnboardingStatsCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "onboarding_stats",
		Description: "Show today's onboarding statistics for this server",
	}
}

// PingCommand defines the structure for the /ping command.
type PingCommand struct{}

// Definition returns the application command definition.
func (c *PingCommand) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Responds with Pong!",
	}
}
