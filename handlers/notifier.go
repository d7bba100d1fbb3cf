package handlers

import (
	"log"

	"onboarding-bot/classify"

	"github.com/bwmarrin/discordgo"
)

// sendEscalation posts template to the welcome channel with the admin role's
// ID substituted for {roleID}. When no admin role resolves it falls back to
// mentioning the guild owner, with distinct wording for "no admin role"
// versus an unexpected failure fetching the role set. Once the guild is
// known, exactly one message goes out whichever branch fires.
func (o *Onboarding) sendEscalation(s *discordgo.Session, template string) {
	channel, err := s.Channel(o.cfg.WelcomeChannelID)
	if err != nil {
		log.Printf("Error fetching welcome channel %s: %v", o.cfg.WelcomeChannelID, err)
		return
	}

	guild, err := s.Guild(channel.GuildID)
	if err != nil {
		log.Printf("Error fetching guild %s: %v", channel.GuildID, err)
		return
	}
	ownerMention := "<@" + guild.OwnerID + ">"

	guildRoles, err := s.GuildRoles(guild.ID)
	if err != nil {
		log.Printf("Error fetching roles for guild %s: %v", guild.ID, err)
		o.send(s, formatTemplate(ownerFallbackTemplate, map[string]string{"mention": ownerMention}))
		return
	}

	adminRole, found := classify.ResolveRole(o.cfg.AdminRoleName, guildRoles)
	if !found {
		o.send(s, formatTemplate(adminFallbackTemplate, map[string]string{"mention": ownerMention}))
		return
	}

	o.send(s, formatTemplate(template, map[string]string{"roleID": adminRole.ID}))
}

// somethingWentWrong is the generic escalation for failed mutations.
func (o *Onboarding) somethingWentWrong(s *discordgo.Session) {
	o.sendEscalation(s, somethingWentWrongTemplate)
}

// send posts content to the welcome channel.
func (o *Onboarding) send(s *discordgo.Session, content string) {
	if _, err := s.ChannelMessageSend(o.cfg.WelcomeChannelID, content); err != nil {
		log.Printf("Error sending message to welcome channel: %v", err)
	}
}
