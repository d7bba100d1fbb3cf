package handlers

import (
	"log"

	"onboarding-bot/classify"
	"onboarding-bot/database"

	"github.com/bwmarrin/discordgo"
)

// MemberAdd welcomes a new member: it posts the bilingual welcome message to
// the welcome channel and puts the member into the provisional role so the
// classification flow picks up their introduction.
func (o *Onboarding) MemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	log.Printf("Member %s (%s) joined guild %s", m.User.Username, m.User.ID, m.GuildID)

	guildRoles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		log.Printf("Error fetching roles for guild %s: %v", m.GuildID, err)
		o.somethingWentWrong(s)
		return
	}

	provisional, found := classify.ResolveRole(o.cfg.ProvisionalRoleName, guildRoles)
	if !found {
		log.Printf("Provisional role %q not found in guild %s", o.cfg.ProvisionalRoleName, m.GuildID)
		o.somethingWentWrong(s)
		return
	}

	welcomeChannel, err := s.Channel(o.cfg.WelcomeChannelID)
	if err != nil {
		log.Printf("Error fetching welcome channel: %v", err)
		return
	}
	rulesChannel, err := s.Channel(o.cfg.RulesChannelID)
	if err != nil {
		log.Printf("Error fetching rules channel: %v", err)
		return
	}

	o.send(s, formatTemplate(welcomeTemplate, map[string]string{
		"name":    m.User.Mention(),
		"welcome": welcomeChannel.Mention(),
		"rules":   rulesChannel.Mention(),
	}))

	roles := append(append([]string{}, m.Roles...), provisional.ID)
	if _, err := s.GuildMemberEdit(m.GuildID, m.User.ID, &discordgo.GuildMemberParams{Roles: &roles}); err != nil {
		log.Printf("Error assigning provisional role to %s: %v", m.User.ID, err)
		o.somethingWentWrong(s)
		return
	}

	o.recordStat(func(db *database.OnboardingStatsDB) error {
		return db.IncrementJoins(m.GuildID, 1)
	})
}
