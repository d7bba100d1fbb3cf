package handlers

import (
	"log"

	"onboarding-bot/classify"
	"onboarding-bot/database"

	"github.com/bwmarrin/discordgo"
)

// MessageCreate watches the welcome channel for classification messages.
// Messages outside the channel or from bots are dropped; everything else is
// evaluated against the member's live roles and the guild's live role set,
// and the resulting outcome is carried out here.
func (o *Onboarding) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.ChannelID != o.cfg.WelcomeChannelID {
		return
	}
	if m.Author.Bot {
		return
	}

	member := m.Member
	if member == nil {
		var err error
		member, err = s.GuildMember(m.GuildID, m.Author.ID)
		if err != nil {
			log.Printf("Error fetching member %s: %v", m.Author.ID, err)
			return
		}
	}

	guildRoles, err := s.GuildRoles(m.GuildID)
	if err != nil {
		log.Printf("Error fetching roles for guild %s: %v", m.GuildID, err)
		o.somethingWentWrong(s)
		return
	}

	decision := classify.Decide(m.Content, member.Roles, guildRoles, o.cfg.ProvisionalRoleName)

	switch decision.Outcome {
	case classify.OutcomeIgnored:
		return

	case classify.OutcomeEscalatedStaff:
		o.sendEscalation(s, staffTemplate)
		o.recordStat(func(db *database.OnboardingStatsDB) error {
			return db.IncrementEscalations(m.GuildID, 1)
		})

	case classify.OutcomeEscalatedHelp:
		o.sendEscalation(s, helpTemplate)
		o.recordStat(func(db *database.OnboardingStatsDB) error {
			return db.IncrementEscalations(m.GuildID, 1)
		})

	case classify.OutcomeRejectedNoRole:
		o.send(s, formatTemplate(roleNotFoundTemplate, map[string]string{"name": m.Author.Mention()}))
		o.recordStat(func(db *database.OnboardingStatsDB) error {
			return db.IncrementRejections(m.GuildID, 1)
		})

	case classify.OutcomeRejectedShortName:
		o.send(s, formatTemplate(nameTooShortTemplate, map[string]string{"name": m.Author.Mention()}))
		o.recordStat(func(db *database.OnboardingStatsDB) error {
			return db.IncrementRejections(m.GuildID, 1)
		})

	case classify.OutcomePromoted:
		// Nickname and role set go out in a single member edit.
		params := &discordgo.GuildMemberParams{
			Nick:  decision.Nickname,
			Roles: &decision.RoleIDs,
		}
		if _, err := s.GuildMemberEdit(m.GuildID, m.Author.ID, params); err != nil {
			log.Printf("Error promoting member %s: %v", m.Author.ID, err)
			o.somethingWentWrong(s)
			return
		}
		log.Printf("Promoted member %s to %q as %q", m.Author.ID, decision.RoleIDs, decision.Nickname)
		o.recordStat(func(db *database.OnboardingStatsDB) error {
			return db.IncrementPromotions(m.GuildID, 1)
		})
	}
}
