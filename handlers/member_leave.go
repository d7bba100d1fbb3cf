package handlers

import (
	"log"

	"onboarding-bot/database"

	"github.com/bwmarrin/discordgo"
)

// MemberRemove records a departure in the stats ledger so the daily summary
// shows churn during onboarding.
func (o *Onboarding) MemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	log.Printf("Member %s (%s) left guild %s", m.User.Username, m.User.ID, m.GuildID)

	o.recordStat(func(db *database.OnboardingStatsDB) error {
		return db.IncrementLeaves(m.GuildID, 1)
	})
}
