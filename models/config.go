package models

// Config holds every value the bot needs, materialized once at startup and
// passed into components explicitly.
type Config struct {
	// Token is the Discord bot token.
	Token string

	// WelcomeChannelID is the channel where new members introduce themselves
	// and where every onboarding message lands.
	WelcomeChannelID string

	// RulesChannelID is mentioned in the welcome message.
	RulesChannelID string

	// ProvisionalRoleName is the marker role assigned on join and removed on
	// classification.
	ProvisionalRoleName string

	// AdminRoleName is resolved case-insensitively when escalating to a
	// moderator.
	AdminRoleName string

	// LogChannelID, when set, receives operational log embeds.
	LogChannelID string

	// StatsDBPath is the sqlite file backing the onboarding stats ledger.
	StatsDBPath string
}
