package handlers

import (
	"log"

	"onboarding-bot/bot"
	"onboarding-bot/database"
	"onboarding-bot/models"

	"github.com/bwmarrin/discordgo"
)

// Onboarding bundles the configuration the event handlers need. All durable
// state lives in Discord itself; the struct only carries config so handlers
// never read ambient globals.
type Onboarding struct {
	cfg *models.Config
}

// New creates the onboarding handler set for the given configuration.
func New(cfg *models.Config) *Onboarding {
	return &Onboarding{cfg: cfg}
}

// Register attaches all event handlers to the bot's session.
func Register(b *bot.Bot) {
	cfg := b.Config
	o := New(cfg)

	b.Session.AddHandler(o.MemberAdd)
	b.Session.AddHandler(o.MemberRemove)
	b.Session.AddHandler(o.MessageCreate)
	b.Session.AddHandler(InteractionCreate(b, cfg))

	// Log when the bot is connected.
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
}

// recordStat applies one counter update to the stats ledger, opening and
// closing the database around the call. Ledger failures are logged and never
// affect the onboarding outcome.
func (o *Onboarding) recordStat(update func(db *database.OnboardingStatsDB) error) {
	db, err := database.NewOnboardingStatsDB(o.cfg.StatsDBPath)
	if err != nil {
		log.Printf("Error opening stats database: %v", err)
		return
	}
	defer db.Close()

	if err := update(db); err != nil {
		log.Printf("Error recording onboarding stats: %v", err)
	}
}
