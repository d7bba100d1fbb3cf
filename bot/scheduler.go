package bot

import (
	"fmt"
	"log"

	"onboarding-bot/database"
	"onboarding-bot/models"
	"onboarding-bot/utils"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
)

var c *cron.Cron

// startScheduler starts the cron jobs: an hourly sweep counting members who
// still carry the provisional role, and a daily summary report.
func startScheduler(s *discordgo.Session, cfg *models.Config) {
	log.Println("Initializing scheduler...")
	c = cron.New()

	_, err := c.AddFunc("@hourly", func() {
		sweepUnclassified(s, cfg)
	})
	if err != nil {
		log.Fatalf("Could not set up sweep cron job: %v", err)
	}

	_, err = c.AddFunc("@daily", func() {
		reportDailyStats(s, cfg)
	})
	if err != nil {
		log.Fatalf("Could not set up report cron job: %v", err)
	}

	c.Start()
	log.Println("Scheduler started: hourly unclassified sweep, daily summary.")

	// Seed the unclassified counts right away instead of waiting an hour.
	go sweepUnclassified(s, cfg)
}

// stopScheduler stops the cron jobs.
func stopScheduler() {
	if c != nil {
		c.Stop()
		log.Println("Scheduler stopped.")
	}
}

// sweepUnclassified counts, for every connected guild, the members still
// carrying the provisional role and stores the total in the stats ledger.
func sweepUnclassified(s *discordgo.Session, cfg *models.Config) {
	db, err := database.NewOnboardingStatsDB(cfg.StatsDBPath)
	if err != nil {
		log.Printf("Error opening stats database for sweep: %v", err)
		return
	}
	defer db.Close()

	for _, guild := range s.State.Guilds {
		guildRoles, err := s.GuildRoles(guild.ID)
		if err != nil {
			log.Printf("Error fetching roles for guild %s: %v", guild.ID, err)
			continue
		}

		var provisionalID string
		for _, role := range guildRoles {
			if role.Name == cfg.ProvisionalRoleName {
				provisionalID = role.ID
				break
			}
		}
		if provisionalID == "" {
			log.Printf("Guild %s has no %q role, skipping sweep.", guild.ID, cfg.ProvisionalRoleName)
			continue
		}

		members, err := s.GuildMembers(guild.ID, "", 1000)
		if err != nil {
			log.Printf("Error fetching members for guild %s: %v", guild.ID, err)
			continue
		}

		unclassified := 0
		for _, member := range members {
			for _, roleID := range member.Roles {
				if roleID == provisionalID {
					unclassified++
					break
				}
			}
		}

		if err := db.UpdateUnclassifiedTotal(guild.ID, unclassified); err != nil {
			log.Printf("Error updating unclassified total for guild %s: %v", guild.ID, err)
			continue
		}
		log.Printf("Guild %s: %d members still unclassified.", guild.ID, unclassified)
	}
}

// reportDailyStats posts each guild's counters through the admin logger.
func reportDailyStats(s *discordgo.Session, cfg *models.Config) {
	db, err := database.NewOnboardingStatsDB(cfg.StatsDBPath)
	if err != nil {
		log.Printf("Error opening stats database for report: %v", err)
		return
	}
	defer db.Close()

	for _, guild := range s.State.Guilds {
		stats, err := db.TodayStats(guild.ID)
		if err != nil {
			log.Printf("Error reading stats for guild %s: %v", guild.ID, err)
			continue
		}

		details := fmt.Sprintf(
			"Joins: %d, Leaves: %d, Promotions: %d, Rejections: %d, Escalations: %d, Still unclassified: %d",
			stats.Joins, stats.Leaves, stats.Promotions, stats.Rejections, stats.Escalations, stats.UnclassifiedTotal)
		utils.Info("scheduler", "Daily onboarding summary for "+guild.ID, details)
	}
}
