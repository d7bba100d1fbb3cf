package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DayStats is one guild's onboarding counters for a single day.
type DayStats struct {
	GuildID           string
	Date              string
	Joins             int
	Leaves            int
	Promotions        int
	Rejections        int
	Escalations       int
	UnclassifiedTotal int
}

// OnboardingStatsDB records per-guild daily onboarding counters. It is an
// observability ledger only: nothing in the classification path reads it, so
// losing the file never changes who gets which role.
type OnboardingStatsDB struct {
	db *sql.DB
}

// NewOnboardingStatsDB opens (and if needed initializes) the stats database
// at dbPath, creating parent directories on the way.
func NewOnboardingStatsDB(dbPath string) (*OnboardingStatsDB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	sdb := &OnboardingStatsDB{db: db}
	if err := sdb.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error initializing tables: %w", err)
	}

	return sdb, nil
}

// Close closes the database connection.
func (sdb *OnboardingStatsDB) Close() {
	if sdb.db != nil {
		sdb.db.Close()
	}
}

func (sdb *OnboardingStatsDB) initTables() error {
	var name string
	err := sdb.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='onboarding_stats'").Scan(&name)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("error checking for table: %w", err)
	}
	if name == "onboarding_stats" {
		return nil
	}

	createSQL := `CREATE TABLE onboarding_stats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		guild_id TEXT NOT NULL,
		date TEXT NOT NULL,
		joins_today INTEGER DEFAULT 0,
		leaves_today INTEGER DEFAULT 0,
		promotions_today INTEGER DEFAULT 0,
		rejections_today INTEGER DEFAULT 0,
		escalations_today INTEGER DEFAULT 0,
		unclassified_total INTEGER DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(guild_id, date)
	);`

	if _, err := sdb.db.Exec(createSQL); err != nil {
		return fmt.Errorf("error creating onboarding_stats table: %w", err)
	}

	log.Println("Onboarding stats table initialized.")
	return nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// ensureTodayRecord makes sure a row exists for guildID and today's date.
func (sdb *OnboardingStatsDB) ensureTodayRecord(guildID string) error {
	query := `INSERT OR IGNORE INTO onboarding_stats (guild_id, date) VALUES (?, ?)`
	if _, err := sdb.db.Exec(query, guildID, today()); err != nil {
		return fmt.Errorf("error ensuring today's record: %w", err)
	}
	return nil
}

// increment bumps a single counter column for guildID's row of today.
func (sdb *OnboardingStatsDB) increment(guildID, column string, count int) error {
	if err := sdb.ensureTodayRecord(guildID); err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE onboarding_stats SET
				%s = %s + ?,
				updated_at = CURRENT_TIMESTAMP
			  WHERE guild_id = ? AND date = ?`, column, column)

	if _, err := sdb.db.Exec(query, count, guildID, today()); err != nil {
		return fmt.Errorf("error updating %s: %w", column, err)
	}
	return nil
}

// IncrementJoins records count members joining guildID today.
func (sdb *OnboardingStatsDB) IncrementJoins(guildID string, count int) error {
	return sdb.increment(guildID, "joins_today", count)
}

// IncrementLeaves records count members leaving guildID today.
func (sdb *OnboardingStatsDB) IncrementLeaves(guildID string, count int) error {
	return sdb.increment(guildID, "leaves_today", count)
}

// IncrementPromotions records count successful classifications today.
func (sdb *OnboardingStatsDB) IncrementPromotions(guildID string, count int) error {
	return sdb.increment(guildID, "promotions_today", count)
}

// IncrementRejections records count rejected classification attempts today.
func (sdb *OnboardingStatsDB) IncrementRejections(guildID string, count int) error {
	return sdb.increment(guildID, "rejections_today", count)
}

// IncrementEscalations records count moderator escalations today.
func (sdb *OnboardingStatsDB) IncrementEscalations(guildID string, count int) error {
	return sdb.increment(guildID, "escalations_today", count)
}

// UpdateUnclassifiedTotal stores the current number of members still carrying
// the provisional role, as counted by the scheduler sweep.
func (sdb *OnboardingStatsDB) UpdateUnclassifiedTotal(guildID string, total int) error {
	if err := sdb.ensureTodayRecord(guildID); err != nil {
		return err
	}

	query := `UPDATE onboarding_stats SET
				unclassified_total = ?,
				updated_at = CURRENT_TIMESTAMP
			  WHERE guild_id = ? AND date = ?`

	if _, err := sdb.db.Exec(query, total, guildID, today()); err != nil {
		return fmt.Errorf("error updating unclassified total: %w", err)
	}
	return nil
}

// TodayStats returns guildID's counters for today. A guild with no activity
// yet gets a zero-valued row back.
func (sdb *OnboardingStatsDB) TodayStats(guildID string) (*DayStats, error) {
	stats := &DayStats{GuildID: guildID, Date: today()}

	query := `SELECT joins_today, leaves_today, promotions_today, rejections_today, escalations_today, unclassified_total
			  FROM onboarding_stats WHERE guild_id = ? AND date = ?`

	err := sdb.db.QueryRow(query, guildID, stats.Date).Scan(
		&stats.Joins, &stats.Leaves, &stats.Promotions,
		&stats.Rejections, &stats.Escalations, &stats.UnclassifiedTotal)
	if err == sql.ErrNoRows {
		return stats, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading today's stats: %w", err)
	}
	return stats, nil
}
