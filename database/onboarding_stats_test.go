package database

import (
	"path/filepath"
	"testing"
)

func openTestDB(t *testing.T) *OnboardingStatsDB {
	t.Helper()
	db, err := NewOnboardingStatsDB(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("NewOnboardingStatsDB: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func TestTodayStatsEmptyGuild(t *testing.T) {
	db := openTestDB(t)

	stats, err := db.TodayStats("guild-1")
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.Joins != 0 || stats.Promotions != 0 || stats.Escalations != 0 {
		t.Errorf("expected zero counters for untouched guild, got %+v", stats)
	}
}

func TestCountersAccumulate(t *testing.T) {
	db := openTestDB(t)
	guildID := "guild-1"

	steps := []struct {
		name string
		fn   func(string, int) error
		n    int
	}{
		{"joins", db.IncrementJoins, 3},
		{"leaves", db.IncrementLeaves, 1},
		{"promotions", db.IncrementPromotions, 2},
		{"rejections", db.IncrementRejections, 4},
		{"escalations", db.IncrementEscalations, 1},
	}
	for _, step := range steps {
		for i := 0; i < step.n; i++ {
			if err := step.fn(guildID, 1); err != nil {
				t.Fatalf("increment %s: %v", step.name, err)
			}
		}
	}
	if err := db.UpdateUnclassifiedTotal(guildID, 7); err != nil {
		t.Fatalf("UpdateUnclassifiedTotal: %v", err)
	}

	stats, err := db.TodayStats(guildID)
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.Joins != 3 || stats.Leaves != 1 || stats.Promotions != 2 ||
		stats.Rejections != 4 || stats.Escalations != 1 || stats.UnclassifiedTotal != 7 {
		t.Errorf("unexpected counters: %+v", stats)
	}
}

func TestGuildsAreIndependent(t *testing.T) {
	db := openTestDB(t)

	if err := db.IncrementJoins("guild-a", 5); err != nil {
		t.Fatalf("IncrementJoins: %v", err)
	}

	stats, err := db.TodayStats("guild-b")
	if err != nil {
		t.Fatalf("TodayStats: %v", err)
	}
	if stats.Joins != 0 {
		t.Errorf("guild-b joins = %d, want 0", stats.Joins)
	}
}
