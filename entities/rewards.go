package entities

import "time"

// RewardStats holds the aggregate activity counters for one user. The log
// counters are monotonic; streak bookkeeping is maintained by the activity
// service on every log.
type RewardStats struct {
	UserID           string `gorm:"primaryKey" json:"user_id"`
	WaterLogs        int    `json:"water_logs"`
	NutrientLogs     int    `json:"nutrient_logs"`
	LabLogs          int    `json:"lab_logs"`
	Streak           int    `json:"streak"`
	LongestStreak    int    `json:"longest_streak"`
	WeeklyActivities int    `json:"weekly_activities"`

	// LastActivityDate (YYYY-MM-DD) and WeekKey (ISO week, e.g. 2026-W35)
	// drive streak continuation and the weekly counter rollover.
	LastActivityDate string `json:"last_activity_date"`
	WeekKey          string `json:"week_key"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GrowLevel is one tier of the fixed progression table.
type GrowLevel struct {
	Level int    `json:"level"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	MinXP int    `json:"min_xp"`
	MaxXP int    `json:"max_xp"`
}

// AchievementCategory routes achievement nudges to a destination tab.
type AchievementCategory string

const (
	CategoryHarvest AchievementCategory = "harvest"
	CategoryCare    AchievementCategory = "care"
	CategoryScience AchievementCategory = "science"
	CategoryStreak  AchievementCategory = "streak"
)

// Achievement is a derived snapshot, recomputed in full on every evaluation.
// Only the set of earned ids is ever persisted (see NotifyState).
type Achievement struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Icon        string              `json:"icon"`
	Category    AchievementCategory `json:"category"`
	Target      int                 `json:"target"`
	Current     int                 `json:"current"`
	Earned      bool                `json:"earned"`
}

// PersonalRecord is one row of the fixed records board.
type PersonalRecord struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon"`
}
