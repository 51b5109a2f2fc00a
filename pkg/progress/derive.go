// Package progress computes the derived progression metrics: XP, level,
// achievements and personal records. Everything here is pure and recomputed
// from raw garden state on every read; nothing is stored.
package progress

import (
	"fmt"

	"towergrow/entities"
)

// Levels is the fixed progression table, ascending by MinXP. The top tier's
// MaxXP only caps the progress-bar display; XP itself is unbounded.
var Levels = []entities.GrowLevel{
	{Level: 1, Name: "Seedling", Icon: "🌱", MinXP: 0, MaxXP: 100},
	{Level: 2, Name: "Sprout", Icon: "🌿", MinXP: 100, MaxXP: 300},
	{Level: 3, Name: "Gardener", Icon: "🪴", MinXP: 300, MaxXP: 600},
	{Level: 4, Name: "Botanist", Icon: "🧬", MinXP: 600, MaxXP: 1000},
	{Level: 5, Name: "Master Grower", Icon: "👑", MinXP: 1000, MaxXP: 2000},
}

// XP weights per action kind.
const (
	xpPerPlanted  = 30
	xpPerScan     = 25
	xpPerWater    = 10
	xpPerNutrient = 15
	xpPerLab      = 20
)

// XP derives the total experience from slots and counters.
func XP(slots []entities.Slot, stats entities.RewardStats) int {
	planted, scans := 0, 0
	for i := range slots {
		if slots[i].Planted() {
			planted++
		}
		scans += len(slots[i].ScanHistory)
	}
	return planted*xpPerPlanted +
		scans*xpPerScan +
		stats.WaterLogs*xpPerWater +
		stats.NutrientLogs*xpPerNutrient +
		stats.LabLogs*xpPerLab
}

// LevelFor returns the highest level whose MinXP is at most xp; the lowest
// level is the fallback for any xp below the table.
func LevelFor(xp int) entities.GrowLevel {
	for i := len(Levels) - 1; i >= 0; i-- {
		if xp >= Levels[i].MinXP {
			return Levels[i]
		}
	}
	return Levels[0]
}

// LevelProgress returns the position within the current level in [0,1],
// clamped at 1 once xp passes the level's upper bound.
func LevelProgress(xp int) float64 {
	lv := LevelFor(xp)
	p := float64(xp-lv.MinXP) / float64(lv.MaxXP-lv.MinXP)
	if p > 1 {
		return 1
	}
	return p
}

// Achievements derives the full fixed catalog. Callers detect "newly earned"
// by diffing earned ids against their own previous snapshot; this function
// has no memory.
func Achievements(slots []entities.Slot, stats entities.RewardStats) []entities.Achievement {
	planted, scans := 0, 0
	unique := map[string]struct{}{}
	best := 0
	for i := range slots {
		s := &slots[i]
		if s.Planted() {
			planted++
			unique[s.Crop.Name] = struct{}{}
		}
		scans += len(s.ScanHistory)
		for _, r := range s.ScanHistory {
			if r.HealthScore > best {
				best = r.HealthScore
			}
		}
	}

	mk := func(id, name, desc, icon string, cat entities.AchievementCategory, target, current int) entities.Achievement {
		return entities.Achievement{
			ID: id, Name: name, Description: desc, Icon: icon,
			Category: cat, Target: target, Current: current,
			Earned: current >= target,
		}
	}

	return []entities.Achievement{
		// Harvest
		mk("h1", "First Seed", "Plant your first crop", "🌱", entities.CategoryHarvest, 1, planted),
		mk("h2", "Diverse Garden", "Grow 6 different crop types", "🌈", entities.CategoryHarvest, 6, len(unique)),
		mk("h3", "Full Tower", "Fill 20+ slots", "🏗️", entities.CategoryHarvest, 20, planted),
		// Care
		mk("c1", "Hydration Hero", "Log 7 water entries", "💧", entities.CategoryCare, 7, stats.WaterLogs),
		mk("c2", "Nutrient Master", "Log 10 nutrient entries", "⚗️", entities.CategoryCare, 10, stats.NutrientLogs),
		mk("c3", "Lab Regular", "Log 14 lab readings", "🔬", entities.CategoryCare, 14, stats.LabLogs),
		// Science
		mk("s1", "First Scan", "Complete 5 AI scans", "📸", entities.CategoryScience, 5, scans),
		mk("s2", "Perfect Health", "Achieve 95%+ health score", "💚", entities.CategoryScience, 95, best),
		mk("s3", "Data Nerd", "Log 7 lab readings", "📊", entities.CategoryScience, 7, stats.LabLogs),
		// Streak
		mk("st1", "Consistent", "Maintain a 3-day streak", "🔥", entities.CategoryStreak, 3, stats.LongestStreak),
		mk("st2", "Dedicated", "Maintain a 7-day streak", "⚡", entities.CategoryStreak, 7, stats.LongestStreak),
		mk("st3", "Unstoppable", "Maintain a 30-day streak", "🏆", entities.CategoryStreak, 30, stats.LongestStreak),
	}
}

// EarnedIDs filters achievements down to the ids currently earned.
func EarnedIDs(achs []entities.Achievement) []string {
	var ids []string
	for _, a := range achs {
		if a.Earned {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// PersonalRecords derives the five fixed records.
func PersonalRecords(slots []entities.Slot, stats entities.RewardStats) []entities.PersonalRecord {
	planted, scans, best := 0, 0, 0
	for i := range slots {
		if slots[i].Planted() {
			planted++
		}
		scans += len(slots[i].ScanHistory)
		for _, r := range slots[i].ScanHistory {
			if r.HealthScore > best {
				best = r.HealthScore
			}
		}
	}
	return []entities.PersonalRecord{
		{Label: "Best Health Score", Value: fmt.Sprintf("%d%%", best), Icon: "💚"},
		{Label: "Total Crops Planted", Value: fmt.Sprintf("%d", planted), Icon: "🌱"},
		{Label: "Total Scans", Value: fmt.Sprintf("%d", scans), Icon: "📸"},
		{Label: "Longest Streak", Value: fmt.Sprintf("%d days", stats.LongestStreak), Icon: "🔥"},
		{Label: "Water Logged", Value: fmt.Sprintf("%d", stats.WaterLogs), Icon: "💧"},
	}
}
