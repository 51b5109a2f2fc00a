package progress

import (
	"testing"
	"time"

	"towergrow/entities"
)

func planted(n int, scansEach int) []entities.Slot {
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	crop := entities.CropType{Name: "Basil", Icon: "🌿", GrowDays: 21}
	slots := make([]entities.Slot, n)
	for i := range slots {
		slots[i] = entities.Slot{Index: i, Crop: &crop, PlantedDate: &day, Health: 95}
		for j := 0; j < scansEach; j++ {
			slots[i].ScanHistory = append(slots[i].ScanHistory, entities.ScanResult{
				Date: "2026-03-02", Diagnosis: "ok", HealthScore: 90,
			})
		}
	}
	return slots
}

func TestXPWeights(t *testing.T) {
	stats := entities.RewardStats{WaterLogs: 2, NutrientLogs: 1, LabLogs: 3}
	slots := planted(2, 1)
	// 2*30 + 2*25 + 2*10 + 1*15 + 3*20 = 205
	if got := XP(slots, stats); got != 205 {
		t.Errorf("XP = %d, want 205", got)
	}

	empty := entities.Slot{Index: 5}
	slots = append(slots, empty)
	if got := XP(slots, stats); got != 205 {
		t.Errorf("empty slot must not add XP: got %d", got)
	}
}

func TestLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1}, {99, 1}, {100, 2}, {299, 2}, {300, 3}, {600, 4}, {1000, 5}, {5000, 5},
	}
	for _, c := range cases {
		if got := LevelFor(c.xp); got.Level != c.want {
			t.Errorf("LevelFor(%d) = %d, want %d", c.xp, got.Level, c.want)
		}
	}
}

func TestLevelProgressClamped(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Errorf("LevelProgress(0) = %f, want 0", got)
	}
	if got := LevelProgress(50); got != 0.5 {
		t.Errorf("LevelProgress(50) = %f, want 0.5", got)
	}
	// Past the top tier's display cap.
	if got := LevelProgress(9999); got != 1 {
		t.Errorf("LevelProgress(9999) = %f, want 1", got)
	}
}

func TestAchievements(t *testing.T) {
	achs := Achievements(nil, entities.RewardStats{})
	if len(achs) != 12 {
		t.Fatalf("got %d achievements, want 12", len(achs))
	}
	for _, a := range achs {
		if a.Earned {
			t.Errorf("%s earned with zero state", a.ID)
		}
	}

	achs = Achievements(planted(1, 0), entities.RewardStats{})
	byID := map[string]entities.Achievement{}
	for _, a := range achs {
		byID[a.ID] = a
	}
	if !byID["h1"].Earned {
		t.Error("planting one crop should earn h1")
	}
	if byID["h2"].Earned || byID["h3"].Earned {
		t.Error("one crop must not earn the bigger harvest badges")
	}

	achs = Achievements(nil, entities.RewardStats{LongestStreak: 7})
	for _, a := range achs {
		switch a.ID {
		case "st1", "st2":
			if !a.Earned {
				t.Errorf("%s should be earned at a 7-day longest streak", a.ID)
			}
		case "st3":
			if a.Earned {
				t.Error("st3 needs 30 days")
			}
		}
	}
}

func TestEarnedIDs(t *testing.T) {
	ids := EarnedIDs(Achievements(planted(1, 0), entities.RewardStats{}))
	if len(ids) != 1 || ids[0] != "h1" {
		t.Errorf("EarnedIDs = %v, want [h1]", ids)
	}
}

func TestPersonalRecords(t *testing.T) {
	recs := PersonalRecords(planted(3, 2), entities.RewardStats{LongestStreak: 4, WaterLogs: 9})
	if len(recs) != 5 {
		t.Fatalf("got %d records, want 5", len(recs))
	}
	want := map[string]string{
		"Best Health Score":   "90%",
		"Total Crops Planted": "3",
		"Total Scans":         "6",
		"Longest Streak":      "4 days",
		"Water Logged":        "9",
	}
	for _, r := range recs {
		if w, ok := want[r.Label]; !ok || r.Value != w {
			t.Errorf("%s = %q, want %q", r.Label, r.Value, w)
		}
	}
}
