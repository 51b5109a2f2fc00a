package serviceImp_test

import (
	"testing"
	"time"

	"towergrow/entities"
	"towergrow/pkg/activity/service"
	"towergrow/pkg/activity/serviceImp"
)

type fakeStatsRepo struct{ st entities.RewardStats }

func (f *fakeStatsRepo) GetOrCreate(uid string) (entities.RewardStats, error) {
	if f.st.UserID == "" {
		f.st.UserID = uid
	}
	return f.st, nil
}

func (f *fakeStatsRepo) Save(st *entities.RewardStats) error {
	f.st = *st
	return nil
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestLogBumpsCounters(t *testing.T) {
	repo := &fakeStatsRepo{}
	ck := &clock{t: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}
	svc := serviceImp.New(repo, nil, ck.now)

	st, err := svc.Log("u1", service.KindWater)
	if err != nil {
		t.Fatalf("Log water: %v", err)
	}
	if st.WaterLogs != 1 || st.NutrientLogs != 0 || st.LabLogs != 0 {
		t.Errorf("counters = %d/%d/%d, want 1/0/0", st.WaterLogs, st.NutrientLogs, st.LabLogs)
	}

	if _, err := svc.Log("u1", service.KindNutrient); err != nil {
		t.Fatalf("Log nutrient: %v", err)
	}
	st, err = svc.Log("u1", service.KindLab)
	if err != nil {
		t.Fatalf("Log lab: %v", err)
	}
	if st.WaterLogs != 1 || st.NutrientLogs != 1 || st.LabLogs != 1 {
		t.Errorf("counters = %d/%d/%d, want 1/1/1", st.WaterLogs, st.NutrientLogs, st.LabLogs)
	}

	if _, err := svc.Log("u1", service.Kind("juggling")); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestStreakTransitions(t *testing.T) {
	repo := &fakeStatsRepo{}
	ck := &clock{t: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}
	svc := serviceImp.New(repo, nil, ck.now)

	st, _ := svc.Log("u1", service.KindWater)
	if st.Streak != 1 || st.LongestStreak != 1 {
		t.Fatalf("first log: streak %d/%d, want 1/1", st.Streak, st.LongestStreak)
	}

	// Second activity the same day leaves the streak alone.
	st, _ = svc.Log("u1", service.KindWater)
	if st.Streak != 1 {
		t.Errorf("same-day streak = %d, want 1", st.Streak)
	}

	// Next day extends.
	ck.t = ck.t.AddDate(0, 0, 1)
	st, _ = svc.Log("u1", service.KindWater)
	if st.Streak != 2 || st.LongestStreak != 2 {
		t.Errorf("next-day streak = %d/%d, want 2/2", st.Streak, st.LongestStreak)
	}

	// A gap resets the streak but keeps the record.
	ck.t = ck.t.AddDate(0, 0, 3)
	st, _ = svc.Log("u1", service.KindWater)
	if st.Streak != 1 {
		t.Errorf("post-gap streak = %d, want 1", st.Streak)
	}
	if st.LongestStreak != 2 {
		t.Errorf("longest streak = %d, want 2", st.LongestStreak)
	}
}

func TestWeeklyCounterResetsOnNewWeek(t *testing.T) {
	repo := &fakeStatsRepo{}
	// A Sunday; the next day starts a new ISO week.
	ck := &clock{t: time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)}
	svc := serviceImp.New(repo, nil, ck.now)

	svc.Log("u1", service.KindWater)
	st, _ := svc.Log("u1", service.KindWater)
	if st.WeeklyActivities != 2 {
		t.Fatalf("weekly = %d, want 2", st.WeeklyActivities)
	}

	ck.t = ck.t.AddDate(0, 0, 1) // Monday
	st, _ = svc.Log("u1", service.KindWater)
	if st.WeeklyActivities != 1 {
		t.Errorf("weekly after rollover = %d, want 1", st.WeeklyActivities)
	}
}
