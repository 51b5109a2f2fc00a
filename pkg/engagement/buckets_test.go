package engagement

import (
	"testing"
	"time"
)

func TestWeekKey(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"2026-03-10", "2026-W11"},
		{"2026-01-01", "2026-W01"},
		// Jan 1-3 2027 belong to ISO week 53 of 2026.
		{"2027-01-01", "2026-W53"},
		{"2026-12-28", "2026-W53"},
	}
	for _, c := range cases {
		d, err := time.Parse("2006-01-02", c.date)
		if err != nil {
			t.Fatalf("parse %s: %v", c.date, err)
		}
		if got := WeekKey(d); got != c.want {
			t.Errorf("WeekKey(%s) = %s, want %s", c.date, got, c.want)
		}
	}
}

func TestTimeBucket(t *testing.T) {
	cases := []struct {
		hour int
		want string
	}{
		{0, "evening"},
		{5, "evening"},
		{6, "morning"},
		{11, "morning"},
		{12, "afternoon"},
		{17, "afternoon"},
		{18, "evening"},
		{23, "evening"},
	}
	for _, c := range cases {
		if got := TimeBucket(c.hour); got != c.want {
			t.Errorf("TimeBucket(%d) = %s, want %s", c.hour, got, c.want)
		}
	}
}

func TestDaysUntilHarvest(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	day := func(offset int) time.Time {
		return time.Date(2026, 3, 10+offset, 0, 0, 0, 0, time.UTC)
	}

	if got := daysUntilHarvest(day(-5), 5, now); got != 0 {
		t.Errorf("harvest day: got %d, want 0", got)
	}
	if got := daysUntilHarvest(day(-10), 5, now); got != 0 {
		t.Errorf("past harvest clamps: got %d, want 0", got)
	}
	if got := daysUntilHarvest(day(-4), 5, now); got != 1 {
		t.Errorf("one day out: got %d, want 1", got)
	}
	if got := daysUntilHarvest(day(-2), 5, now); got != 3 {
		t.Errorf("three days out: got %d, want 3", got)
	}
}

func TestDaysSinceDay(t *testing.T) {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	if _, ok := daysSinceDay(nil, now); ok {
		t.Error("nil date should report not-present")
	}
	bad := "not-a-date"
	if _, ok := daysSinceDay(&bad, now); ok {
		t.Error("unparsable date should report not-present")
	}
	old := "2026-03-07"
	since, ok := daysSinceDay(&old, now)
	if !ok || since != 3 {
		t.Errorf("got (%d, %v), want (3, true)", since, ok)
	}
	today := "2026-03-10"
	since, ok = daysSinceDay(&today, now)
	if !ok || since != 0 {
		t.Errorf("same day: got (%d, %v), want (0, true)", since, ok)
	}
}
