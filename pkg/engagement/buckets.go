package engagement

import (
	"fmt"
	"math"
	"time"
)

// The day/week/time-bucket keys below are part of the engine's public
// contract: sourceKeys built from them must be stable for a whole day, ISO
// week, or day segment so regeneration dedupes against persisted state.

// DayKey returns the calendar-day key for t, e.g. "2026-08-29".
func DayKey(t time.Time) string { return t.Format("2006-01-02") }

// WeekKey returns the ISO-week key for t, e.g. "2026-W35". Including the
// ISO year keeps week 1 keys unique across year boundaries.
func WeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", y, w)
}

// TimeBucket segments the local hour: morning [6,12), afternoon [12,18),
// evening otherwise.
func TimeBucket(hour int) string {
	switch {
	case hour >= 6 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// daysUntilHarvest counts whole days until planted+growDays, rounding up and
// clamping at zero once the harvest date has passed.
func daysUntilHarvest(planted time.Time, growDays int, now time.Time) int {
	harvest := planted.AddDate(0, 0, growDays)
	d := int(math.Ceil(harvest.Sub(now).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}

func daysSincePlanting(planted time.Time, now time.Time) int {
	return int(math.Floor(now.Sub(planted).Hours() / 24))
}

// daysSinceDay counts days since a YYYY-MM-DD date string. The second return
// is false when the date is absent or unparsable ("infinitely overdue").
func daysSinceDay(day *string, now time.Time) (int, bool) {
	if day == nil {
		return 0, false
	}
	t, err := time.ParseInLocation("2006-01-02", *day, now.Location())
	if err != nil {
		return 0, false
	}
	return int(math.Floor(now.Sub(t).Hours() / 24)), true
}
