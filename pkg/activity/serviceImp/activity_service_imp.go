package serviceImp

import (
	"fmt"
	"log/slog"
	"time"

	"towergrow/entities"
	"towergrow/pkg/activity/repository"
	"towergrow/pkg/activity/service"
	"towergrow/pkg/engagement"
)

type refresher interface {
	Evaluate(uid string) ([]entities.Notification, error)
}

type activitySvc struct {
	repo   repository.StatsRepository
	notify refresher
	now    func() time.Time
}

func New(repo repository.StatsRepository, notify refresher, now func() time.Time) service.ActivityService {
	if now == nil {
		now = time.Now
	}
	return &activitySvc{repo: repo, notify: notify, now: now}
}

func (s *activitySvc) Stats(uid string) (entities.RewardStats, error) {
	return s.repo.GetOrCreate(uid)
}

func (s *activitySvc) Log(uid string, kind service.Kind) (entities.RewardStats, error) {
	st, err := s.repo.GetOrCreate(uid)
	if err != nil {
		return entities.RewardStats{}, err
	}

	switch kind {
	case service.KindWater:
		st.WaterLogs++
	case service.KindNutrient:
		st.NutrientLogs++
	case service.KindLab:
		st.LabLogs++
	default:
		return entities.RewardStats{}, fmt.Errorf("unknown activity kind %q", kind)
	}

	now := s.now()
	today := engagement.DayKey(now)
	if st.LastActivityDate != today {
		yesterday := engagement.DayKey(now.AddDate(0, 0, -1))
		if st.LastActivityDate == yesterday {
			st.Streak++
		} else {
			st.Streak = 1
		}
		st.LastActivityDate = today
		if st.Streak > st.LongestStreak {
			st.LongestStreak = st.Streak
		}
	}

	// Weekly counter resets when the ISO week rolls over.
	week := engagement.WeekKey(now)
	if st.WeekKey != week {
		st.WeekKey = week
		st.WeeklyActivities = 0
	}
	st.WeeklyActivities++

	if err := s.repo.Save(&st); err != nil {
		return entities.RewardStats{}, err
	}

	if s.notify != nil {
		if _, err := s.notify.Evaluate(uid); err != nil {
			slog.Warn("notification refresh after activity failed", "uid", uid, "error", err)
		}
	}
	return st, nil
}
