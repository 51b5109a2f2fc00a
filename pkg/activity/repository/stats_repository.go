package repository

import "towergrow/entities"

// StatsRepository stores the per-user reward counters.
type StatsRepository interface {
	// GetOrCreate returns the stats row, creating a zeroed one on first use.
	GetOrCreate(uid string) (entities.RewardStats, error)
	Save(st *entities.RewardStats) error
}
