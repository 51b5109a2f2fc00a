package service

import "towergrow/entities"

// Kind is a loggable activity type.
type Kind string

const (
	KindWater    Kind = "water"
	KindNutrient Kind = "nutrient"
	KindLab      Kind = "lab"
)

// ActivityService maintains the reward counters: per-kind log counts, the
// consecutive-day streak, and the weekly activity counter.
type ActivityService interface {
	Log(uid string, kind Kind) (entities.RewardStats, error)
	Stats(uid string) (entities.RewardStats, error)
}
