package repositoryImp

import (
	"gorm.io/gorm"

	"towergrow/entities"
	"towergrow/pkg/activity/repository"
)

type statsRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StatsRepository { return &statsRepo{db} }

func (r *statsRepo) GetOrCreate(uid string) (entities.RewardStats, error) {
	var st entities.RewardStats
	if err := r.db.Where(entities.RewardStats{UserID: uid}).FirstOrCreate(&st).Error; err != nil {
		return entities.RewardStats{UserID: uid}, err
	}
	return st, nil
}

func (r *statsRepo) Save(st *entities.RewardStats) error { return r.db.Save(st).Error }
