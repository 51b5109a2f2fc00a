package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"towergrow/entities"
	"towergrow/pkg/notification/repository"
)

type notifyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.NotifyRepository { return &notifyRepo{db} }

func (r *notifyRepo) Load(uid string) (entities.NotifyState, error) {
	var st entities.NotifyState
	err := r.db.Where("user_id = ?", uid).First(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.NotifyState{UserID: uid}, nil
	}
	if err != nil {
		return entities.NotifyState{UserID: uid}, err
	}
	return st, nil
}

func (r *notifyRepo) Save(st *entities.NotifyState) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(st).Error
}
