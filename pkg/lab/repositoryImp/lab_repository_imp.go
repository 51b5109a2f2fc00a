package repositoryImp

import (
	"time"

	"gorm.io/gorm"

	"towergrow/entities"
	"towergrow/pkg/lab/repository"
)

type labRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.LabRepository { return &labRepo{db} }

func (r *labRepo) Append(reading *entities.LabReading) error {
	return r.db.Create(reading).Error
}

func (r *labRepo) Recent(uid string, days int) ([]entities.LabReading, error) {
	var out []entities.LabReading
	cut := time.Now().AddDate(0, 0, -days)
	if err := r.db.Where("user_id = ? AND date >= ?", uid, cut).Order("date ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *labRepo) Series(uid string) (entities.LabSeries, error) {
	var rows []entities.LabReading
	if err := r.db.Where("user_id = ?", uid).Order("date ASC").Find(&rows).Error; err != nil {
		return entities.LabSeries{}, err
	}
	return entities.SeriesFromReadings(rows), nil
}
