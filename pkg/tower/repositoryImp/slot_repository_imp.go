package repositoryImp

import (
	"gorm.io/gorm"

	"towergrow/entities"
	"towergrow/pkg/tower/repository"
)

type slotRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SlotRepository { return &slotRepo{db} }

func (r *slotRepo) EnsurePool(uid string, size int) error {
	var have []int
	if err := r.db.Model(&entities.Slot{}).Where("user_id = ?", uid).Pluck("`index`", &have).Error; err != nil {
		return err
	}
	seen := make(map[int]struct{}, len(have))
	for _, i := range have {
		seen[i] = struct{}{}
	}
	var missing []entities.Slot
	for i := 0; i < size; i++ {
		if _, ok := seen[i]; !ok {
			missing = append(missing, entities.Slot{UserID: uid, Index: i})
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return r.db.Create(&missing).Error
}

func (r *slotRepo) ByUser(uid string) ([]entities.Slot, error) {
	var out []entities.Slot
	if err := r.db.Where("user_id = ?", uid).Order("`index` ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *slotRepo) ByIndex(uid string, index int) (*entities.Slot, error) {
	var s entities.Slot
	if err := r.db.Where("user_id = ? AND `index` = ?", uid, index).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *slotRepo) Save(s *entities.Slot) error { return r.db.Save(s).Error }
