package serviceImp

import (
	"fmt"
	"log/slog"
	"time"

	"towergrow/entities"
	"towergrow/pkg/catalog"
	"towergrow/pkg/tower/repository"
	"towergrow/pkg/tower/service"
)

// refresher lets garden mutations trigger a notification re-evaluation
// without importing the notification store.
type refresher interface {
	Evaluate(uid string) ([]entities.Notification, error)
}

const plantHealth = 95

type towerSvc struct {
	repo     repository.SlotRepository
	crops    catalog.Catalog
	poolSize int
	notify   refresher
	now      func() time.Time
}

func New(repo repository.SlotRepository, crops catalog.Catalog, poolSize int, notify refresher, now func() time.Time) service.TowerService {
	if now == nil {
		now = time.Now
	}
	return &towerSvc{repo: repo, crops: crops, poolSize: poolSize, notify: notify, now: now}
}

func (s *towerSvc) List(uid string) ([]entities.Slot, error) {
	if err := s.repo.EnsurePool(uid, s.poolSize); err != nil {
		return nil, fmt.Errorf("ensure slot pool: %w", err)
	}
	return s.repo.ByUser(uid)
}

func (s *towerSvc) Plant(uid string, index int, cropName string) (*entities.Slot, error) {
	crop, ok := s.crops.Find(cropName)
	if !ok {
		return nil, fmt.Errorf("unknown crop %q", cropName)
	}
	if err := s.repo.EnsurePool(uid, s.poolSize); err != nil {
		return nil, fmt.Errorf("ensure slot pool: %w", err)
	}
	slot, err := s.repo.ByIndex(uid, index)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	slot.Crop = &crop
	slot.PlantedDate = &today
	slot.Health = plantHealth
	slot.ScanHistory = nil
	if err := s.repo.Save(slot); err != nil {
		return nil, err
	}
	s.refresh(uid)
	return slot, nil
}

func (s *towerSvc) Unplant(uid string, index int) (*entities.Slot, error) {
	slot, err := s.repo.ByIndex(uid, index)
	if err != nil {
		return nil, err
	}
	slot.Crop = nil
	slot.PlantedDate = nil
	slot.Health = 0
	slot.ScanHistory = nil
	if err := s.repo.Save(slot); err != nil {
		return nil, err
	}
	s.refresh(uid)
	return slot, nil
}

func (s *towerSvc) refresh(uid string) {
	if s.notify == nil {
		return
	}
	if _, err := s.notify.Evaluate(uid); err != nil {
		slog.Warn("notification refresh after slot change failed", "uid", uid, "error", err)
	}
}
