package service

import "towergrow/entities"

// TowerService is the sole mutation boundary for slots; it enforces the
// crop/plantedDate/health invariant the engines rely on.
type TowerService interface {
	List(uid string) ([]entities.Slot, error)
	Plant(uid string, index int, cropName string) (*entities.Slot, error)
	Unplant(uid string, index int) (*entities.Slot, error)
}
