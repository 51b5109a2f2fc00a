package repository

import "towergrow/entities"

// SlotRepository owns the fixed per-user slot pool.
type SlotRepository interface {
	// EnsurePool creates missing empty slots so indexes 0..size-1 exist.
	// Existing slots are never touched or destroyed.
	EnsurePool(uid string, size int) error
	ByUser(uid string) ([]entities.Slot, error)
	ByIndex(uid string, index int) (*entities.Slot, error)
	Save(s *entities.Slot) error
}
