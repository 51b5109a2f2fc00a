package repository

import "towergrow/entities"

// NotifyRepository persists the per-user notification state blob. Load must
// treat absence as an empty state, not an error.
type NotifyRepository interface {
	Load(uid string) (entities.NotifyState, error)
	Save(st *entities.NotifyState) error
}
