package repository

import "towergrow/entities"

// LabRepository stores water-chemistry readings. Append-only.
type LabRepository interface {
	Append(r *entities.LabReading) error
	Recent(uid string, days int) ([]entities.LabReading, error)
	// Series returns all readings fanned out per metric, ascending by date.
	Series(uid string) (entities.LabSeries, error)
}
