package entities

import (
	"time"

	"gorm.io/datatypes"
)

// ScanResult is one Dr. AI scan appended to a slot's history.
type ScanResult struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Diagnosis   string `json:"diagnosis"`
	HealthScore int    `json:"health_score"`
}

// Slot is one planting position in the tower. Slots form a fixed pool per
// user (Index 0..N-1) seeded at migration and never destroyed.
//
// Invariant: Crop == nil implies PlantedDate == nil, Health == 0 and an empty
// scan history. Enforced by the tower service, assumed by the engines.
type Slot struct {
	SlotID      uint                                `gorm:"primaryKey" json:"slot_id"`
	UserID      string                              `gorm:"index:idx_slot_user_index,unique" json:"user_id"`
	Index       int                                 `gorm:"index:idx_slot_user_index,unique" json:"index"`
	Crop        *CropType                           `gorm:"serializer:json" json:"crop"`
	PlantedDate *time.Time                          `json:"planted_date"`
	Health      int                                 `json:"health"`
	ScanHistory datatypes.JSONSlice[ScanResult]     `json:"scan_history"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Planted reports whether the slot currently holds a crop.
func (s *Slot) Planted() bool { return s.Crop != nil }

// LastScanDate returns the date of the most recent scan, or nil if the slot
// has never been scanned.
func (s *Slot) LastScanDate() *string {
	if len(s.ScanHistory) == 0 {
		return nil
	}
	d := s.ScanHistory[len(s.ScanHistory)-1].Date
	return &d
}
