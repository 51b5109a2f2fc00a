package service

import (
	"towergrow/entities"
	"towergrow/pkg/ai"
)

// Outcome is what a completed scan reports back: the updated slot plus the
// diagnosis appended to its history and the raw identification result.
type Outcome struct {
	Slot           *entities.Slot     `json:"slot"`
	Diagnosis      string             `json:"diagnosis"`
	HealthScore    int                `json:"health_score"`
	Identification *ai.IdentifyResult `json:"identification"`
}

// ScanService runs a Dr. AI scan against a planted slot: identifies the
// plant, derives a diagnosis and health score, and records both on the slot.
type ScanService interface {
	Scan(uid string, index int, imageBase64 string) (*Outcome, error)
}
