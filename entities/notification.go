package entities

import "time"

// NotificationType doubles as the priority tier: urgent sorts first.
type NotificationType string

const (
	NotificationUrgent      NotificationType = "urgent"
	NotificationCelebration NotificationType = "celebration"
	NotificationReminder    NotificationType = "reminder"
	NotificationSocial      NotificationType = "social"
	NotificationTip         NotificationType = "tip"
)

// Priority returns the numeric rank for sorting (urgent=1 highest).
func (t NotificationType) Priority() int {
	switch t {
	case NotificationUrgent:
		return 1
	case NotificationCelebration:
		return 2
	case NotificationReminder:
		return 3
	case NotificationSocial:
		return 4
	default:
		return 5
	}
}

// Tab identifies a destination screen in the client app.
type Tab string

const (
	TabHome  Tab = "home"
	TabLab   Tab = "lab"
	TabTower Tab = "tower"
	TabAI    Tab = "ai"
)

// NotificationAction is the opaque payload handed back to the client when a
// notification's CTA is executed.
type NotificationAction struct {
	Tab         Tab  `json:"tab"`
	SlotIndex   *int `json:"slot_index,omitempty"`
	OpenRewards bool `json:"open_rewards,omitempty"`
}

// Notification is an ephemeral engine product. It is never stored as a row;
// only read/dismiss state keyed by SourceKey outlives a generation.
type Notification struct {
	ID        string             `json:"id"` // unique per generation
	Type      NotificationType   `json:"type"`
	Icon      string             `json:"icon"`
	Title     string             `json:"title"`
	Body      string             `json:"body"`
	CTALabel  string             `json:"cta_label"`
	Action    NotificationAction `json:"action"`
	Priority  int                `json:"priority"`
	CreatedAt time.Time          `json:"created_at"`
	Read      bool               `json:"read"`
	Dismissed bool               `json:"dismissed"`
	ExpiresAt *time.Time         `json:"expires_at,omitempty"`

	// SourceKey is the stable dedup identity (e.g. "harvest-ready-3"),
	// the join key against the persisted read/dismissed sets.
	SourceKey string `json:"source_key"`
}

// NotifyState is the only notification state that survives across
// evaluations: dismissed/read sourceKey sets plus the previous
// achievement/level snapshot used for edge detection.
type NotifyState struct {
	UserID               string   `gorm:"primaryKey" json:"user_id"`
	Dismissed            []string `gorm:"serializer:json" json:"dismissed"`
	Read                 []string `gorm:"serializer:json" json:"read"`
	PreviousAchievements []string `gorm:"serializer:json" json:"previous_achievements"`
	PreviousLevel        int      `json:"previous_level"`
	UpdatedAt            time.Time
}
