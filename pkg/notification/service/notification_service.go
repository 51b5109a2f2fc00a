package service

import "towergrow/entities"

// NotificationService owns the notification lifecycle for all users: it runs
// the rules engine, applies persisted read/dismiss state, and absorbs the
// read/dismiss/act commands coming back from the presentation layer.
type NotificationService interface {
	// Evaluate regenerates the user's list from current garden state and
	// snapshots achievements/level for the next edge-detection pass.
	Evaluate(uid string) ([]entities.Notification, error)

	// List returns the cached list plus unread count, evaluating first if
	// the user has never been evaluated this session.
	List(uid string) ([]entities.Notification, int, error)

	MarkRead(uid, sourceKey string) error
	MarkAllRead(uid string) error
	Dismiss(uid, sourceKey string) error
	DismissAll(uid string) error

	// ExecuteAction marks the notification read and returns its action
	// payload for the client to route. It does not dismiss.
	ExecuteAction(uid, sourceKey string) (entities.NotificationAction, error)
}
