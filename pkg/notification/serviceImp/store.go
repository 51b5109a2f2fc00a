package serviceImp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	actrepo "towergrow/pkg/activity/repository"
	labrepo "towergrow/pkg/lab/repository"
	notifrepo "towergrow/pkg/notification/repository"
	towerrepo "towergrow/pkg/tower/repository"

	"towergrow/entities"
	"towergrow/pkg/engagement"
	"towergrow/pkg/progress"
)

// evaluateEvery is the fixed re-evaluation interval; it catches day-boundary
// and hour-bucket transitions that happen without any state change.
const evaluateEvery = 60 * time.Second

// userCache is the in-memory view for one user. When the persistence backend
// is down the cached state keeps working for the rest of the session.
type userCache struct {
	state  entities.NotifyState
	items  []entities.Notification
	loaded bool
}

// Store is the notification lifecycle store. It is the sole writer of
// persisted notification state; a mutex serializes all access since echo
// handlers and the background loop call in concurrently.
type Store struct {
	mu     sync.Mutex
	states notifrepo.NotifyRepository
	slots  towerrepo.SlotRepository
	stats  actrepo.StatsRepository
	lab    labrepo.LabRepository
	engine *engagement.Engine
	now    func() time.Time

	users map[string]*userCache
}

// New wires the store. A nil clock falls back to time.Now.
func New(states notifrepo.NotifyRepository, slots towerrepo.SlotRepository, stats actrepo.StatsRepository, lab labrepo.LabRepository, engine *engagement.Engine, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{
		states: states,
		slots:  slots,
		stats:  stats,
		lab:    lab,
		engine: engine,
		now:    now,
		users:  map[string]*userCache{},
	}
}

// Run re-evaluates every known user on a fixed interval until ctx is done.
func (s *Store) Run(ctx context.Context) {
	t := time.NewTicker(evaluateEvery)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			for _, uid := range s.knownUsers() {
				if _, err := s.Evaluate(uid); err != nil {
					slog.Warn("periodic notification evaluation failed", "uid", uid, "error", err)
				}
			}
		}
	}
}

func (s *Store) knownUsers() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.users))
	for uid := range s.users {
		out = append(out, uid)
	}
	return out
}

// user returns the cache entry, loading persisted state on first touch.
// A load failure degrades to an empty in-memory state for the session.
func (s *Store) user(uid string) *userCache {
	uc, ok := s.users[uid]
	if !ok {
		uc = &userCache{}
		s.users[uid] = uc
	}
	if !uc.loaded {
		st, err := s.states.Load(uid)
		if err != nil {
			slog.Warn("notification state unavailable, running memory-only", "uid", uid, "error", err)
			st = entities.NotifyState{UserID: uid}
		}
		uc.state = st
		uc.loaded = true
	}
	return uc
}

func (s *Store) persist(uc *userCache) {
	if err := s.states.Save(&uc.state); err != nil {
		slog.Warn("persist notification state failed", "uid", uc.state.UserID, "error", err)
	}
}

func (s *Store) Evaluate(uid string) ([]entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.evaluateLocked(uid)
}

func (s *Store) evaluateLocked(uid string) ([]entities.Notification, error) {
	uc := s.user(uid)

	slots, err := s.slots.ByUser(uid)
	if err != nil {
		return nil, fmt.Errorf("load slots: %w", err)
	}
	stats, err := s.stats.GetOrCreate(uid)
	if err != nil {
		return nil, fmt.Errorf("load stats: %w", err)
	}
	series, err := s.lab.Series(uid)
	if err != nil {
		return nil, fmt.Errorf("load lab series: %w", err)
	}

	raw := s.engine.Generate(slots, stats, series, uc.state)

	dismissed := toSet(uc.state.Dismissed)
	read := toSet(uc.state.Read)
	now := s.now()

	items := make([]entities.Notification, 0, len(raw))
	for _, n := range raw {
		if _, gone := dismissed[n.SourceKey]; gone {
			continue
		}
		if n.ExpiresAt != nil && !n.ExpiresAt.After(now) {
			continue
		}
		_, n.Read = read[n.SourceKey]
		items = append(items, n)
	}
	uc.items = items

	// Snapshot for the next edge-detection pass.
	achs := progress.Achievements(slots, stats)
	uc.state.PreviousAchievements = progress.EarnedIDs(achs)
	uc.state.PreviousLevel = progress.LevelFor(progress.XP(slots, stats)).Level
	s.persist(uc)

	return detach(items), nil
}

func (s *Store) List(uid string) ([]entities.Notification, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc, ok := s.users[uid]
	if !ok || uc.items == nil {
		items, err := s.evaluateLocked(uid)
		if err != nil {
			return nil, 0, err
		}
		return items, unread(items), nil
	}
	return detach(uc.items), unread(uc.items), nil
}

func (s *Store) MarkRead(uid, sourceKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc := s.user(uid)
	uc.state.Read = addKey(uc.state.Read, sourceKey)
	for i := range uc.items {
		if uc.items[i].SourceKey == sourceKey {
			uc.items[i].Read = true
		}
	}
	s.persist(uc)
	return nil
}

func (s *Store) MarkAllRead(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc := s.user(uid)
	for i := range uc.items {
		uc.state.Read = addKey(uc.state.Read, uc.items[i].SourceKey)
		uc.items[i].Read = true
	}
	s.persist(uc)
	return nil
}

func (s *Store) Dismiss(uid, sourceKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc := s.user(uid)
	uc.state.Dismissed = addKey(uc.state.Dismissed, sourceKey)
	kept := uc.items[:0]
	for _, n := range uc.items {
		if n.SourceKey != sourceKey {
			kept = append(kept, n)
		}
	}
	uc.items = kept
	s.persist(uc)
	return nil
}

func (s *Store) DismissAll(uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc := s.user(uid)
	for _, n := range uc.items {
		uc.state.Dismissed = addKey(uc.state.Dismissed, n.SourceKey)
	}
	uc.items = nil
	s.persist(uc)
	return nil
}

func (s *Store) ExecuteAction(uid, sourceKey string) (entities.NotificationAction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	uc := s.user(uid)
	for i := range uc.items {
		if uc.items[i].SourceKey == sourceKey {
			uc.state.Read = addKey(uc.state.Read, sourceKey)
			uc.items[i].Read = true
			s.persist(uc)
			return uc.items[i].Action, nil
		}
	}
	return entities.NotificationAction{}, fmt.Errorf("notification %q not found", sourceKey)
}

// detach copies the cached slice so callers marshal a stable view while
// MarkRead and friends keep mutating read flags under the lock.
func detach(items []entities.Notification) []entities.Notification {
	out := make([]entities.Notification, len(items))
	copy(out, items)
	return out
}

func unread(items []entities.Notification) int {
	n := 0
	for _, it := range items {
		if !it.Read && !it.Dismissed {
			n++
		}
	}
	return n
}

func toSet(keys []string) map[string]struct{} {
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return m
}

func addKey(keys []string, k string) []string {
	for _, have := range keys {
		if have == k {
			return keys
		}
	}
	return append(keys, k)
}
