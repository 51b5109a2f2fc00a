package serviceImp_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"towergrow/entities"
	"towergrow/pkg/engagement"
	"towergrow/pkg/notification/serviceImp"
)

type fakeStates struct {
	st    map[string]entities.NotifyState
	fail  bool
	saves int
}

func (f *fakeStates) Load(uid string) (entities.NotifyState, error) {
	if f.fail {
		return entities.NotifyState{}, errors.New("backend down")
	}
	if st, ok := f.st[uid]; ok {
		return st, nil
	}
	return entities.NotifyState{UserID: uid}, nil
}

func (f *fakeStates) Save(st *entities.NotifyState) error {
	if f.fail {
		return errors.New("backend down")
	}
	f.saves++
	f.st[st.UserID] = *st
	return nil
}

type fakeSlots struct{ slots []entities.Slot }

func (f *fakeSlots) EnsurePool(uid string, size int) error      { return nil }
func (f *fakeSlots) ByUser(uid string) ([]entities.Slot, error) { return f.slots, nil }

func (f *fakeSlots) ByIndex(uid string, i int) (*entities.Slot, error) {
	for j := range f.slots {
		if f.slots[j].Index == i {
			return &f.slots[j], nil
		}
	}
	return nil, errors.New("no such slot")
}
func (f *fakeSlots) Save(s *entities.Slot) error { return nil }

type fakeStats struct{ st entities.RewardStats }

func (f *fakeStats) GetOrCreate(uid string) (entities.RewardStats, error) { return f.st, nil }
func (f *fakeStats) Save(st *entities.RewardStats) error                  { f.st = *st; return nil }

type fakeLab struct{ series entities.LabSeries }

func (f *fakeLab) Append(r *entities.LabReading) error                        { return nil }
func (f *fakeLab) Recent(uid string, days int) ([]entities.LabReading, error) { return nil, nil }
func (f *fakeLab) Series(uid string) (entities.LabSeries, error)              { return f.series, nil }

func testStore(slots []entities.Slot, stats entities.RewardStats, states *fakeStates) *serviceImp.Store {
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	engine := engagement.New(clock, rand.New(rand.NewSource(1)))
	return serviceImp.New(states, &fakeSlots{slots: slots}, &fakeStats{st: stats}, &fakeLab{}, engine, clock)
}

func readySlot() entities.Slot {
	planted := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	crop := entities.CropType{Name: "Lettuce", Icon: "🥬", GrowDays: 5}
	return entities.Slot{Index: 0, Crop: &crop, PlantedDate: &planted, Health: 95}
}

func has(items []entities.Notification, key string) bool {
	for _, n := range items {
		if n.SourceKey == key {
			return true
		}
	}
	return false
}

func TestEvaluateFiltersDismissed(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{
		"u1": {UserID: "u1", Dismissed: []string{"harvest-ready-0"}},
	}}
	s := testStore([]entities.Slot{readySlot()}, entities.RewardStats{}, states)

	items, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if has(items, "harvest-ready-0") {
		t.Error("dismissed sourceKey must not resurface")
	}
	if !has(items, "social-2026-03-10") {
		t.Error("undismissed items should survive the filter")
	}
}

func TestDismissSticksAcrossEvaluations(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := testStore([]entities.Slot{readySlot()}, entities.RewardStats{}, states)

	items, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !has(items, "harvest-ready-0") {
		t.Fatal("expected harvest-ready-0 before dismissal")
	}

	if err := s.Dismiss("u1", "harvest-ready-0"); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	items, _, err = s.List("u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if has(items, "harvest-ready-0") {
		t.Error("dismissed item still listed")
	}

	items, err = s.Evaluate("u1")
	if err != nil {
		t.Fatalf("re-Evaluate: %v", err)
	}
	if has(items, "harvest-ready-0") {
		t.Error("dismissal did not survive regeneration")
	}
	if len(states.st["u1"].Dismissed) == 0 {
		t.Error("dismissal was not persisted")
	}
}

func TestReadStateAndUnreadCount(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := testStore(nil, entities.RewardStats{}, states)

	items, unread, err := s.List("u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if unread != len(items) {
		t.Fatalf("fresh list: unread %d, want %d", unread, len(items))
	}

	if err := s.MarkRead("u1", "social-2026-03-10"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	_, unread2, _ := s.List("u1")
	if unread2 != unread-1 {
		t.Errorf("unread after MarkRead = %d, want %d", unread2, unread-1)
	}

	// Regeneration keeps read state keyed by sourceKey.
	items, err = s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	for _, n := range items {
		if n.SourceKey == "social-2026-03-10" && !n.Read {
			t.Error("read flag lost on regeneration")
		}
	}

	if err := s.MarkAllRead("u1"); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	_, unread3, _ := s.List("u1")
	if unread3 != 0 {
		t.Errorf("unread after MarkAllRead = %d, want 0", unread3)
	}
}

func TestAchievementCelebratesOnce(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := testStore(nil, entities.RewardStats{WaterLogs: 7}, states)

	items, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if !has(items, "achievement-c1") {
		t.Fatal("first evaluation should celebrate c1")
	}

	items, err = s.Evaluate("u1")
	if err != nil {
		t.Fatalf("second Evaluate: %v", err)
	}
	if has(items, "achievement-c1") {
		t.Error("snapshot should swallow the second celebration")
	}
}

func TestPersistenceFailureDegradesToMemory(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}, fail: true}
	s := testStore(nil, entities.RewardStats{}, states)

	items, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate should not fail on a dead state backend: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected items despite persistence failure")
	}

	if err := s.Dismiss("u1", "social-2026-03-10"); err != nil {
		t.Fatalf("Dismiss: %v", err)
	}
	items, err = s.Evaluate("u1")
	if err != nil {
		t.Fatalf("re-Evaluate: %v", err)
	}
	if has(items, "social-2026-03-10") {
		t.Error("in-memory dismissal should hold for the session")
	}
}

func TestReturnedListsAreDetachedFromStore(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := testStore(nil, entities.RewardStats{}, states)

	before, _, err := s.List("u1")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if err := s.MarkRead("u1", "social-2026-03-10"); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	for _, n := range before {
		if n.SourceKey == "social-2026-03-10" && n.Read {
			t.Error("MarkRead mutated a slice handed out earlier")
		}
	}

	evaluated, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if err := s.MarkAllRead("u1"); err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	for _, n := range evaluated {
		if n.SourceKey != "social-2026-03-10" && n.Read {
			t.Errorf("MarkAllRead mutated %s in an already-returned slice", n.SourceKey)
		}
	}
}

func TestExpiredItemsExcluded(t *testing.T) {
	// The engine stamps expiries from its own clock; run the store's clock
	// nine hours later so the short-lived items arrive already expired.
	engineNow := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	storeNow := engineNow.Add(9 * time.Hour)
	engine := engagement.New(func() time.Time { return engineNow }, rand.New(rand.NewSource(1)))
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := serviceImp.New(states, &fakeSlots{}, &fakeStats{}, &fakeLab{}, engine, func() time.Time { return storeNow })

	items, err := s.Evaluate("u1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	// The tip carries an 8h expiry, already past; the 16h social item is
	// still live.
	if has(items, "tip-2026-03-10-evening") {
		t.Error("expired tip must be excluded")
	}
	if !has(items, "social-2026-03-10") {
		t.Error("unexpired social item should survive")
	}
}

func TestExecuteAction(t *testing.T) {
	states := &fakeStates{st: map[string]entities.NotifyState{}}
	s := testStore([]entities.Slot{readySlot()}, entities.RewardStats{}, states)

	if _, err := s.Evaluate("u1"); err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	action, err := s.ExecuteAction("u1", "harvest-ready-0")
	if err != nil {
		t.Fatalf("ExecuteAction: %v", err)
	}
	if action.Tab != entities.TabTower || action.SlotIndex == nil || *action.SlotIndex != 0 {
		t.Errorf("unexpected action %+v", action)
	}

	items, _, _ := s.List("u1")
	for _, n := range items {
		if n.SourceKey == "harvest-ready-0" && !n.Read {
			t.Error("acting on a notification should mark it read")
		}
	}

	if _, err := s.ExecuteAction("u1", "no-such-key"); err == nil {
		t.Error("expected error for an unknown sourceKey")
	}
}
