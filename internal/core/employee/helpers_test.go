package employee

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/memory"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

type stubClock struct {
	now  time.Time
	step time.Duration
}

func (s *stubClock) Now() time.Time {
	current := s.now
	s.now = s.now.Add(s.step)
	return current
}

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewID() (string, error) {
	s.next++
	return fmt.Sprintf("%s%04d", IDPrefix, s.next), nil
}

type failingKV struct {
	storage.KeyValueStore
	failSet bool
	failGet bool
}

var errBackendDown = errors.New("backend down")

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if f.failGet {
		return nil, false, errBackendDown
	}
	return f.KeyValueStore.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errBackendDown
	}
	return f.KeyValueStore.Set(ctx, key, value)
}

type fixture struct {
	kv     *failingKV
	store  *storage.Adapter
	clock  *stubClock
	repo   *StoreRepository
	seeder *Seeder
}

func newFixture() *fixture {
	kv := &failingKV{KeyValueStore: memory.NewStore()}
	store := storage.NewAdapter(kv, "")
	clock := &stubClock{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), step: time.Second}
	repo := NewStoreRepository(store, clock, &sequenceIDs{}, nil)
	return &fixture{
		kv:     kv,
		store:  store,
		clock:  clock,
		repo:   repo,
		seeder: NewSeeder(repo, store, nil),
	}
}

func validFields(name string) Fields {
	return Fields{
		FullName:    name,
		Gender:      GenderOther,
		DateOfBirth: "1990-01-01",
		State:       "Goa",
		IsActive:    true,
	}
}

func ptr[T any](v T) *T {
	return &v
}
