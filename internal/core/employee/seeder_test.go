package employee

import (
	"context"
	"testing"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

func TestSeeder_EmptyStoreGetsFiveSamples(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}

	list, err := f.repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 5 {
		t.Fatalf("expected 5 seeded employees, got %d", len(list))
	}

	first := list[0]
	if first.FullName != "Ananya Sharma" || first.State != "Maharashtra" || !first.IsActive {
		t.Fatalf("unexpected first seeded employee: %+v", first)
	}

	var version string
	if _, err := f.store.Read(ctx, storage.KeySampleVersion, &version); err != nil {
		t.Fatalf("Read version returned error: %v", err)
	}
	if version != CurrentSampleVersion {
		t.Fatalf("expected version %s, got %q", CurrentSampleVersion, version)
	}
}

func TestSeeder_IdempotentForSameVersion(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	before, _, _ := f.kv.Get(ctx, storage.KeyEmployees)

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("second EnsureSeeded returned error: %v", err)
	}
	after, _, _ := f.kv.Get(ctx, storage.KeyEmployees)

	if string(before) != string(after) {
		t.Fatalf("expected collection byte-for-byte unchanged\nbefore=%s\nafter=%s", before, after)
	}
}

func TestSeeder_VersionMismatchReplacesCollection(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	custom, err := f.repo.Add(ctx, validFields("Custom Person"))
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.store.Write(ctx, storage.KeySampleVersion, "1"); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}

	list, _ := f.repo.List(ctx)
	if len(list) != 5 {
		t.Fatalf("expected collection replaced by 5 samples, got %d", len(list))
	}
	for _, e := range list {
		if e.ID == custom.ID {
			t.Fatalf("expected previous collection to be discarded")
		}
	}
}

func TestSeeder_UnrelatedKeysSurvive(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if err := f.store.Write(ctx, storage.KeyAuthUser, map[string]string{"email": "a@b.c"}); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}

	var user map[string]string
	found, err := f.store.Read(ctx, storage.KeyAuthUser, &user)
	if err != nil || !found {
		t.Fatalf("expected auth user to survive seeding, found=%t err=%v", found, err)
	}
}

func TestSeeder_CorruptVersionTriggersReseed(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.repo.Add(ctx, validFields("Leftover")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.kv.Set(ctx, storage.KeySampleVersion, []byte("not-json")); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	list, _ := f.repo.List(ctx)
	if len(list) != 5 {
		t.Fatalf("expected reseed, got %d employees", len(list))
	}
}

func TestSeeder_NumericVersionKeepsData(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if _, err := f.repo.Add(ctx, validFields("Carried Over")); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := f.kv.Set(ctx, storage.KeySampleVersion, []byte(CurrentSampleVersion)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := f.seeder.EnsureSeeded(ctx); err != nil {
		t.Fatalf("EnsureSeeded returned error: %v", err)
	}
	list, err := f.repo.List(ctx)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 || list[0].FullName != "Carried Over" {
		t.Fatalf("expected numeric version tag to be accepted, got %d employees", len(list))
	}
}
