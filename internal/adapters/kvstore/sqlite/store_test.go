package sqlite

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T, path string) *Store {
	t.Helper()

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_GetSetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t, filepath.Join(t.TempDir(), "kv.db"))

	if _, found, err := s.Get(ctx, "auth_user"); err != nil || found {
		t.Fatalf("expected missing key, got found=%t err=%v", found, err)
	}

	if err := s.Set(ctx, "auth_user", []byte(`{"email":"a@b.c","name":"A"}`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set(ctx, "auth_user", []byte(`{"email":"x@y.z","name":"X"}`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	got, found, err := s.Get(ctx, "auth_user")
	if err != nil || !found {
		t.Fatalf("expected key present, got found=%t err=%v", found, err)
	}
	if string(got) != `{"email":"x@y.z","name":"X"}` {
		t.Fatalf("expected overwritten value, got %s", got)
	}

	if err := s.Delete(ctx, "auth_user"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := s.Delete(ctx, "auth_user"); err != nil {
		t.Fatalf("second Delete returned error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "auth_user"); found {
		t.Fatalf("expected key removed")
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "kv.db")

	first, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if err := first.Set(ctx, "sample_version", []byte(`"2"`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	second := newTestStore(t, path)
	got, found, err := second.Get(ctx, "sample_version")
	if err != nil || !found {
		t.Fatalf("expected persisted key, got found=%t err=%v", found, err)
	}
	if string(got) != `"2"` {
		t.Fatalf("unexpected value %s", got)
	}
}

func TestStore_ClosedDatabaseFails(t *testing.T) {
	t.Parallel()

	s, err := NewStore(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	_ = s.Close()

	if _, _, err := s.Get(context.Background(), "employees"); err == nil {
		t.Fatalf("expected error from closed database")
	}
}
