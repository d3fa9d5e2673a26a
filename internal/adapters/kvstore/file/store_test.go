package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStore_RoundTripAcrossInstances(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "storage.json")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if _, found, err := s.Get(ctx, "employees"); err != nil || found {
		t.Fatalf("expected missing key on fresh file, got found=%t err=%v", found, err)
	}

	if err := s.Set(ctx, "employees", []byte(`[{"id":"EMP-1"}]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if err := s.Set(ctx, "sample_version", []byte(`"2"`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	got, found, err := reopened.Get(ctx, "employees")
	if err != nil || !found {
		t.Fatalf("expected persisted key, got found=%t err=%v", found, err)
	}
	if string(got) != `[{"id":"EMP-1"}]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := reopened.Delete(ctx, "employees"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "employees"); found {
		t.Fatalf("expected key removed")
	}
	if _, found, _ := s.Get(ctx, "sample_version"); !found {
		t.Fatalf("expected unrelated key to survive")
	}
}

func TestStore_RejectsInvalidJSON(t *testing.T) {
	t.Parallel()

	s, err := NewStore(filepath.Join(t.TempDir(), "storage.json"))
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if err := s.Set(context.Background(), "employees", []byte("{")); err == nil {
		t.Fatalf("expected error for invalid JSON value")
	}
}

func TestStore_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("not json"), 0o600); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	if _, _, err := s.Get(context.Background(), "employees"); err == nil {
		t.Fatalf("expected decode error for corrupt file")
	}
}

func TestNewStore_RequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(""); err == nil {
		t.Fatalf("expected error for empty path")
	}
}

func TestStore_PreservesValueBytes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "storage.json")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	values := map[string]string{
		"employees":      "[ {\"id\": \"EMP-1\",\n  \"fullName\": \"A & B <x>\"} ]",
		"sample_version": "2",
		"auth_user":      `{"email":"admin@example.com"}`,
	}
	for key, value := range values {
		if err := s.Set(ctx, key, []byte(value)); err != nil {
			t.Fatalf("Set(%s) returned error: %v", key, err)
		}
	}

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}
	for key, want := range values {
		got, found, err := reopened.Get(ctx, key)
		if err != nil || !found {
			t.Fatalf("Get(%s) found=%t err=%v", key, found, err)
		}
		if string(got) != want {
			t.Fatalf("Get(%s) = %q, want %q", key, got, want)
		}
	}
}
