package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// Store は全キーを 1 つの JSON オブジェクトとしてファイルに保存する KeyValueStore です。
// ブラウザの localStorage と同じく各値は文字列として保持され、Set したバイト列がそのまま Get で返ります。
type Store struct {
	path string
	mu   sync.Mutex
}

var _ storage.KeyValueStore = (*Store)(nil)

// NewStore は Store を生成し、保存先ディレクトリを作成します。
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("file store: path must be set")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("file store: create dirs: %w", err)
	}
	return &Store{path: path}, nil
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readAll()
	if err != nil {
		return nil, false, err
	}
	v, ok := entries[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	if !json.Valid(value) {
		return fmt.Errorf("file store: value for %s is not valid JSON", key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readAll()
	if err != nil {
		return err
	}
	entries[key] = string(value)
	return s.writeAll(entries)
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.readAll()
	if err != nil {
		return err
	}
	if _, ok := entries[key]; !ok {
		return nil
	}
	delete(entries, key)
	return s.writeAll(entries)
}

// Path は保存先ファイルのパスを返します。
func (s *Store) Path() string { return s.path }

func (s *Store) readAll() (map[string]string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("file store: read %s: %w", s.path, err)
	}
	entries := make(map[string]string)
	if len(b) == 0 {
		return entries, nil
	}
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("file store: decode %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *Store) writeAll(entries map[string]string) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("file store: encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".kv-*.json")
	if err != nil {
		return fmt.Errorf("file store: create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("file store: write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file store: close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("file store: replace %s: %w", s.path, err)
	}
	return nil
}
