package memory

import (
	"context"
	"sync"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// Store はプロセス内のマップに値を保持する KeyValueStore です。テストや一時的な実行向けです。
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.KeyValueStore = (*Store)(nil)

// NewStore は空の Store を生成します。
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Len は保持しているキーの数を返します。
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
