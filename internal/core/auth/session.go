package auth

import (
	"context"
	"strings"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// SessionStore はログイン中ユーザーの永続化を行うインターフェースです。
type SessionStore interface {
	Get(ctx context.Context) (*User, error)
	Set(ctx context.Context, user *User) error
	Clear(ctx context.Context) error
}

// StoreSessionStore は storage.Adapter の auth_user キーにセッションを保存します。
type StoreSessionStore struct {
	store *storage.Adapter
}

var _ SessionStore = (*StoreSessionStore)(nil)

// NewStoreSessionStore は StoreSessionStore を生成します。
func NewStoreSessionStore(store *storage.Adapter) *StoreSessionStore {
	return &StoreSessionStore{store: store}
}

// Get は保存済みのユーザーを返します。存在しない場合は ErrSessionNotFound です。
func (s *StoreSessionStore) Get(ctx context.Context) (*User, error) {
	var u User
	found, err := s.store.Read(ctx, storage.KeyAuthUser, &u)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &u, nil
}

// Set はユーザーを保存します。既存のセッションは置き換えられます。
func (s *StoreSessionStore) Set(ctx context.Context, user *User) error {
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return ErrInvalidUser
	}
	return s.store.Write(ctx, storage.KeyAuthUser, user)
}

// Clear はセッションを削除します。
func (s *StoreSessionStore) Clear(ctx context.Context) error {
	return s.store.Remove(ctx, storage.KeyAuthUser)
}
