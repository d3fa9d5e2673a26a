package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// UseCase は認証ビューモデルの公開インターフェースです。
type UseCase interface {
	Init(ctx context.Context) error
	State() State
	User() *User
	IsAuthenticated() bool
	IsLoading() bool
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context) error
}

// ViewModel はセッション状態を管理します。Unknown から Init で Anonymous または Authenticated に遷移します。
type ViewModel struct {
	sessions SessionStore
	creds    Credentials
	delay    time.Duration

	mu    sync.RWMutex
	state State
	user  *User
}

var _ UseCase = (*ViewModel)(nil)

// NewViewModel は ViewModel を生成します。delay は Login の擬似待ち時間で、0 なら待ちません。
func NewViewModel(sessions SessionStore, creds Credentials, delay time.Duration) *ViewModel {
	if delay < 0 {
		delay = 0
	}
	return &ViewModel{sessions: sessions, creds: creds, delay: delay}
}

// Init は保存済みセッションを一度だけ読み込みます。
// 読めないセッションは未ログインとして扱います。
func (v *ViewModel) Init(ctx context.Context) error {
	u, err := v.sessions.Get(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, storage.ErrCorruptValue):
		u = nil
	default:
		return fmt.Errorf("auth: read session: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if u != nil {
		v.state = StateAuthenticated
		v.user = u
		return nil
	}
	v.state = StateAnonymous
	v.user = nil
	return nil
}

// State は現在の状態を返します。
func (v *ViewModel) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// User はログイン中のユーザーを返します。未ログインなら nil です。
func (v *ViewModel) User() *User {
	v.mu.RLock()
	defer v.mu.RUnlock()
	if v.user == nil {
		return nil
	}
	u := *v.user
	return &u
}

// IsAuthenticated はログイン済みかどうかを返します。
func (v *ViewModel) IsAuthenticated() bool {
	return v.State() == StateAuthenticated
}

// IsLoading は Init 前かどうかを返します。
func (v *ViewModel) IsLoading() bool {
	return v.State() == StateUnknown
}

// Login は擬似待ち時間の後に固定の認証情報と照合します。
// 不一致は LoginResult.Success=false で返し、error はストレージ障害とコンテキストのキャンセルに限ります。
func (v *ViewModel) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if err := v.wait(ctx); err != nil {
		return LoginResult{}, err
	}

	if !v.creds.Verify(email, password) {
		return LoginResult{Success: false, Error: InvalidCredentialsMessage}, nil
	}

	u := &User{Email: v.creds.Email, Name: v.creds.Name}
	if err := v.sessions.Set(ctx, u); err != nil {
		return LoginResult{}, fmt.Errorf("auth: save session: %w", err)
	}

	v.mu.Lock()
	v.state = StateAuthenticated
	v.user = u
	v.mu.Unlock()

	return LoginResult{Success: true}, nil
}

// Logout はセッションを削除し Anonymous に遷移します。
func (v *ViewModel) Logout(ctx context.Context) error {
	if err := v.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("auth: clear session: %w", err)
	}

	v.mu.Lock()
	v.state = StateAnonymous
	v.user = nil
	v.mu.Unlock()
	return nil
}

func (v *ViewModel) wait(ctx context.Context) error {
	if v.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(v.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
