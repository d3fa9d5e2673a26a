package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/auth"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/employee"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/config"
)

// App はサーバーと CLI が共有する依存関係の組み立て結果です。
type App struct {
	Store      *storage.Adapter
	Repository *employee.StoreRepository
	Seeder     *employee.Seeder
	Employees  *employee.ViewModel
	Sessions   *auth.StoreSessionStore
	Auth       *auth.ViewModel

	backend *Backend
}

type options struct {
	backend    *Backend
	bcryptCost int
}

// Option は New の挙動を変更します。
type Option func(*options)

// WithBackend は設定の storage.driver を無視して既存のバックエンドを利用します。
func WithBackend(b *Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithBcryptCost はパスワードハッシュのコストを指定します。
func WithBcryptCost(cost int) Option {
	return func(o *options) { o.bcryptCost = cost }
}

// New はバックエンドを開き、リポジトリとビューモデルを組み立てて認証状態を復元します。
// 社員一覧の読み込みは呼び出し側で Employees.Load を実行してください。
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("bootstrap: config is required")
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	backend := o.backend
	if backend == nil {
		var err error
		backend, err = OpenBackend(ctx, cfg)
		if err != nil {
			return nil, err
		}
	}

	app, err := assemble(ctx, cfg, backend, o.bcryptCost)
	if err != nil {
		return nil, errors.Join(err, backend.Close())
	}
	return app, nil
}

func assemble(ctx context.Context, cfg *config.Config, backend *Backend, cost int) (*App, error) {
	creds, err := credentials(cfg.Auth, cost)
	if err != nil {
		return nil, err
	}

	store := storage.NewAdapter(backend.Store, cfg.Storage.Namespace)
	repo := employee.NewStoreRepository(store, nil, nil, backend.Tx)
	seeder := employee.NewSeeder(repo, store, backend.Tx)
	sessions := auth.NewStoreSessionStore(store)
	authVM := auth.NewViewModel(sessions, creds, cfg.Auth.LoginDelay)

	if err := authVM.Init(ctx); err != nil {
		return nil, err
	}

	return &App{
		Store:      store,
		Repository: repo,
		Seeder:     seeder,
		Employees:  employee.NewViewModel(repo, seeder),
		Sessions:   sessions,
		Auth:       authVM,
		backend:    backend,
	}, nil
}

func credentials(cfg config.AuthConfig, cost int) (auth.Credentials, error) {
	email, password, name := cfg.Email, cfg.Password, cfg.Name
	if email == "" {
		email, password = auth.DefaultEmail, auth.DefaultPassword
	}
	if name == "" {
		name = auth.DefaultName
	}
	return auth.NewCredentials(email, password, name, cost)
}

// Close はバックエンドを閉じます。
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	return a.backend.Close()
}
