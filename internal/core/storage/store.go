package storage

import (
	"context"
	"errors"
)

var (
	// ErrStorageUnavailable はバックエンドへの読み書きが失敗した場合に返却されます。
	ErrStorageUnavailable = errors.New("storage: unavailable")
	// ErrCorruptValue は保存済みの値を JSON として解釈できない場合に返却されます。
	ErrCorruptValue = errors.New("storage: corrupt value")
	// ErrInvalidKey はキーが空の場合に返却されます。
	ErrInvalidKey = errors.New("storage: invalid key")
)

// KeyValueStore はバイト列をキー単位で保持するバックエンドの抽象です。
// 存在しないキーの読み取りはエラーではなく found=false を返します。
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// TransactionManager はトランザクション制御の抽象化です。
type TransactionManager interface {
	WithinReadOnly(ctx context.Context, fn func(context.Context) error) error
	WithinReadWrite(ctx context.Context, fn func(context.Context) error) error
}

// NoopTransactionManager はトランザクションを持たないバックエンド向けの実装です。
type NoopTransactionManager struct{}

func (NoopTransactionManager) WithinReadOnly(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}

func (NoopTransactionManager) WithinReadWrite(ctx context.Context, fn func(context.Context) error) error {
	if fn == nil {
		return nil
	}
	return fn(ctx)
}
