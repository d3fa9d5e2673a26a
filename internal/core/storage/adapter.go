package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// 永続化レイアウトの固定キーです。
const (
	KeyEmployees     = "employees"
	KeyAuthUser      = "auth_user"
	KeySampleVersion = "sample_version"
)

// Adapter は KeyValueStore 上で値を JSON としてやり取りする薄いラッパーです。
type Adapter struct {
	kv        KeyValueStore
	namespace string
}

// NewAdapter は Adapter を生成します。namespace が空でなければ全キーに "<namespace>:" を付与します。
func NewAdapter(kv KeyValueStore, namespace string) *Adapter {
	return &Adapter{kv: kv, namespace: strings.TrimSpace(namespace)}
}

// Read は key の値を dst へデコードします。値が存在しない場合は false を返します。
func (a *Adapter) Read(ctx context.Context, key string, dst any) (bool, error) {
	fullKey, err := a.key(key)
	if err != nil {
		return false, err
	}

	raw, found, err := a.kv.Get(ctx, fullKey)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %w", ErrStorageUnavailable, fullKey, err)
	}
	if !found || len(raw) == 0 {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrCorruptValue, fullKey, err)
	}
	return true, nil
}

// Write は value を JSON にエンコードし key の値全体を置き換えます。
func (a *Adapter) Write(ctx context.Context, key string, value any) error {
	fullKey, err := a.key(key)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", fullKey, err)
	}

	if err := a.kv.Set(ctx, fullKey, raw); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, fullKey, err)
	}
	return nil
}

// Remove は key の値を削除します。存在しないキーの削除は成功扱いです。
func (a *Adapter) Remove(ctx context.Context, key string) error {
	fullKey, err := a.key(key)
	if err != nil {
		return err
	}

	if err := a.kv.Delete(ctx, fullKey); err != nil {
		return fmt.Errorf("%w: remove %s: %w", ErrStorageUnavailable, fullKey, err)
	}
	return nil
}

func (a *Adapter) key(key string) (string, error) {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return "", ErrInvalidKey
	}
	if a.namespace == "" {
		return trimmed, nil
	}
	return a.namespace + ":" + trimmed, nil
}
