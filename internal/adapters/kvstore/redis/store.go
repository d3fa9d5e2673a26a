package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// Client は Store が利用する Redis コマンドの部分集合です。*redis.Client が満たします。
type Client interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

// Store は Redis の文字列キーに JSON 値を保存する KeyValueStore です。
// キャッシュ用途と異なり、接続エラーは呼び出し元へ返します。
type Store struct {
	client Client
}

var _ storage.KeyValueStore = (*Store)(nil)

// NewClient は設定値から Redis クライアントを生成します。
func NewClient(addr, password string, db int) *goredis.Client {
	return goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewStore は Store を生成します。
func NewStore(client Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis kv: get %s: %w", key, err)
	}
	return value, true, nil
}

// Set は有効期限なしで値を保存します。
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis kv: set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis kv: del %s: %w", key, err)
	}
	return nil
}
