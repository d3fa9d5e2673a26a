package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
	pgdb "github.com/ogurasousui/codex-employee-dashboard/internal/platform/db/postgres"
)

// Store は kv_entries テーブルを利用した KeyValueStore の実装です。
// コンテキストにトランザクションがあればそれを利用します。
type Store struct {
	pool pgdb.Queryer
}

var _ storage.KeyValueStore = (*Store)(nil)

// NewStore は Store を生成します。
func NewStore(pool pgdb.Queryer) *Store {
	return &Store{pool: pool}
}

// Get はキーに対応する JSON 値を取得します。
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	exec := pgdb.QueryerFromContext(ctx, s.pool)

	var value []byte
	err := exec.QueryRow(ctx, `
        SELECT value::text
          FROM kv_entries
         WHERE key = $1
    `, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("postgres kv: select %s: %w", key, err)
	}
	return value, true, nil
}

// Set はキーの値を置き換えます。
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	exec := pgdb.QueryerFromContext(ctx, s.pool)
	_, err := exec.Exec(ctx, `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2::jsonb, now())
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = EXCLUDED.updated_at
    `, key, string(value))
	if err != nil {
		return fmt.Errorf("postgres kv: upsert %s: %w", key, err)
	}
	return nil
}

// Delete はキーを削除します。存在しない場合も成功として扱います。
func (s *Store) Delete(ctx context.Context, key string) error {
	exec := pgdb.QueryerFromContext(ctx, s.pool)
	if _, err := exec.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("postgres kv: delete %s: %w", key, err)
	}
	return nil
}
