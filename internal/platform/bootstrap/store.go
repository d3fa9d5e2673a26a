package bootstrap

import (
	"context"
	"fmt"

	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/file"
	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/memory"
	kvpostgres "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/postgres"
	kvredis "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/redis"
	kvs3 "github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/s3"
	"github.com/ogurasousui/codex-employee-dashboard/internal/adapters/kvstore/sqlite"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
	"github.com/ogurasousui/codex-employee-dashboard/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-dashboard/internal/platform/db/postgres"
)

// Backend は設定から開いたキー・バリューストアとその後始末をまとめたものです。
type Backend struct {
	Store storage.KeyValueStore
	Tx    storage.TransactionManager
	close func() error
}

// Close はバックエンドの接続を閉じます。
func (b *Backend) Close() error {
	if b == nil || b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend は storage.driver に応じたバックエンドを開きます。
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	sc := cfg.Storage
	switch sc.Driver {
	case config.DriverMemory:
		return &Backend{Store: memory.NewStore(), Tx: storage.NoopTransactionManager{}}, nil
	case config.DriverFile:
		s, err := file.NewStore(sc.File.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: s, Tx: storage.NoopTransactionManager{}}, nil
	case config.DriverSQLite:
		s, err := sqlite.NewStore(sc.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: s, Tx: storage.NoopTransactionManager{}, close: s.Close}, nil
	case config.DriverPostgres:
		pool, err := pg.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		return &Backend{
			Store: kvpostgres.NewStore(pool),
			Tx:    pg.NewTransactionManager(pool),
			close: func() error {
				pool.Close()
				return nil
			},
		}, nil
	case config.DriverRedis:
		client := kvredis.NewClient(sc.Redis.Addr, sc.Redis.Password, sc.Redis.DB)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("bootstrap: redis ping: %w", err)
		}
		return &Backend{Store: kvredis.NewStore(client), Tx: storage.NoopTransactionManager{}, close: client.Close}, nil
	case config.DriverS3:
		client, err := kvs3.NewClient(ctx, kvs3.Config{
			Bucket:          sc.S3.Bucket,
			Region:          sc.S3.Region,
			Endpoint:        sc.S3.Endpoint,
			PathStyle:       sc.S3.PathStyle,
			Prefix:          sc.S3.Prefix,
			AccessKeyID:     sc.S3.AccessKeyID,
			SecretAccessKey: sc.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		s, err := kvs3.NewStore(client, sc.S3.Bucket, sc.S3.Prefix)
		if err != nil {
			return nil, err
		}
		return &Backend{Store: s, Tx: storage.NoopTransactionManager{}}, nil
	default:
		return nil, fmt.Errorf("bootstrap: unsupported storage driver %q", sc.Driver)
	}
}
