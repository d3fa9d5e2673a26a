package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ストレージドライバー名です。
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
	DriverS3       = "s3"
)

const (
	defaultFilePath   = "data/dashboard.json"
	defaultSQLitePath = "data/dashboard.db"
	defaultRedisAddr  = "localhost:6379"
	defaultS3Region   = "us-east-1"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Storage  StorageConfig  `yaml:"storage"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
}

// ServerConfig は gRPC サーバーに関する設定です。
type ServerConfig struct {
	ListenAddr  string `yaml:"listen_addr"`
	MetricsAddr string `yaml:"metrics_addr"`
}

// StorageConfig はキー・バリューストアの設定です。
type StorageConfig struct {
	Driver    string       `yaml:"driver"`
	Namespace string       `yaml:"namespace"`
	File      FileConfig   `yaml:"file"`
	SQLite    SQLiteConfig `yaml:"sqlite"`
	Redis     RedisConfig  `yaml:"redis"`
	S3        S3Config     `yaml:"s3"`
}

type FileConfig struct {
	Path string `yaml:"path"`
}

type SQLiteConfig struct {
	Path string `yaml:"path"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// S3Config は S3 互換ストレージの設定です。認証情報は空なら AWS のデフォルトチェーンを利用します。
type S3Config struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	PathStyle       bool   `yaml:"path_style"`
	Prefix          string `yaml:"prefix"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
}

// AuthConfig はログインを許可する認証情報です。空の項目は組み込みのデモ用認証情報で補われます。
type AuthConfig struct {
	Email         string        `yaml:"email"`
	Password      string        `yaml:"password"`
	Name          string        `yaml:"name"`
	LoginDelay    time.Duration `yaml:"-"`
	LoginDelayRaw string        `yaml:"login_delay"`
}

// Load は指定されたパスから設定ファイルを読み込みます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Path は flag 値、CONFIG_PATH 環境変数、既定値の順で設定ファイルのパスを決定します。
func Path(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func (c *Config) validateAndNormalize() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("config: server.listen_addr must be set")
	}

	if err := c.Storage.validateAndNormalize(); err != nil {
		return err
	}

	if c.Storage.Driver == DriverPostgres {
		if err := c.Database.validateAndNormalize(); err != nil {
			return err
		}
	}

	return c.Auth.validateAndNormalize()
}

func (s *StorageConfig) validateAndNormalize() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	if s.Driver == "" {
		s.Driver = DriverFile
	}
	s.Namespace = strings.TrimSpace(s.Namespace)

	switch s.Driver {
	case DriverMemory, DriverPostgres:
	case DriverFile:
		if s.File.Path == "" {
			s.File.Path = defaultFilePath
		}
		s.File.Path = filepath.Clean(s.File.Path)
	case DriverSQLite:
		if s.SQLite.Path == "" {
			s.SQLite.Path = defaultSQLitePath
		}
		s.SQLite.Path = filepath.Clean(s.SQLite.Path)
	case DriverRedis:
		if s.Redis.Addr == "" {
			s.Redis.Addr = defaultRedisAddr
		}
		if s.Redis.DB < 0 {
			return fmt.Errorf("config: storage.redis.db must not be negative")
		}
	case DriverS3:
		if s.S3.Bucket == "" {
			return fmt.Errorf("config: storage.s3.bucket must be set")
		}
		if s.S3.Region == "" {
			s.S3.Region = defaultS3Region
		}
		if s.S3.Endpoint != "" {
			if _, err := url.ParseRequestURI(s.S3.Endpoint); err != nil {
				return fmt.Errorf("config: storage.s3.endpoint: %w", err)
			}
		}
	default:
		return fmt.Errorf("config: unsupported storage.driver %q", s.Driver)
	}
	return nil
}

// Validate はデータベース設定を検証し、既定値を補います。マイグレーションなど PostgreSQL を直接扱う処理で利用します。
func (d *DatabaseConfig) Validate() error {
	return d.validateAndNormalize()
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Password == "" {
		return fmt.Errorf("config: database.password must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	return nil
}

func (a *AuthConfig) validateAndNormalize() error {
	a.Email = strings.TrimSpace(a.Email)
	a.Name = strings.TrimSpace(a.Name)
	if (a.Email == "") != (a.Password == "") {
		return fmt.Errorf("config: auth.email and auth.password must be set together")
	}

	delay, err := parseDurationAllowEmpty(a.LoginDelayRaw)
	if err != nil {
		return fmt.Errorf("config: auth.login_delay: %w", err)
	}
	if delay < 0 {
		return fmt.Errorf("config: auth.login_delay must not be negative")
	}
	a.LoginDelay = delay
	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。ユーザー名とパスワードはエスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
