package employee

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// Repository は社員コレクションに対する CRUD の抽象です。
type Repository interface {
	List(ctx context.Context) ([]*Employee, error)
	Add(ctx context.Context, fields Fields) (*Employee, error)
	Update(ctx context.Context, id string, patch Patch) (*Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Clear(ctx context.Context) error
}

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// IDGenerator は社員 ID を採番します。
type IDGenerator interface {
	NewID() (string, error)
}

// IDPrefix は社員 ID の接頭辞です。
const IDPrefix = "EMP-"

// UUIDGenerator は UUIDv7 による時刻順の一意な ID を採番します。
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return IDPrefix + id.String(), nil
}

// StoreRepository は storage.Adapter 上にコレクション全体を JSON 配列として保存する Repository の実装です。
type StoreRepository struct {
	store *storage.Adapter
	clock Clock
	ids   IDGenerator
	tx    storage.TransactionManager

	mu sync.Mutex
}

var _ Repository = (*StoreRepository)(nil)

// NewStoreRepository は StoreRepository を生成します。nil の引数には既定の実装を使います。
func NewStoreRepository(store *storage.Adapter, clock Clock, ids IDGenerator, tx storage.TransactionManager) *StoreRepository {
	if clock == nil {
		clock = realClock{}
	}
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if tx == nil {
		tx = storage.NoopTransactionManager{}
	}
	return &StoreRepository{store: store, clock: clock, ids: ids, tx: tx}
}

// List は保存順で全社員を返します。
func (r *StoreRepository) List(ctx context.Context) ([]*Employee, error) {
	var list []*Employee
	if err := r.tx.WithinReadOnly(ctx, func(txCtx context.Context) error {
		loaded, err := r.load(txCtx)
		if err != nil {
			return err
		}
		list = loaded
		return nil
	}); err != nil {
		return nil, err
	}
	return list, nil
}

// Add は ID とタイムスタンプを採番して社員を末尾に追加します。
func (r *StoreRepository) Add(ctx context.Context, fields Fields) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.ids.NewID()
	if err != nil {
		return nil, err
	}

	var created *Employee
	if err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		list, err := r.load(txCtx)
		if err != nil {
			return err
		}

		now := r.clock.Now()
		emp := &Employee{
			ID:           id,
			FullName:     fields.FullName,
			Gender:       fields.Gender,
			DateOfBirth:  fields.DateOfBirth,
			State:        fields.State,
			IsActive:     fields.IsActive,
			ProfileImage: fields.ProfileImage,
			CreatedAt:    now,
			UpdatedAt:    now,
		}

		if err := r.store.Write(txCtx, storage.KeyEmployees, append(list, emp)); err != nil {
			return err
		}
		created = cloneEmployee(emp)
		return nil
	}); err != nil {
		return nil, err
	}

	return created, nil
}

// Update は patch の非 nil フィールドを既存レコードへ上書きし updatedAt を更新します。
func (r *StoreRepository) Update(ctx context.Context, id string, patch Patch) (*Employee, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated *Employee
	if err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		list, err := r.load(txCtx)
		if err != nil {
			return err
		}

		idx := indexOf(list, id)
		if idx < 0 {
			return ErrEmployeeNotFound
		}

		existing := list[idx]
		patch.apply(existing)
		existing.UpdatedAt = r.clock.Now()

		if err := r.store.Write(txCtx, storage.KeyEmployees, list); err != nil {
			return err
		}
		updated = cloneEmployee(existing)
		return nil
	}); err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete は該当 ID の社員を削除し、実際に削除したかどうかを返します。
func (r *StoreRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := false
	if err := r.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		list, err := r.load(txCtx)
		if err != nil {
			return err
		}

		idx := indexOf(list, id)
		if idx < 0 {
			return nil
		}
		kept := append(list[:idx:idx], list[idx+1:]...)

		if err := r.store.Write(txCtx, storage.KeyEmployees, kept); err != nil {
			return err
		}
		removed = true
		return nil
	}); err != nil {
		return false, err
	}

	return removed, nil
}

// FindByID は ID で社員を取得します。
func (r *StoreRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	list, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOf(list, id)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}
	return list[idx], nil
}

// Clear はコレクション自体を削除します。
func (r *StoreRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Remove(ctx, storage.KeyEmployees)
}

func (r *StoreRepository) load(ctx context.Context) ([]*Employee, error) {
	var list []*Employee
	if _, err := r.store.Read(ctx, storage.KeyEmployees, &list); err != nil {
		return nil, err
	}
	kept := make([]*Employee, 0, len(list))
	for _, e := range list {
		if e != nil {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

func indexOf(list []*Employee, id string) int {
	id = strings.TrimSpace(id)
	if id == "" {
		return -1
	}
	for i, e := range list {
		if e.ID == id {
			return i
		}
	}
	return -1
}
