package employee

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// UseCase はプレゼンテーション層に公開する社員ビューモデルのインターフェースです。
type UseCase interface {
	Load(ctx context.Context) error
	IsLoading() bool
	Employees() []*Employee
	AllEmployees() []*Employee
	Filtered(f Filters) []*Employee
	Filters() Filters
	SetFilters(f Filters) error
	Stats() Stats
	Recent(n int) []*Employee
	Get(id string) (*Employee, error)
	Add(ctx context.Context, fields Fields) (*Employee, error)
	Update(ctx context.Context, id string, patch Patch) (*Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	ToggleStatus(ctx context.Context, id string) (*Employee, error)
}

// ViewModel は Repository の内容をメモリ上にキャッシュし、絞り込みと集計を提供します。
// 変更系メソッドはリポジトリへの反映に成功した場合のみキャッシュを更新します。
type ViewModel struct {
	repo   Repository
	seeder *Seeder

	// opMu は再読み込みと変更系操作を直列化します。
	opMu sync.Mutex

	mu        sync.RWMutex
	employees []*Employee
	filters   Filters
	loading   bool
	loaded    bool
}

var _ UseCase = (*ViewModel)(nil)

// NewViewModel は ViewModel を生成します。Load が完了するまで IsLoading は true です。
func NewViewModel(repo Repository, seeder *Seeder) *ViewModel {
	return &ViewModel{repo: repo, seeder: seeder, loading: true}
}

// Load はサンプルデータの投入を保証したうえで全社員を読み込みます。
func (v *ViewModel) Load(ctx context.Context) error {
	v.opMu.Lock()
	defer v.opMu.Unlock()

	v.mu.Lock()
	v.loading = true
	v.mu.Unlock()

	var (
		list []*Employee
		err  error
	)
	if v.seeder != nil {
		err = v.seeder.EnsureSeeded(ctx)
	}
	if err == nil {
		list, err = v.repo.List(ctx)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.loading = false
	if err != nil {
		return fmt.Errorf("load employees: %w", err)
	}
	v.employees = list
	v.loaded = true
	return nil
}

// Refresh はストアから再読み込みします。
func (v *ViewModel) Refresh(ctx context.Context) error {
	return v.Load(ctx)
}

// IsLoading は読み込み中かどうかを返します。
func (v *ViewModel) IsLoading() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.loading
}

// Employees は現在のフィルタを適用した社員一覧を返します。
func (v *ViewModel) Employees() []*Employee {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEmployees(ApplyFilters(v.employees, v.filters))
}

// AllEmployees は絞り込み前の社員一覧を返します。
func (v *ViewModel) AllEmployees() []*Employee {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEmployees(v.employees)
}

// Filtered は保持しているフィルタ状態を変えずに f で絞り込んだ結果を返します。
func (v *ViewModel) Filtered(f Filters) []*Employee {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEmployees(ApplyFilters(v.employees, f))
}

// Filters は現在のフィルタ状態を返します。
func (v *ViewModel) Filters() Filters {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.filters
}

// SetFilters はフィルタ状態を置き換えます。
func (v *ViewModel) SetFilters(f Filters) error {
	if err := f.Validate(); err != nil {
		return err
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.filters = f
	return nil
}

// Stats は絞り込み前の一覧に対する集計を返します。
func (v *ViewModel) Stats() Stats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return ComputeStats(v.employees)
}

// Recent は作成日時の新しい順に n 件返します。
func (v *ViewModel) Recent(n int) []*Employee {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return cloneEmployees(MostRecent(v.employees, n))
}

// Get はキャッシュから ID で社員を取得します。
func (v *ViewModel) Get(id string) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	idx := indexOf(v.employees, id)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}
	return cloneEmployee(v.employees[idx]), nil
}

// Add は社員を作成しキャッシュの末尾に追加します。
func (v *ViewModel) Add(ctx context.Context, fields Fields) (*Employee, error) {
	normalized, err := normalizeFields(fields)
	if err != nil {
		return nil, err
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return nil, ErrNotLoaded
	}

	created, err := v.repo.Add(ctx, normalized)
	if err != nil {
		return nil, err
	}
	v.employees = append(v.employees, created)
	return cloneEmployee(created), nil
}

// Update は社員を部分更新しキャッシュ上の同じレコードを置き換えます。
func (v *ViewModel) Update(ctx context.Context, id string, patch Patch) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}
	normalized, err := normalizePatch(patch)
	if err != nil {
		return nil, err
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return nil, ErrNotLoaded
	}
	return v.updateLocked(ctx, id, normalized)
}

// Delete は社員を削除し、削除できた場合のみキャッシュからも取り除きます。
func (v *ViewModel) Delete(ctx context.Context, id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, fmt.Errorf("id: %w", ErrInvalidID)
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return false, ErrNotLoaded
	}

	removed, err := v.repo.Delete(ctx, id)
	if err != nil || !removed {
		return removed, err
	}

	if idx := indexOf(v.employees, id); idx >= 0 {
		v.employees = append(v.employees[:idx:idx], v.employees[idx+1:]...)
	}
	return true, nil
}

// ToggleStatus は isActive を反転します。
func (v *ViewModel) ToggleStatus(ctx context.Context, id string) (*Employee, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("id: %w", ErrInvalidID)
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.loaded {
		return nil, ErrNotLoaded
	}

	idx := indexOf(v.employees, id)
	if idx < 0 {
		return nil, ErrEmployeeNotFound
	}
	next := !v.employees[idx].IsActive
	return v.updateLocked(ctx, id, Patch{IsActive: &next})
}

func (v *ViewModel) updateLocked(ctx context.Context, id string, patch Patch) (*Employee, error) {
	updated, err := v.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if idx := indexOf(v.employees, id); idx >= 0 {
		v.employees[idx] = updated
	}
	return cloneEmployee(updated), nil
}
