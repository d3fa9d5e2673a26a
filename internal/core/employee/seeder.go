package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ogurasousui/codex-employee-dashboard/internal/core/storage"
)

// CurrentSampleVersion はサンプルデータのバージョンです。値を変えると既存の保存データは次回起動時に置き換えられます。
const CurrentSampleVersion = "2"

// SampleEmployees は初期投入する社員データです。
func SampleEmployees() []Fields {
	return []Fields{
		{FullName: "Ananya Sharma", Gender: GenderFemale, DateOfBirth: "1992-08-21", State: "Maharashtra", IsActive: true},
		{FullName: "Rohit Kumar", Gender: GenderMale, DateOfBirth: "1987-11-02", State: "Delhi", IsActive: true},
		{FullName: "Priya Nair", Gender: GenderFemale, DateOfBirth: "1994-04-15", State: "Karnataka", IsActive: false},
		{FullName: "Vikram Singh", Gender: GenderMale, DateOfBirth: "1990-12-05", State: "Tamil Nadu", IsActive: true},
		{FullName: "Neha Banerjee", Gender: GenderFemale, DateOfBirth: "1993-06-18", State: "West Bengal", IsActive: true},
	}
}

// Seeder はバージョン単位で冪等にサンプルデータを投入します。
type Seeder struct {
	repo  Repository
	store *storage.Adapter
	tx    storage.TransactionManager
}

// NewSeeder は Seeder を生成します。
func NewSeeder(repo Repository, store *storage.Adapter, tx storage.TransactionManager) *Seeder {
	if tx == nil {
		tx = storage.NoopTransactionManager{}
	}
	return &Seeder{repo: repo, store: store, tx: tx}
}

// EnsureSeeded はコレクションが空、または保存済みバージョンが CurrentSampleVersion と異なる場合に
// 既存コレクションを破棄してサンプルを投入します。それ以外は何も書き込みません。
func (s *Seeder) EnsureSeeded(ctx context.Context) error {
	return s.tx.WithinReadWrite(ctx, func(txCtx context.Context) error {
		current, err := s.repo.List(txCtx)
		if err != nil {
			return err
		}

		var version versionTag
		if _, err := s.store.Read(txCtx, storage.KeySampleVersion, &version); err != nil {
			if !errors.Is(err, storage.ErrCorruptValue) {
				return err
			}
			version = ""
		}

		if len(current) > 0 && string(version) == CurrentSampleVersion {
			return nil
		}

		if err := s.repo.Clear(txCtx); err != nil {
			return fmt.Errorf("seed: clear employees: %w", err)
		}

		for _, fields := range SampleEmployees() {
			if _, err := s.repo.Add(txCtx, fields); err != nil {
				return fmt.Errorf("seed: add %s: %w", fields.FullName, err)
			}
		}

		return s.store.Write(txCtx, storage.KeySampleVersion, CurrentSampleVersion)
	})
}

// versionTag は文字列 "2" と数値 2 のどちらで保存されたバージョンも読み取ります。
type versionTag string

func (v *versionTag) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = versionTag(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = versionTag(n.String())
	return nil
}
