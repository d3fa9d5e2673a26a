package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	pgdb "github.com/ogurasousui/codex-employee-dashboard/internal/platform/db/postgres"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

const (
	selectQuery = `
        SELECT value::text
          FROM kv_entries
         WHERE key = $1
    `
	upsertQuery = `
        INSERT INTO kv_entries (key, value, updated_at)
        VALUES ($1, $2::jsonb, now())
        ON CONFLICT (key) DO UPDATE
           SET value = EXCLUDED.value,
               updated_at = EXCLUDED.updated_at
    `
	deleteQuery = `DELETE FROM kv_entries WHERE key = $1`
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestStore_Get_Found(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	rows := pgxmock.NewRows([]string{"value"}).AddRow([]byte(`"2"`))
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("dashboard:sample_version").
		WillReturnRows(rows)

	value, found, err := store.Get(context.Background(), "dashboard:sample_version")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if !found || string(value) != `"2"` {
		t.Fatalf("unexpected result found=%t value=%s", found, value)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_Get_Missing(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("auth_user").
		WillReturnError(pgx.ErrNoRows)

	_, found, err := store.Get(context.Background(), "auth_user")
	if err != nil {
		t.Fatalf("expected nil error for missing key, got %v", err)
	}
	if found {
		t.Fatalf("expected key to be reported missing")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_Get_Error(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	boom := errors.New("connection reset")
	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("employees").
		WillReturnError(boom)

	if _, _, err := store.Get(context.Background(), "employees"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
}

func TestStore_Set(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("employees", `[]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	if err := store.Set(context.Background(), "employees", []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectExec(regexp.QuoteMeta(deleteQuery)).
		WithArgs("auth_user").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := store.Delete(context.Background(), "auth_user"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStore_UsesTransactionFromContext(t *testing.T) {
	t.Parallel()

	mock := newMock(t)
	store := NewStore(mock)

	mock.ExpectBeginTx(pgx.TxOptions{AccessMode: pgx.ReadWrite})
	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("employees", `[]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	tm := pgdb.NewTransactionManager(mock)
	err := tm.WithinReadWrite(context.Background(), func(txCtx context.Context) error {
		return store.Set(txCtx, "employees", []byte(`[]`))
	})
	if err != nil {
		t.Fatalf("WithinReadWrite returned error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
