package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

type fakeClient struct {
	data   map[string]string
	err    error
	expiry []time.Duration
}

func newFakeClient() *fakeClient {
	return &fakeClient{data: make(map[string]string)}
}

func (f *fakeClient) Get(_ context.Context, key string) *goredis.StringCmd {
	if f.err != nil {
		return goredis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	if f.err != nil {
		return goredis.NewStatusResult("", f.err)
	}
	b, ok := value.([]byte)
	if !ok {
		return goredis.NewStatusResult("", errors.New("unexpected value type"))
	}
	f.data[key] = string(b)
	f.expiry = append(f.expiry, expiration)
	return goredis.NewStatusResult("OK", nil)
}

func (f *fakeClient) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	if f.err != nil {
		return goredis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func TestStore_GetSetDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	client := newFakeClient()
	store := NewStore(client)

	if _, found, err := store.Get(ctx, "employees"); err != nil || found {
		t.Fatalf("expected missing key, got found=%t err=%v", found, err)
	}

	if err := store.Set(ctx, "employees", []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if len(client.expiry) != 1 || client.expiry[0] != 0 {
		t.Fatalf("expected value stored without expiry, got %v", client.expiry)
	}

	got, found, err := store.Get(ctx, "employees")
	if err != nil || !found || string(got) != `[]` {
		t.Fatalf("unexpected Get result value=%s found=%t err=%v", got, found, err)
	}

	if err := store.Delete(ctx, "employees"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := store.Delete(ctx, "employees"); err != nil {
		t.Fatalf("Delete of missing key returned error: %v", err)
	}
	if _, found, _ := store.Get(ctx, "employees"); found {
		t.Fatalf("expected key removed")
	}
}

func TestStore_PropagatesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("dial tcp: connection refused")
	client := newFakeClient()
	client.err = boom
	store := NewStore(client)

	if _, _, err := store.Get(ctx, "employees"); !errors.Is(err, boom) {
		t.Fatalf("expected Get to propagate error, got %v", err)
	}
	if err := store.Set(ctx, "employees", []byte(`[]`)); !errors.Is(err, boom) {
		t.Fatalf("expected Set to propagate error, got %v", err)
	}
	if err := store.Delete(ctx, "employees"); !errors.Is(err, boom) {
		t.Fatalf("expected Delete to propagate error, got %v", err)
	}
}
