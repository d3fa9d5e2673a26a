package s3

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

type fakeAPI struct {
	objects     map[string][]byte
	contentType map[string]string
	missingErr  error
	err         error
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		objects:     make(map[string][]byte),
		contentType: make(map[string]string),
		missingErr:  &types.NoSuchKey{},
	}
}

func (f *fakeAPI) GetObject(_ context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.objects[aws.ToString(in.Key)]
	if !ok {
		return nil, f.missingErr
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(b))}, nil
}

func (f *fakeAPI) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	key := aws.ToString(in.Key)
	f.objects[key] = b
	f.contentType[key] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeAPI) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestStore_RoundTripWithPrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := newFakeAPI()
	store, err := NewStore(api, "dashboard", "/tenants/acme/")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if _, found, err := store.Get(ctx, "employees"); err != nil || found {
		t.Fatalf("expected missing object, got found=%t err=%v", found, err)
	}

	if err := store.Set(ctx, "employees", []byte(`[]`)); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	if _, ok := api.objects["tenants/acme/employees.json"]; !ok {
		t.Fatalf("expected object under prefix, got keys %v", api.objects)
	}
	if api.contentType["tenants/acme/employees.json"] != "application/json" {
		t.Fatalf("expected JSON content type, got %q", api.contentType["tenants/acme/employees.json"])
	}

	got, found, err := store.Get(ctx, "employees")
	if err != nil || !found || string(got) != `[]` {
		t.Fatalf("unexpected Get result value=%s found=%t err=%v", got, found, err)
	}

	if err := store.Delete(ctx, "employees"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if len(api.objects) != 0 {
		t.Fatalf("expected object removed, got %v", api.objects)
	}
}

func TestStore_GenericNotFoundCode(t *testing.T) {
	t.Parallel()

	api := newFakeAPI()
	api.missingErr = &smithy.GenericAPIError{Code: "NotFound", Message: "not found"}
	store, err := NewStore(api, "dashboard", "")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	if _, found, err := store.Get(context.Background(), "auth_user"); err != nil || found {
		t.Fatalf("expected NotFound code treated as missing, got found=%t err=%v", found, err)
	}
}

func TestStore_PropagatesErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	api := newFakeAPI()
	api.err = &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}
	store, err := NewStore(api, "dashboard", "")
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	var apiErr smithy.APIError
	if _, _, err := store.Get(ctx, "employees"); !errors.As(err, &apiErr) {
		t.Fatalf("expected Get to propagate api error, got %v", err)
	}
	if err := store.Set(ctx, "employees", []byte(`[]`)); err == nil {
		t.Fatalf("expected Set to fail")
	}
	if err := store.Delete(ctx, "employees"); err == nil {
		t.Fatalf("expected Delete to fail")
	}
}

func TestNewStore_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewStore(nil, "bucket", ""); err == nil {
		t.Fatalf("expected error for nil client")
	}
	if _, err := NewStore(newFakeAPI(), " ", ""); err == nil {
		t.Fatalf("expected error for empty bucket")
	}
}
