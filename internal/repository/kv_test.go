package repository

import (
	"context"
	"path/filepath"
	"testing"
)

func testKVRoundTrip(t *testing.T, store KVStore) {
	t.Helper()
	ctx := context.Background()

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("expected miss without error, got ok=%v err=%v", ok, err)
	}

	if err := store.Set(ctx, "users", `[{"id":"1"}]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	value, ok, err := store.Get(ctx, "users")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if value != `[{"id":"1"}]` {
		t.Fatalf("unexpected value %q", value)
	}

	if err := store.Set(ctx, "users", `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, _, _ = store.Get(ctx, "users")
	if value != `[]` {
		t.Fatalf("expected overwritten value, got %q", value)
	}

	if err := store.Delete(ctx, "users"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "users"); ok {
		t.Fatalf("expected key deleted")
	}

	// Borrar una clave inexistente no es error.
	if err := store.Delete(ctx, "users"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestMemoryKV(t *testing.T) {
	testKVRoundTrip(t, NewMemoryKV())
}

func TestSQLiteKV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	store, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	testKVRoundTrip(t, store)
}

func TestSQLiteKV_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")
	ctx := context.Background()

	store, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := store.Set(ctx, "theme", "dark"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := NewSQLiteKV(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	value, ok, err := reopened.Get(ctx, "theme")
	if err != nil || !ok {
		t.Fatalf("get after reopen: ok=%v err=%v", ok, err)
	}
	if value != "dark" {
		t.Fatalf("expected persisted value, got %q", value)
	}
}
