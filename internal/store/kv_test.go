package store

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "trips.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = kv.Close() })
	return kv
}

func TestKVSetGet(t *testing.T) {
	kv := openTestKV(t)

	if _, ok, err := kv.Get("trips"); err != nil || ok {
		t.Fatalf("absent key: got ok=%v err=%v", ok, err)
	}

	if err := kv.Set("trips", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := kv.Get("trips")
	if err != nil || !ok || v != `[]` {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}

	// Replaces, never appends.
	if err := kv.Set("trips", `[{"id":"x"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, _, _ = kv.Get("trips")
	if v != `[{"id":"x"}]` {
		t.Fatalf("after replace: %q", v)
	}
}

func TestKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.db")

	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := kv.Set("darkMode", "true"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	kv2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer func() { _ = kv2.Close() }()

	v, ok, err := kv2.Get("darkMode")
	if err != nil || !ok || v != "true" {
		t.Fatalf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestKVCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "trips.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open with missing parent dirs: %v", err)
	}
	_ = kv.Close()
}
