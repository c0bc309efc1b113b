// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

// =============================================================================
// SQLITE STORE TESTS
// =============================================================================

func TestSQLiteStore_GetSet(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "nested", DefaultFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if _, ok, err := store.Get("theme"); err != nil || ok {
		t.Fatalf("Get on empty store = ok:%v err:%v", ok, err)
	}

	if err := store.Set("theme", "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Set("theme", "dark"); err != nil {
		t.Fatalf("Set (overwrite) failed: %v", err)
	}

	v, ok, err := store.Get("theme")
	if err != nil || !ok || v != "dark" {
		t.Errorf("Get = %q, %v, %v; want dark, true, nil", v, ok, err)
	}
}

func TestSQLiteStore_Persists(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set("theme", "light"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("theme")
	if err != nil || !ok || v != "light" {
		t.Errorf("Get after reopen = %q, %v, %v", v, ok, err)
	}
}

func TestSQLiteStore_Closed(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), DefaultFileName))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.Close()

	if err := store.Set("k", "v"); !errors.Is(err, ErrClosed) {
		t.Errorf("Set after Close = %v, want ErrClosed", err)
	}
	if _, _, err := store.Get("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("Get after Close = %v, want ErrClosed", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open(""); err == nil {
		t.Error("expected error for empty path")
	}
}

// =============================================================================
// MEMORY STORE TESTS
// =============================================================================

func TestMemoryStore(t *testing.T) {
	var kv KV = NewMemoryStore()

	if _, ok, _ := kv.Get("missing"); ok {
		t.Error("expected missing key")
	}
	kv.Set("a", "1")
	if v, ok, _ := kv.Get("a"); !ok || v != "1" {
		t.Errorf("Get = %q, %v", v, ok)
	}
}
