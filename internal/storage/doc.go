// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides durable client-local key/value storage.
//
// # Key Types
//
//   - KV: Minimal get/set interface used by consumers
//   - SQLiteStore: KV backed by a "kv" table in a SQLite file
//   - MemoryStore: KV kept in memory
//
// # Usage
//
//	store, err := storage.Open(filepath.Join(dataDir, storage.DefaultFileName))
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//
//	err = store.Set("theme", "light")
//
// # Storage Location
//
// The database lives at ~/.tweetgen/local.db unless storage.path is set.
package storage
