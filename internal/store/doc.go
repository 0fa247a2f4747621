// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the user directory and the
// session store.
//
// Two backends implement the same interfaces: an in-memory one (development
// and tests) and a SQL one built with squirrel that runs on PostgreSQL (pgx)
// or SQLite (go-sqlite3). [NewStorages] picks the backend from the DSN.
package store
