// Package store implements the persistence layer of the application on top
// of a single sqlite database file.
//
// The database location comes from the configuration record (DB_PATH); the
// file and its parent directory are created on first start and the embedded
// goose migrations are applied before any repository is handed out.
package store
