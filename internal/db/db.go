// Package db manages the in-memory trip frame used for aggregation
package db

import (
	"context"
	"database/sql"
	"fmt"

	// Import modernc.org/sqlite as a blank import to register the driver
	_ "modernc.org/sqlite"
)

// Frame wraps an in-memory SQLite database holding the currently loaded
// trips, with aggregation methods on top.
type Frame struct {
	*sql.DB
}

// New creates an empty in-memory frame and initializes the schema.
func New() (*Frame, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Every pooled connection to :memory: would see its own empty
	// database, so the frame is pinned to a single connection.
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.PingContext(context.Background()); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	f := &Frame{DB: sqlDB}

	if err := f.configure(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := f.createSchema(); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return f, nil
}

// configure sets up database pragmas.
func (f *Frame) configure() error {
	pragmas := []string{
		"PRAGMA synchronous=OFF",
		"PRAGMA temp_store=MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := f.ExecContext(context.Background(), pragma); err != nil {
			return fmt.Errorf("failed to execute %s: %w", pragma, err)
		}
	}

	return nil
}

func (f *Frame) createSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS trips (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		month TEXT NOT NULL,
		day_of_week TEXT NOT NULL,
		hour INTEGER NOT NULL,
		start_station TEXT NOT NULL,
		end_station TEXT NOT NULL,
		duration REAL NOT NULL,
		user_type TEXT NOT NULL,
		gender TEXT,
		birth_year INTEGER
	);
	`
	_, err := f.ExecContext(context.Background(), query)
	return err
}
