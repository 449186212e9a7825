package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration represents one schema migration
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// migrations lists every schema migration in order. Statements are
// embedded so the binary carries its own schema.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_users",
		SQL: `
			CREATE TABLE IF NOT EXISTS users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				username TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				fullname TEXT NOT NULL DEFAULT '',
				carrier TEXT NOT NULL DEFAULT '',
				home_address TEXT NOT NULL DEFAULT '',
				office_address TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 2,
		Name:    "create_trips",
		SQL: `
			CREATE TABLE IF NOT EXISTS trips (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
				current_location TEXT NOT NULL,
				current_lat REAL NOT NULL DEFAULT 0,
				current_lon REAL NOT NULL DEFAULT 0,
				pickup_location TEXT NOT NULL,
				pickup_lat REAL NOT NULL DEFAULT 0,
				pickup_lon REAL NOT NULL DEFAULT 0,
				dropoff_location TEXT NOT NULL,
				dropoff_lat REAL NOT NULL DEFAULT 0,
				dropoff_lon REAL NOT NULL DEFAULT 0,
				current_cycle_used REAL NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`,
	},
	{
		Version: 3,
		Name:    "create_duty_logs",
		SQL: `
			CREATE TABLE IF NOT EXISTS duty_logs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				trip_id INTEGER NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
				log_date TEXT NOT NULL,
				seq INTEGER NOT NULL,
				status TEXT NOT NULL,
				start_time TIMESTAMP NOT NULL,
				end_time TIMESTAMP NOT NULL,
				note TEXT NOT NULL DEFAULT '',
				loc_name TEXT NOT NULL DEFAULT '',
				loc_lat REAL NOT NULL DEFAULT 0,
				loc_lon REAL NOT NULL DEFAULT 0,
				miles REAL NOT NULL DEFAULT 0
			)
		`,
	},
	{
		Version: 4,
		Name:    "index_duty_logs_by_day",
		SQL: `
			CREATE INDEX IF NOT EXISTS idx_duty_logs_trip_day
			ON duty_logs(trip_id, log_date, seq)
		`,
	},
}

// Migrate applies all pending migrations in version order
func Migrate(db *sql.DB) error {
	if err := initMigrationsTable(db); err != nil {
		return err
	}

	applied, err := appliedVersions(db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}

		if _, err := db.Exec(m.SQL); err != nil {
			return fmt.Errorf("failed to apply migration %d (%s): %w", m.Version, m.Name, err)
		}
		if _, err := db.Exec(
			"INSERT INTO migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}

		log.Printf("Applied migration %d: %s", m.Version, m.Name)
	}

	return nil
}

// initMigrationsTable creates the migrations tracking table
func initMigrationsTable(db *sql.DB) error {
	query := `
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// appliedVersions returns the set of applied migration versions
func appliedVersions(db *sql.DB) (map[int]bool, error) {
	rows, err := db.Query("SELECT version FROM migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}

	return applied, rows.Err()
}
