// Package database opens the platform's SQLite database and bootstraps its
// schema. SQLite keeps the deployment a single binary plus a single file,
// which is all this product needs.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS services (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	key TEXT UNIQUE,
	title TEXT,
	description TEXT,
	starting_price TEXT
);

CREATE TABLE IF NOT EXISTS bookings (
	id TEXT PRIMARY KEY,
	name TEXT,
	phone TEXT,
	address TEXT,
	pincode TEXT,
	service_id INTEGER,
	status TEXT,
	assigned_to TEXT,
	created_at TEXT
);
`

// stockServices seeds a fresh database so the catalog page is never empty on
// first boot. Rows are (key, title, description, starting_price).
var stockServices = [][4]string{
	{"ac_clean", "AC Cleaning & Servicing", "Filter wash, coil clean, water drain & basic check", "₹499"},
	{"wm_clean", "Washing Machine Cleaning", "Drum sanitization & pipe check", "₹399"},
	{"fridge_clean", "Fridge Cleaning", "Coil clean, gasket check, cooling basic check", "₹349"},
	{"chimney_clean", "Chimney Deep Clean", "Degrease filters, motor check", "₹699"},
	{"fan_clean", "Fan & Exhaust Cleaning", "Blade clean, motor dust removal", "₹149"},
	{"geyser", "Geyser Repair & Service", "Heating & thermostat checks", "₹149"},
}

// Open opens (creating if needed) the SQLite database at path, applies the
// schema and seeds the service catalog when it is empty.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("database: create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("database: open %s: %w", path, err)
	}
	// modernc sqlite serializes writes itself; a single connection avoids
	// SQLITE_BUSY under concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("database: apply schema: %w", err)
	}

	if err := seedServices(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func seedServices(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&count); err != nil {
		return fmt.Errorf("database: count services: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("database: begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, svc := range stockServices {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO services (key, title, description, starting_price) VALUES (?, ?, ?, ?)`,
			svc[0], svc[1], svc[2], svc[3],
		); err != nil {
			return fmt.Errorf("database: seed service %s: %w", svc[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("database: commit seed: %w", err)
	}
	return nil
}
