// Package sqlite implements the celebrant and booking DAOs on a single-file
// SQLite database with plain parameterized SQL.
package sqlite

import (
	"context"
	"database/sql"
)

// Celebrants must exist before bookings because of the foreign key.
// Timestamps are stored as RFC 3339 text in UTC.
const schema = `
CREATE TABLE IF NOT EXISTS celebrants (
    code INTEGER PRIMARY KEY AUTOINCREMENT,
    first_name TEXT NOT NULL,
    last_name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL,
    date_of_birth TEXT,
    note TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT
);

CREATE TABLE IF NOT EXISTS bookings (
    code INTEGER PRIMARY KEY AUTOINCREMENT,
    celebrant_code INTEGER NOT NULL,
    title TEXT NOT NULL,
    start_at TEXT NOT NULL,
    end_at TEXT,
    package TEXT,
    guest_count INTEGER,
    status TEXT,
    price REAL,
    deposit REAL,
    deposit_paid INTEGER,
    note TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT,
    FOREIGN KEY (celebrant_code) REFERENCES celebrants(code) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_bookings_celebrant_code ON bookings(celebrant_code);
`

func InitTables(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	return err
}
