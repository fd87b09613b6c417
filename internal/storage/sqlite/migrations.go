package sqlite

import "database/sql"

// schema contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    verified INTEGER NOT NULL DEFAULT 0,
    otp_code_hash TEXT,
    otp_expires_at INTEGER,
    display_name TEXT NOT NULL DEFAULT '',
    avatar TEXT NOT NULL DEFAULT '',
    theme TEXT NOT NULL DEFAULT 'auto',
    currency TEXT NOT NULL DEFAULT 'INR',
    last_login_at INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS grocery_lists (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    date TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    UNIQUE (account_id, date),
    FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS grocery_items (
    id TEXT PRIMARY KEY,
    list_id TEXT NOT NULL,
    name TEXT NOT NULL,
    quantity REAL NOT NULL,
    unit TEXT NOT NULL,
    category TEXT NOT NULL,
    estimated_price REAL NOT NULL DEFAULT 0,
    actual_price REAL,
    bought INTEGER NOT NULL DEFAULT 0,
    bought_at INTEGER,
    added_at INTEGER NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (list_id) REFERENCES grocery_lists(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS split_records (
    id TEXT PRIMARY KEY,
    account_id TEXT NOT NULL,
    total_amount REAL NOT NULL,
    person_count INTEGER NOT NULL,
    amount_per_person REAL NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    FOREIGN KEY (account_id) REFERENCES accounts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_grocery_lists_account_date ON grocery_lists(account_id, date);
CREATE INDEX IF NOT EXISTS idx_grocery_items_list_id ON grocery_items(list_id);
CREATE INDEX IF NOT EXISTS idx_split_records_account ON split_records(account_id, created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
