package persist

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLite stores the snapshot in a single-row table inside a SQLite file.
// Handy when several club presets share one database path.
type SQLite struct {
	conn *sqlx.DB
	slot string
}

// OpenSQLite opens or creates a SQLite database at path. slot names the save
// slot; an empty slot means "default".
func OpenSQLite(path, slot string) (*SQLite, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if slot == "" {
		slot = "default"
	}

	st := &SQLite{conn: conn, slot: slot}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return st, nil
}

// Close closes the database connection.
func (st *SQLite) Close() error {
	return st.conn.Close()
}

func (st *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS saves (
		slot TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	_, err := st.conn.Exec(schema)
	return err
}

func (st *SQLite) Load() ([]byte, bool, error) {
	var data []byte
	err := st.conn.Get(&data, "SELECT data FROM saves WHERE slot = ?", st.slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load save: %w", err)
	}
	return data, true, nil
}

func (st *SQLite) Save(data []byte) error {
	_, err := st.conn.Exec(`
		INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, datetime('now'))
		ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		st.slot, data)
	if err != nil {
		return fmt.Errorf("write save: %w", err)
	}
	return nil
}

func (st *SQLite) Clear() error {
	_, err := st.conn.Exec("DELETE FROM saves WHERE slot = ?", st.slot)
	return err
}
