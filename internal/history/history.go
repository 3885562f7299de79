// Package history keeps an audit log of applied edits in a small SQLite
// database, so a user can see what was changed and when after the fact.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Entry is one recorded edit.
type Entry struct {
	At     time.Time
	Object string
	Action string
}

// Log is an append-only edit log.
type Log struct {
	db *sql.DB
}

// Open creates or opens the log database and ensures its schema.
func Open(path string) (*Log, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history %s: %w", path, err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS edits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		at INTEGER NOT NULL,
		object TEXT NOT NULL,
		action TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_edits_at ON edits(at);
	`
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create history schema: %w", err)
	}
	return &Log{db: db}, nil
}

// Record appends one edit.
func (l *Log) Record(object, action string) error {
	_, err := l.db.Exec(
		"INSERT INTO edits (at, object, action) VALUES (?, ?, ?)",
		time.Now().Unix(), object, action)
	if err != nil {
		return fmt.Errorf("record edit: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		"SELECT at, object, action FROM edits ORDER BY at DESC, id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Entry
	for rows.Next() {
		var at int64
		var e Entry
		if err := rows.Scan(&at, &e.Object, &e.Action); err != nil {
			return nil, err
		}
		e.At = time.Unix(at, 0)
		out = append(out, e)
	}
	return out, rows.Err()
}

func (l *Log) Close() error { return l.db.Close() }
