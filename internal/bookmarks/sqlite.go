package bookmarks

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// SQLite is the database-backed Persistence. Writes go through a
// single-connection handle; reads use a separate read-only handle.
type SQLite struct {
	readDB  *sql.DB
	writeDB *sql.DB
}

func OpenSQLite(dbPath string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	writeDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening write db: %w", err)
	}
	writeDB.SetMaxOpenConns(1)

	readDB, err := sql.Open("sqlite", dbPath+"?mode=ro")
	if err != nil {
		writeDB.Close()
		return nil, fmt.Errorf("opening read db: %w", err)
	}

	s := &SQLite{readDB: readDB, writeDB: writeDB}
	if err := s.init(); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLite) init() error {
	// position preserves list order; prepend-merge ordering is not
	// derivable from bookmarked_at alone after imports.
	_, err := s.writeDB.Exec(`
		CREATE TABLE IF NOT EXISTS reading_list (
			post_id       TEXT PRIMARY KEY,
			title         TEXT NOT NULL,
			path          TEXT NOT NULL,
			category      TEXT NOT NULL DEFAULT '',
			difficulty    TEXT NOT NULL DEFAULT '',
			read_time     TEXT NOT NULL DEFAULT '',
			author        TEXT NOT NULL DEFAULT '',
			bookmarked_at DATETIME NOT NULL,
			tags          TEXT NOT NULL DEFAULT '[]',
			position      INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_reading_list_position ON reading_list(position);
	`)
	if err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (s *SQLite) Close() error {
	var errs []error
	if s.readDB != nil {
		errs = append(errs, s.readDB.Close())
	}
	if s.writeDB != nil {
		errs = append(errs, s.writeDB.Close())
	}
	for _, e := range errs {
		if e != nil {
			return e
		}
	}
	return nil
}

func (s *SQLite) Load() ([]Record, error) {
	rows, err := s.readDB.Query(`
		SELECT post_id, title, path, category, difficulty, read_time, author, bookmarked_at, tags
		FROM reading_list ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("querying reading list: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var tags string
		if err := rows.Scan(&r.PostID, &r.Title, &r.Path, &r.Category, &r.Difficulty,
			&r.ReadTime, &r.Author, &r.BookmarkedAt, &tags); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		if err := json.Unmarshal([]byte(tags), &r.Tags); err != nil {
			return nil, fmt.Errorf("parsing tags for %s: %w", r.PostID, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Save replaces the whole table in one transaction, mirroring the
// write-through discipline of the JSON file backend.
func (s *SQLite) Save(records []Record) error {
	tx, err := s.writeDB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM reading_list"); err != nil {
		return fmt.Errorf("clearing reading list: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO reading_list (post_id, title, path, category, difficulty, read_time, author, bookmarked_at, tags, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		tags, err := json.Marshal(r.Tags)
		if err != nil {
			return err
		}
		if _, err := stmt.Exec(r.PostID, r.Title, r.Path, r.Category, r.Difficulty,
			r.ReadTime, r.Author, r.BookmarkedAt, string(tags), i); err != nil {
			return fmt.Errorf("inserting record %s: %w", r.PostID, err)
		}
	}

	return tx.Commit()
}
