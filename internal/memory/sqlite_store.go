package memory

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps the translation memory in a SQLite database. All
// rows are loaded into memory at open; Flush upserts only the entries
// changed since the last flush, in a single transaction.
type SQLiteStore struct {
	db      *sql.DB
	entries map[string]Entry
	pending map[string]struct{}
}

const createTranslationsTable = `CREATE TABLE IF NOT EXISTS translations (
	key TEXT PRIMARY KEY,
	source TEXT NOT NULL,
	target_language TEXT NOT NULL,
	translation TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// NewSQLiteStore opens (or creates) a SQLite-backed translation memory
// at path. A corrupt database file is replaced by an empty one with a
// warning, mirroring the JSON backend's tolerance for damaged caches.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	store, err := openSQLite(path)
	if err == nil {
		return store, nil
	}

	fmt.Fprintf(os.Stderr, "Warning: translation memory %s is unusable, starting empty: %v\n", path, err)
	if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
		return nil, fmt.Errorf("failed to replace corrupt translation memory: %w", rmErr)
	}
	return openSQLite(path)
}

func openSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open translation memory: %w", err)
	}

	if _, err := db.Exec(createTranslationsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize translation memory: %w", err)
	}

	store := &SQLiteStore{
		db:      db,
		entries: make(map[string]Entry),
		pending: make(map[string]struct{}),
	}

	if err := store.loadAll(); err != nil {
		db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) loadAll() error {
	rows, err := s.db.Query(`SELECT key, source, target_language, translation, updated_at FROM translations`)
	if err != nil {
		return fmt.Errorf("failed to load translation memory: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var entry Entry
		if err := rows.Scan(&key, &entry.Source, &entry.TargetLanguage, &entry.Translation, &entry.UpdatedAt); err != nil {
			return fmt.Errorf("failed to load translation memory: %w", err)
		}
		s.entries[key] = entry
	}

	return rows.Err()
}

// Get returns the cached translation for a (text, language) pair
func (s *SQLiteStore) Get(text, language string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	entry, ok := s.entries[Key(text, language)]
	if !ok {
		return "", false
	}
	return entry.Translation, true
}

// Put upserts a translation into the store
func (s *SQLiteStore) Put(text, language, translation string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	key := Key(text, language)
	s.entries[key] = Entry{
		Source:         text,
		TargetLanguage: language,
		Translation:    translation,
		UpdatedAt:      time.Now(),
	}
	s.pending[key] = struct{}{}
}

// Len returns the number of entries held in memory
func (s *SQLiteStore) Len() int {
	return len(s.entries)
}

// Flush upserts all pending entries in one transaction
func (s *SQLiteStore) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to flush translation memory: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO translations
		(key, source, target_language, translation, updated_at)
		VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to flush translation memory: %w", err)
	}
	defer stmt.Close()

	for key := range s.pending {
		entry := s.entries[key]
		if _, err := stmt.Exec(key, entry.Source, entry.TargetLanguage, entry.Translation, entry.UpdatedAt); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to flush translation memory: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to flush translation memory: %w", err)
	}

	s.pending = make(map[string]struct{})
	return nil
}

// Close flushes pending changes and closes the database
func (s *SQLiteStore) Close() error {
	flushErr := s.Flush()
	if err := s.db.Close(); err != nil {
		return err
	}
	return flushErr
}
