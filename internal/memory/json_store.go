package memory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// JSONStore keeps the translation memory in a single JSON document. The
// whole file is loaded at open and rewritten on flush.
type JSONStore struct {
	path    string
	entries map[string]Entry
	dirty   bool
}

// NewJSONStore loads a JSON-backed translation memory from path. A
// missing file yields an empty store; a corrupt file yields an empty
// store and a warning, so a damaged cache never blocks a run.
func NewJSONStore(path string) (*JSONStore, error) {
	store := &JSONStore{
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return store, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read translation memory: %w", err)
	}

	if err := json.Unmarshal(data, &store.entries); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: translation memory %s is corrupt, starting empty: %v\n", path, err)
		store.entries = make(map[string]Entry)
	}

	return store, nil
}

// Get returns the cached translation for a (text, language) pair
func (s *JSONStore) Get(text, language string) (string, bool) {
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
func (s *JSONStore) Put(text, language, translation string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.entries[Key(text, language)] = Entry{
		Source:         text,
		TargetLanguage: language,
		Translation:    translation,
		UpdatedAt:      time.Now(),
	}
	s.dirty = true
}

// Len returns the number of entries held in memory
func (s *JSONStore) Len() int {
	return len(s.entries)
}

// Flush writes the store to disk if it has pending changes
func (s *JSONStore) Flush() error {
	if !s.dirty {
		return nil
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode translation memory: %w", err)
	}

	dir := filepath.Dir(s.path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create translation memory directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write translation memory: %w", err)
	}

	s.dirty = false
	return nil
}

// Close flushes pending changes
func (s *JSONStore) Close() error {
	return s.Flush()
}
