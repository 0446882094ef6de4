// Package memory implements the persistent translation memory: a cache
// mapping (source text, target language) pairs to previously obtained
// translations so repeated runs do not re-translate identical cells.
package memory

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Entry is a single translation memory record
type Entry struct {
	Source         string    `json:"source"`
	TargetLanguage string    `json:"target_language"`
	Translation    string    `json:"translation"`
	UpdatedAt      time.Time `json:"timestamp"`
}

// Store is the interface all translation memory backends implement
type Store interface {
	// Get returns the cached translation for a (text, language) pair.
	// Returns false if no entry exists.
	Get(text, language string) (string, bool)

	// Put upserts a translation and marks the store dirty. Empty or
	// whitespace-only text is never stored.
	Put(text, language, translation string)

	// Len returns the number of entries currently held in memory
	Len() int

	// Flush persists pending changes to durable storage. A no-op when
	// the store is clean. The in-memory map stays usable even if the
	// flush fails.
	Flush() error

	// Close flushes pending changes and releases the backing resource
	Close() error
}

// Config holds translation memory settings
type Config struct {
	// Backend selects the storage backend ("json" or "sqlite")
	Backend string

	// Path is the location of the durable cache file
	Path string
}

// NewStore creates a translation memory store based on the configuration
func NewStore(config *Config) (Store, error) {
	switch config.Backend {
	case "json", "":
		return NewJSONStore(config.Path)
	case "sqlite":
		return NewSQLiteStore(config.Path)
	default:
		return nil, fmt.Errorf("unknown memory backend: %s (supported: json, sqlite)", config.Backend)
	}
}

// Key derives the unique cache key for a (text, language) pair. The text
// is trimmed and lowercased before hashing so trivially different
// spellings of the same cell share one entry; the language identifier is
// kept verbatim, which keeps regional variants like "French (Canada)"
// and "French (France)" distinct.
func Key(text, language string) string {
	normalized := strings.ToLower(strings.TrimSpace(text))
	sum := md5.Sum([]byte(normalized + ":" + language))
	return hex.EncodeToString(sum[:])
}
