package memory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestKey(t *testing.T) {
	if Key("Hello", "German") != Key("  hello  ", "German") {
		t.Error("Expected key to normalize case and surrounding whitespace")
	}

	if Key("Hello", "French (Canada)") == Key("Hello", "French (France)") {
		t.Error("Expected regional language variants to produce distinct keys")
	}

	if Key("Hello", "German") == Key("World", "German") {
		t.Error("Expected different texts to produce distinct keys")
	}
}

func TestNewStore_UnknownBackend(t *testing.T) {
	_, err := NewStore(&Config{Backend: "redis", Path: "x"})
	if err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestJSONStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	defer store.Close()

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", store.Len())
	}
}

func TestJSONStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Expected corrupt file to be tolerated, got: %v", err)
	}
	defer store.Close()

	if store.Len() != 0 {
		t.Errorf("Expected empty store after corrupt load, got %d entries", store.Len())
	}
}

func TestJSONStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}

	store.Put("Hello {NAME}", "Spanish (Spain)", "Hola {NAME}")
	store.Put("Goodbye", "Spanish (Spain)", "Adiós")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reloaded, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	defer reloaded.Close()

	if reloaded.Len() != 2 {
		t.Fatalf("Expected 2 entries after reload, got %d", reloaded.Len())
	}

	translation, ok := reloaded.Get("Hello {NAME}", "Spanish (Spain)")
	if !ok {
		t.Fatal("Expected cached translation after reload")
	}
	if translation != "Hola {NAME}" {
		t.Errorf("Expected 'Hola {NAME}', got %q", translation)
	}
}

func TestJSONStore_LastWriteWins(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	defer store.Close()

	store.Put("Hello", "German", "Hallo")
	store.Put("Hello", "German", "Hallo!")

	if store.Len() != 1 {
		t.Errorf("Expected 1 entry after duplicate Put, got %d", store.Len())
	}

	translation, _ := store.Get("Hello", "German")
	if translation != "Hallo!" {
		t.Errorf("Expected last write to win, got %q", translation)
	}
}

func TestJSONStore_RegionalVariantsAreDistinct(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	defer store.Close()

	store.Put("Hello", "French (Canada)", "Allô")

	if _, ok := store.Get("Hello", "French (France)"); ok {
		t.Error("French (France) lookup must not be satisfied by a French (Canada) entry")
	}
	if _, ok := store.Get("Hello", "French (Canada)"); !ok {
		t.Error("Expected French (Canada) entry to be found")
	}
}

func TestJSONStore_EmptyTextNeverCached(t *testing.T) {
	store, err := NewJSONStore(filepath.Join(t.TempDir(), "memory.json"))
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	defer store.Close()

	store.Put("", "German", "x")
	store.Put("   ", "German", "x")

	if store.Len() != 0 {
		t.Errorf("Expected no entries for blank text, got %d", store.Len())
	}
	if _, ok := store.Get("   ", "German"); ok {
		t.Error("Blank text must never produce a cache hit")
	}
}

func TestJSONStore_FlushIsIncremental(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}
	defer store.Close()

	// Clean store: nothing to write, file should not appear
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush of clean store failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Flush of a clean store should not create the file")
	}

	store.Put("Hello", "German", "Hallo")
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected memory file after flush: %v", err)
	}
}

func TestJSONStore_FlushFailureKeepsStoreUsable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.json")

	store, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("NewJSONStore failed: %v", err)
	}

	store.Put("Hello", "German", "Hallo")

	// Turn the target path into a directory so the write cannot succeed
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	if err := store.Flush(); err == nil {
		t.Fatal("Expected Flush to report the write failure")
	}

	// The in-memory entries must survive a failed flush
	translation, ok := store.Get("Hello", "German")
	if !ok || translation != "Hallo" {
		t.Errorf("Expected entry to stay usable after failed flush, got %q (found=%v)", translation, ok)
	}

	store.Put("Goodbye", "German", "Tschüss")
	if store.Len() != 2 {
		t.Errorf("Expected store to keep accepting entries, got %d", store.Len())
	}

	// Once the path is writable again, the retained entries flush fine
	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush after recovery failed: %v", err)
	}

	reloaded, err := NewJSONStore(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	defer reloaded.Close()

	if reloaded.Len() != 2 {
		t.Errorf("Expected both entries persisted after recovery, got %d", reloaded.Len())
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	store.Put("Hello {NAME}", "Spanish (Spain)", "Hola {NAME}")
	store.Put("Hello {NAME}", "French (France)", "Bonjour {NAME}")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reloaded, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	defer reloaded.Close()

	if reloaded.Len() != 2 {
		t.Fatalf("Expected 2 entries after reload, got %d", reloaded.Len())
	}

	translation, ok := reloaded.Get("Hello {NAME}", "French (France)")
	if !ok || translation != "Bonjour {NAME}" {
		t.Errorf("Expected 'Bonjour {NAME}', got %q (found=%v)", translation, ok)
	}
}

func TestSQLiteStore_CorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")
	if err := os.WriteFile(path, []byte("this is not a sqlite database at all"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("Expected corrupt database to be replaced, got: %v", err)
	}
	defer store.Close()

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d entries", store.Len())
	}
}

func TestSQLiteStore_UpsertOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memory.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	store.Put("Hello", "German", "Hallo")
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	store.Put("Hello", "German", "Servus")
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reloaded, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	defer reloaded.Close()

	translation, _ := reloaded.Get("Hello", "German")
	if translation != "Servus" {
		t.Errorf("Expected overwritten value 'Servus', got %q", translation)
	}
}
