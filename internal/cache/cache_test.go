package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	return store
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("expected %s to be created", dir)
	}

	if store.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", store.Dir(), dir)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	key := DeriveKey("https://www.nps.gov/state/mi/index.htm")
	content := []byte("<html><body>Michigan</body></html>")

	store.Store(key, content)

	got := store.Load(key, Exists)
	if !got.Hit {
		t.Fatal("Load() after Store() was a miss")
	}
	if string(got.Content) != string(content) {
		t.Errorf("Load() content = %q, want %q", got.Content, content)
	}
}

func TestStore_Overwrite(t *testing.T) {
	store := newTestStore(t)

	store.Store("page", []byte("first"))
	store.Store("page", []byte("second"))

	if got := store.Load("page", nil); string(got.Content) != "second" {
		t.Errorf("Load() content = %q, want second", got.Content)
	}
}

func TestStore_MissingEntry(t *testing.T) {
	store := newTestStore(t)

	got := store.Load("never-stored", Exists)
	if got.Hit {
		t.Error("Load() of missing key reported a hit")
	}
	if got.Content != nil {
		t.Errorf("Load() miss carried content %q", got.Content)
	}
}

func TestStore_WriteFailureIsSwallowed(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cache")
	store, err := New(dir)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	// Replace the directory with a plain file so every write fails
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, []byte("not a directory"), 0644); err != nil {
		t.Fatal(err)
	}

	store.Store("page", []byte("content"))

	if got := store.Load("page", Exists); got.Hit {
		t.Error("Load() after failed Store() reported a hit")
	}
}

func TestStore_StateDirectoryExactLength(t *testing.T) {
	store := newTestStore(t)
	snapshot := []byte(`{"michigan": "https://www.nps.gov/state/mi/index.htm"}`)

	store.Store(StateDirectoryKey, snapshot)

	if got := store.Load(StateDirectoryKey, ExactLength(len(snapshot))); !got.Hit {
		t.Error("expected hit when stored length matches")
	}

	if got := store.Load(StateDirectoryKey, ExactLength(len(snapshot)+1)); got.Hit {
		t.Error("expected miss when stored length differs")
	}
}

func TestStore_RemoveAndClear(t *testing.T) {
	store := newTestStore(t)

	a := DeriveKey("https://www.nps.gov/state/mi/index.htm")
	b := DeriveKey("https://www.nps.gov/isro/index.htm")
	store.Store(a, []byte("1"))
	store.Store(b, []byte("2"))
	store.Store(StateDirectoryKey, []byte("{}"))

	if err := store.Remove(a); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	if err := store.Remove(a); err != nil {
		t.Errorf("Remove() of missing key should not fail: %v", err)
	}
	if store.Load(a, nil).Hit {
		t.Error("removed entry still loads")
	}

	removed, err := store.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if removed != 2 {
		t.Errorf("Clear() removed %d, want 2", removed)
	}
	if store.Load(b, nil).Hit || store.Load(StateDirectoryKey, nil).Hit {
		t.Error("entries survived Clear()")
	}
}

func TestStore_ClearKeepsForeignFiles(t *testing.T) {
	store := newTestStore(t)

	foreign := filepath.Join(store.Dir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}
	store.Store(DeriveKey("https://www.nps.gov/index.htm"), []byte("<html></html>"))

	removed, err := store.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if removed != 1 {
		t.Errorf("Clear() removed %d, want 1", removed)
	}
	if _, err := os.Stat(foreign); err != nil {
		t.Errorf("Clear() deleted a file it did not write: %v", err)
	}
}

func TestOwned(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{StateDirectoryKey, true},
		{DeriveKey("https://www.nps.gov/index.htm"), true},
		{"notes.txt", false},
		{".bashrc", false},
		{"state_mi_htm", false},
	}

	for _, tt := range tests {
		if got := Owned(tt.name); got != tt.want {
			t.Errorf("Owned(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDeriveKey(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://www.nps.gov/index.htm", "https__www_nps_gov&index_htm"},
		{"https://www.nps.gov/state/mi/index.htm", "https__www_nps_gov&state&mi&index_htm"},
		{"http://127.0.0.1:8080/isro/index.htm", "http__127_0_0_1%3A8080&isro&index_htm"},
		{"https://www.nps.gov/search?q=dunes", "https__www_nps_gov&search%3Fq=dunes"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := DeriveKey(tt.url); got != tt.expected {
				t.Errorf("DeriveKey(%q) = %q, want %q", tt.url, got, tt.expected)
			}
		})
	}
}

func TestDeriveKey_Deterministic(t *testing.T) {
	urls := []string{
		"https://www.nps.gov/index.htm",
		"https://www.nps.gov/state/wy/index.htm",
		"https://www.nps.gov/yell/index.htm",
	}

	for _, u := range urls {
		first := DeriveKey(u)
		for i := 0; i < 3; i++ {
			if again := DeriveKey(u); again != first {
				t.Errorf("DeriveKey(%q) not deterministic: %q vs %q", u, first, again)
			}
		}
	}
}

func TestDeriveKey_FileSafe(t *testing.T) {
	urls := []string{
		"https://www.nps.gov/state/mi/index.htm",
		`http://host:1/a\b?c=*&d="e"<f>|g%20`,
	}

	keys := make(map[string]string)
	for _, u := range urls {
		key := DeriveKey(u)
		if strings.ContainsAny(key, `/\:?*"<>|`) {
			t.Errorf("DeriveKey(%q) = %q contains unsafe characters", u, key)
		}
		if prev, ok := keys[key]; ok {
			t.Errorf("DeriveKey collision between %q and %q", prev, u)
		}
		keys[key] = u
	}
}

func TestValidators(t *testing.T) {
	content := []byte("payload")
	sum := sha256.Sum256(content)
	fresh := Entry{Key: "k", Content: content, UpdatedAt: time.Now()}
	stale := Entry{Key: "k", Content: content, UpdatedAt: time.Now().Add(-48 * time.Hour)}

	tests := []struct {
		name  string
		valid Validator
		entry Entry
		want  bool
	}{
		{"exists accepts anything", Exists, Entry{}, true},
		{"exact length match", ExactLength(7), fresh, true},
		{"exact length mismatch", ExactLength(3311), fresh, false},
		{"max age fresh", MaxAge(24 * time.Hour), fresh, true},
		{"max age stale", MaxAge(24 * time.Hour), stale, false},
		{"content hash match", ContentHash(hex.EncodeToString(sum[:])), fresh, true},
		{"content hash upper case", ContentHash(strings.ToUpper(hex.EncodeToString(sum[:]))), fresh, true},
		{"content hash mismatch", ContentHash("00"), fresh, false},
		{"all accepts", All(Exists, MaxAge(time.Hour)), fresh, true},
		{"all rejects", All(Exists, MaxAge(time.Hour)), stale, false},
		{"all empty", All(), stale, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.valid(tt.entry); got != tt.want {
				t.Errorf("validator = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_ValidatorSeesModTime(t *testing.T) {
	store := newTestStore(t)
	store.Store("page", []byte("old"))

	old := time.Now().Add(-10 * 24 * time.Hour)
	if err := os.Chtimes(filepath.Join(store.Dir(), "page"), old, old); err != nil {
		t.Fatal(err)
	}

	if store.Load("page", MaxAge(7*24*time.Hour)).Hit {
		t.Error("expected stale entry to be a miss")
	}
	if !store.Load("page", Exists).Hit {
		t.Error("expected Exists to accept the stale entry")
	}
}
