package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	tt "github.com/gnolang/simplint/internal/types"
)

const (
	cacheFileName = "simplint_cache.mp"
	// cacheSchemaVersion must change whenever the cached issue format or the
	// rules producing it change.
	cacheSchemaVersion uint16 = 1

	defaultCacheMaxAge = 24 * time.Hour
)

type CacheEntry struct {
	ContentHash  string
	Issues       []tt.Issue
	CreatedAt    time.Time
	LastAccessed time.Time
}

type cachePayload struct {
	Schema           uint16
	Entries          map[string]CacheEntry
	DependencyHashes map[string]string
}

// Cache stores the issues of files by content hash. Dependency files, such
// as the configuration, invalidate every entry when they change.
type Cache struct {
	CacheDir         string
	entries          map[string]CacheEntry
	mutex            sync.RWMutex
	maxAge           time.Duration
	dependencyFiles  []string
	dependencyHashes map[string]string
}

func NewCache(cacheDir string) (*Cache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cache := &Cache{
		CacheDir:         cacheDir,
		entries:          make(map[string]CacheEntry),
		maxAge:           defaultCacheMaxAge,
		dependencyHashes: make(map[string]string),
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

func (c *Cache) path() string {
	return filepath.Join(c.CacheDir, cacheFileName)
}

func (c *Cache) load() error {
	file, err := os.Open(c.path())
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	var payload cachePayload
	if err := msgpack.NewDecoder(file).Decode(&payload); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	if payload.Schema != cacheSchemaVersion {
		// stale format, start over
		return nil
	}
	if payload.Entries != nil {
		c.entries = payload.Entries
	}
	if payload.DependencyHashes != nil {
		c.dependencyHashes = payload.DependencyHashes
	}
	return nil
}

// save writes the cache atomically. The caller holds the lock.
func (c *Cache) save() error {
	f, err := os.CreateTemp(c.CacheDir, "tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer os.Remove(f.Name())

	payload := cachePayload{
		Schema:           cacheSchemaVersion,
		Entries:          c.entries,
		DependencyHashes: c.dependencyHashes,
	}
	if err := msgpack.NewEncoder(f).Encode(&payload); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return os.Rename(f.Name(), c.path())
}

// Set stores the issues found in filename, whose content was content.
func (c *Cache) Set(filename string, content []byte, issues []tt.Issue) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	c.entries[filename] = CacheEntry{
		ContentHash:  hashContent(content),
		Issues:       issues,
		CreatedAt:    now,
		LastAccessed: now,
	}

	return c.save()
}

// Get returns the cached issues of filename if its content is unchanged.
func (c *Cache) Get(filename string, content []byte) ([]tt.Issue, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists {
		return nil, false
	}

	if c.isEntryInvalid(content, entry) {
		delete(c.entries, filename)
		return nil, false
	}

	entry.LastAccessed = time.Now()
	c.entries[filename] = entry

	return entry.Issues, true
}

func (c *Cache) isEntryInvalid(content []byte, entry CacheEntry) bool {
	if c.maxAge > 0 && time.Since(entry.CreatedAt) > c.maxAge {
		return true
	}
	return entry.ContentHash != hashContent(content)
}

// SetDependencies registers files whose change invalidates the whole
// cache. Changed dependencies drop every entry immediately.
func (c *Cache) SetDependencies(files ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.dependencyFiles = files
	hashes := make(map[string]string, len(files))
	for _, file := range files {
		hash, err := getFileHash(file)
		if err != nil {
			return fmt.Errorf("failed to get hash for %s: %w", file, err)
		}
		hashes[file] = hash
	}

	if !sameHashes(hashes, c.dependencyHashes) {
		c.entries = make(map[string]CacheEntry)
	}
	c.dependencyHashes = hashes
	return c.save()
}

func sameHashes(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if b[k] != v {
			return false
		}
	}
	return true
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

func (c *Cache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	return len(c.entries)
}

func (c *Cache) InvalidateAll() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry)
	_ = c.save() // manual operation, a stale file is rebuilt on next save
}

func hashContent(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func getFileHash(filename string) (string, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return hashContent(content), nil
}
