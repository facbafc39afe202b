package cache

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/zeebo/blake3"
)

// Cache stores analysis results on disk keyed by analysis name and
// validated against a snapshot fingerprint. A result is served only
// when the fingerprint of the snapshot it was computed from matches.
type Cache struct {
	dir     string
	ttl     time.Duration
	enabled bool
}

// Entry is one cached analysis result.
type Entry struct {
	Fingerprint string    `json:"fingerprint"`
	Timestamp   time.Time `json:"timestamp"`
	Data        []byte    `json:"data"`
}

// New creates a cache rooted at dir.
func New(dir string, ttlHours int, enabled bool) (*Cache, error) {
	if !enabled {
		return &Cache{enabled: false}, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &Cache{
		dir:     dir,
		ttl:     time.Duration(ttlHours) * time.Hour,
		enabled: true,
	}, nil
}

// HashBytes computes a BLAKE3 hash of bytes as a hex string.
func HashBytes(data []byte) string {
	hash := blake3.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Get returns the cached result for name if it was computed from a
// snapshot with the given fingerprint and has not expired.
func (c *Cache) Get(name, fingerprint string) ([]byte, bool) {
	if !c.enabled {
		return nil, false
	}

	path := c.entryPath(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if entry.Fingerprint != fingerprint {
		return nil, false
	}
	if time.Since(entry.Timestamp) > c.ttl {
		os.Remove(path)
		return nil, false
	}

	return entry.Data, true
}

// GetJSON unmarshals a cached result into out.
func (c *Cache) GetJSON(name, fingerprint string, out any) bool {
	data, ok := c.Get(name, fingerprint)
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// Set stores a result for name under the given snapshot fingerprint.
func (c *Cache) Set(name, fingerprint string, data []byte) error {
	if !c.enabled {
		return nil
	}

	entry := Entry{
		Fingerprint: fingerprint,
		Timestamp:   time.Now(),
		Data:        data,
	}

	entryData, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return os.WriteFile(c.entryPath(name), entryData, 0600)
}

// SetJSON marshals and stores a result.
func (c *Cache) SetJSON(name, fingerprint string, v any) error {
	if !c.enabled {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(name, fingerprint, data)
}

// Invalidate removes a cached result.
func (c *Cache) Invalidate(name string) error {
	if !c.enabled {
		return nil
	}
	return os.Remove(c.entryPath(name))
}

// Clear removes all cached results.
func (c *Cache) Clear() error {
	if !c.enabled {
		return nil
	}
	return os.RemoveAll(c.dir)
}

func (c *Cache) entryPath(name string) string {
	return filepath.Join(c.dir, HashBytes([]byte(name))+".json")
}
