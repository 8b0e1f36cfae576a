package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pinereel/pinereel/internal/model"
)

// Cache stores one JSON transcript record per video identifier. Entries are
// overwritten on re-fetch; there is no eviction.
type Cache struct {
	dir string
}

// NewCache creates a cache rooted at dir, creating it if needed.
func NewCache(dir string) (*Cache, error) {
	if dir == "" {
		return nil, fmt.Errorf("cache dir required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &Cache{dir: dir}, nil
}

// Dir returns the cache directory path.
func (c *Cache) Dir() string {
	return c.dir
}

func (c *Cache) entryPath(videoID string) string {
	return filepath.Join(c.dir, videoID+"_transcript.json")
}

// Get returns the cached record for videoID, if present.
func (c *Cache) Get(videoID string) (model.TranscriptRecord, bool) {
	var record model.TranscriptRecord

	data, err := os.ReadFile(c.entryPath(videoID)) // #nosec G304
	if err != nil {
		return record, false
	}
	if err := json.Unmarshal(data, &record); err != nil || record.Text == "" {
		// A corrupt entry is treated as a miss and overwritten on re-fetch.
		return model.TranscriptRecord{}, false
	}
	return record, true
}

// Put writes the record for videoID, replacing any existing entry.
func (c *Cache) Put(videoID string, record model.TranscriptRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal cache entry: %w", err)
	}
	if err := os.WriteFile(c.entryPath(videoID), data, 0o600); err != nil {
		return fmt.Errorf("write cache entry: %w", err)
	}
	return nil
}

// Clear removes every cached transcript and returns how many were deleted.
func (c *Cache) Clear() (int, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return 0, fmt.Errorf("read cache dir: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, entry.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}
