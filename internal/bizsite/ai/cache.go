package ai

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// CacheEntry is the cached copy for one set of content params.
type CacheEntry struct {
	ContentHash string        `json:"contentHash"`
	Model       string        `json:"model"`
	Params      ContentParams `json:"params"`
	Content     string        `json:"content"`
	Timestamp   string        `json:"timestamp"`
}

// CacheKey identifies the copy for p produced by model.
func CacheKey(p ContentParams, model string) string {
	p.TargetWords = p.targetWords()
	data, _ := json.Marshal(struct {
		Model  string        `json:"model"`
		Params ContentParams `json:"params"`
	}{model, p})
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ReadCache reads a single cache file for the given key.
// Returns nil if the cache file doesn't exist or is invalid.
func ReadCache(cacheDir, key string) *CacheEntry {
	data, err := os.ReadFile(filepath.Join(cacheDir, key+".json"))
	if err != nil {
		return nil
	}
	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil || entry.ContentHash != key || entry.Content == "" {
		return nil
	}
	return &entry
}

// WriteCache stores entry under its content hash.
func WriteCache(cacheDir string, entry CacheEntry) error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return fmt.Errorf("creating cache dir %s: %w", cacheDir, err)
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return err
	}
	path := filepath.Join(cacheDir, entry.ContentHash+".json")
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing cache %s: %w", path, err)
	}
	return os.Rename(tmp, path)
}

// CachedGenerator serves copy from an on-disk cache and asks Inner only
// on a miss. Only successful, sanitized results are cached.
type CachedGenerator struct {
	Inner Generator
	Dir   string
	// Model is part of the cache key so switching models regenerates copy.
	Model  string
	Now    func() time.Time
	Logger *slog.Logger
}

// GenerateContent implements Generator.
func (c *CachedGenerator) GenerateContent(ctx context.Context, p ContentParams) (string, error) {
	key := CacheKey(p, c.Model)
	if entry := ReadCache(c.Dir, key); entry != nil {
		return entry.Content, nil
	}

	out, err := c.Inner.GenerateContent(ctx, p)
	if err != nil {
		return "", err
	}
	out = Sanitize(out, p.MaxWords())
	if out == "" {
		return "", nil
	}

	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if err := WriteCache(c.Dir, CacheEntry{
		ContentHash: key,
		Model:       c.Model,
		Params:      p,
		Content:     out,
		Timestamp:   now().UTC().Format(time.RFC3339),
	}); err != nil && c.Logger != nil {
		c.Logger.Warn("Caching AI copy failed", "error", err)
	}
	return out, nil
}
