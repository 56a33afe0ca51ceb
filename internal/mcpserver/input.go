package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oaspostman/parser"
)

// contentSourceName labels documents passed inline.
const contentSourceName = "<content>"

// specInput represents the three ways a document can be provided to a tool.
// Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a Swagger/OpenAPI file on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch a Swagger/OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline Swagger/OpenAPI document content (JSON or YAML)"`
}

// cacheEntry holds a parsed document with LRU ordering and TTL expiry.
type cacheEntry struct {
	doc       *parser.Document
	touchedAt time.Time
	expiresAt time.Time
}

// docCacheStore is a session-scoped cache of parsed documents. Documents are
// read-only after parsing, so a cached value is shared between tool calls.
type docCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &docCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a cached document or nil. Expired entries are lazily removed.
func (c *docCacheStore) get(key string) *parser.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	if time.Now().After(e.expiresAt) {
		delete(c.entries, key)
		return nil
	}
	e.touchedAt = time.Now()
	return e.doc
}

// put stores doc for ttl, evicting the least recently used entry at capacity.
func (c *docCacheStore) put(key string, doc *parser.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{doc: doc, touchedAt: now, expiresAt: now.Add(ttl)}
	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldest time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.touchedAt.Before(oldest) {
				oldestKey, oldest = k, e.touchedAt
			}
		}
		delete(c.entries, oldestKey)
	}
	c.entries[key] = entry
}

// sweep removes all expired entries.
func (c *docCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper removes expired entries every interval until ctx is done.
// Only the first call starts a goroutine.
func (c *docCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *docCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

func (c *docCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key and TTL for s, or "" when s is not cacheable.
// File keys include the modification time so edits invalidate the entry.
func (s specInput) cacheKey() (string, time.Duration) {
	switch {
	case s.File != "":
		abs, err := filepath.Abs(s.File)
		if err != nil {
			return "", 0
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", 0
		}
		return fmt.Sprintf("file:%s:%d", abs, info.ModTime().UnixNano()), cfg.CacheFileTTL
	case s.URL != "":
		return "url:" + s.URL, cfg.CacheURLTTL
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return "content:" + hex.EncodeToString(h[:]), cfg.CacheContentTTL
	default:
		return "", 0
	}
}

// resolve parses the document from whichever input was provided, consulting
// the cache first.
func (s specInput) resolve() (*parser.Document, error) {
	count := 0
	for _, v := range []string{s.File, s.URL, s.Content} {
		if v != "" {
			count++
		}
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASPOSTMAN_SERVE_MAX_BODY to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key, ttl = s.cacheKey()
	}
	if key != "" {
		if doc := docCache.get(key); doc != nil {
			return doc, nil
		}
	}

	var opts []parser.Option
	switch {
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	case s.URL != "":
		opts = append(opts, parser.WithFilePath(s.URL))
		if !cfg.AllowPrivateIPs {
			opts = append(opts, parser.WithHTTPClient(newSafeHTTPClient()))
		}
	default:
		opts = append(opts, parser.WithBytes([]byte(s.Content)), parser.WithSourceName(contentSourceName))
	}

	doc, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	if key != "" {
		docCache.put(key, doc, ttl)
	}
	return doc, nil
}
