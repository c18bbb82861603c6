// Package cache provides an on-disk cache for vendor adapter API calls,
// mirroring the original Python crawler's @cachier-decorated Fetcher
// methods (pickled call results under ~/.cachier with a TTL). Instead of
// pickle, cache entries are stored as one JSON file per call, keyed by
// scutil.JSONHash of the call's arguments — following the teacher's
// PricingCache two-layer (in-memory + persistent) shape
// (internal/store/pricing_cache.go) but backed by plain files instead of
// SQLite, since a Fetcher result is an opaque payload, not a queryable row.
package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/sparecores/sc-crawler/pkg/scutil"
)

// Cache is a TTL'd, disk-backed cache of arbitrary JSON-serializable
// payloads. Get and Put are nil-safe: on a nil *Cache, Get always misses
// and Put is a no-op, so a disabled cache
// (config.CacheConfig.Enabled == false) can share the same call sites as
// an enabled one.
type Cache struct {
	dir string
	ttl time.Duration

	mu  sync.RWMutex
	mem map[string]entry
}

type entry struct {
	storedAt time.Time
	payload  json.RawMessage
}

// New builds a Cache rooted at dir with the given TTL. An empty dir
// disables on-disk persistence; entries still live in the in-memory layer
// for the lifetime of the process.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl, mem: make(map[string]entry)}
}

// Key hashes a call's arguments into a cache key via scutil.JSONHash,
// namespaced by a caller-supplied label (typically "<vendor>.<method>") so
// two adapters' calls with coincidentally-equal arguments never collide.
func Key(namespace string, args ...interface{}) string {
	return namespace + "-" + scutil.JSONHash(args)
}

// Get looks up key, returning ok=false on a miss or an expired entry. On
// hit, out is populated via json.Unmarshal.
func (c *Cache) Get(key string, out interface{}) (ok bool) {
	if c == nil {
		return false
	}

	c.mu.RLock()
	e, found := c.mem[key]
	c.mu.RUnlock()

	if !found {
		raw, storedAt, err := c.readFile(key)
		if err != nil {
			return false
		}
		e = entry{storedAt: storedAt, payload: raw}
		c.mu.Lock()
		c.mem[key] = e
		c.mu.Unlock()
	}

	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		return false
	}
	if err := json.Unmarshal(e.payload, out); err != nil {
		return false
	}
	return true
}

// Put stores v under key, both in memory and (if Dir is set) on disk.
func (c *Cache) Put(key string, v interface{}) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache: marshaling value for %s: %w", key, err)
	}
	now := time.Now()

	c.mu.Lock()
	c.mem[key] = entry{storedAt: now, payload: raw}
	c.mu.Unlock()

	if c.dir == "" {
		return nil
	}
	return c.writeFile(key, raw, now)
}

// Do wraps a single network call with the cache: on a hit it decodes the
// cached payload into T; on a miss it calls fetch, caches a successful
// result, and returns it uncached on error (errors are never cached, so a
// transient vendor API failure doesn't poison the cache for ttl).
func Do[T any](c *Cache, key string, fetch func() (T, error)) (T, error) {
	var cached T
	if c.Get(key, &cached) {
		return cached, nil
	}
	v, err := fetch()
	if err != nil {
		return v, err
	}
	if err := c.Put(key, v); err != nil {
		return v, err
	}
	return v, nil
}

type fileEnvelope struct {
	StoredAt time.Time       `json:"stored_at"`
	Payload  json.RawMessage `json:"payload"`
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".json")
}

func (c *Cache) readFile(key string) (json.RawMessage, time.Time, error) {
	if c.dir == "" {
		return nil, time.Time{}, os.ErrNotExist
	}
	data, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, time.Time{}, err
	}
	var env fileEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, time.Time{}, err
	}
	return env.Payload, env.StoredAt, nil
}

func (c *Cache) writeFile(key string, raw json.RawMessage, storedAt time.Time) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("cache: creating cache dir %s: %w", c.dir, err)
	}
	env := fileEnvelope{StoredAt: storedAt, Payload: raw}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("cache: marshaling envelope for %s: %w", key, err)
	}
	tmp := c.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("cache: writing %s: %w", tmp, err)
	}
	return os.Rename(tmp, c.path(key))
}
