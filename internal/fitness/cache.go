package fitness

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

// Fingerprint returns a content hash of a run set and reference date,
// the memoization key for profile derivation.
func Fingerprint(runs []plan.RunRecord, asOf time.Time) string {
	h := sha256.New()
	fmt.Fprintf(h, "asof=%s\n", asOf.UTC().Format("2006-01-02"))
	for _, r := range runs {
		fmt.Fprintf(h, "%s|%.1f|%d|%v|%v|%v|%v|%v|%v|%t\n",
			r.Date.UTC().Format(time.RFC3339),
			r.DistanceMeters, r.DurationSeconds,
			floatOrNil(r.AvgPaceSecPerKm), floatOrNil(r.AvgHeartrate),
			floatOrNil(r.MaxHeartrate), floatOrNil(r.ElevationGain),
			intOrNil(r.PerceivedEffort), floatOrNil(r.TemperatureC),
			r.Race)
	}
	return hex.EncodeToString(h.Sum(nil))
}

func floatOrNil(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

type cacheEntry struct {
	profile  plan.FitnessProfile
	storedAt time.Time
}

// ProfileCache memoizes derived profiles by run-set fingerprint. Entries
// expire after maxAge and the oldest entry is evicted once maxEntries is
// exceeded. Safe for concurrent use.
type ProfileCache struct {
	mu         sync.Mutex
	entries    map[string]cacheEntry
	maxEntries int
	maxAge     time.Duration

	now func() time.Time
}

// Cache sizing defaults applied when the limits are not positive.
const (
	DefaultCacheEntries = 64
	DefaultCacheAge     = time.Hour
)

// NewProfileCache builds a bounded cache. Non-positive limits take the
// package defaults.
func NewProfileCache(maxEntries int, maxAge time.Duration) *ProfileCache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheEntries
	}
	if maxAge <= 0 {
		maxAge = DefaultCacheAge
	}
	return &ProfileCache{
		entries:    make(map[string]cacheEntry),
		maxEntries: maxEntries,
		maxAge:     maxAge,
		now:        time.Now,
	}
}

func (c *ProfileCache) get(key string) (plan.FitnessProfile, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return plan.FitnessProfile{}, false
	}
	if c.now().Sub(e.storedAt) > c.maxAge {
		delete(c.entries, key)
		return plan.FitnessProfile{}, false
	}
	return cloneProfile(e.profile), true
}

func (c *ProfileCache) put(key string, p plan.FitnessProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{profile: cloneProfile(p), storedAt: c.now()}
}

// evictOldestLocked removes the entry with the earliest store time. Caller
// holds the mutex.
func (c *ProfileCache) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.storedAt.Before(oldest) {
			oldestKey, oldest = k, e.storedAt
			first = false
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Len reports the number of live entries.
func (c *ProfileCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache.
func (c *ProfileCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

// cloneProfile copies the profile so cached values never alias caller state.
func cloneProfile(p plan.FitnessProfile) plan.FitnessProfile {
	out := p
	if p.Defaulted != nil {
		out.Defaulted = append([]string(nil), p.Defaulted...)
	}
	return out
}

// Calculator derives fitness profiles, optionally memoizing through a
// ProfileCache. A nil cache recomputes every call; a cache hit is
// indistinguishable from a recompute.
type Calculator struct {
	cache *ProfileCache
}

// NewCalculator wraps profile estimation with the given cache, which may be
// nil to disable memoization.
func NewCalculator(cache *ProfileCache) *Calculator {
	return &Calculator{cache: cache}
}

// Profile returns the fitness profile for a run history as of a date.
func (c *Calculator) Profile(runs []plan.RunRecord, asOf time.Time) plan.FitnessProfile {
	if c.cache == nil {
		return EstimateProfile(runs, asOf)
	}
	key := Fingerprint(runs, asOf)
	if p, ok := c.cache.get(key); ok {
		return p
	}
	p := EstimateProfile(runs, asOf)
	c.cache.put(key, p)
	return p
}
