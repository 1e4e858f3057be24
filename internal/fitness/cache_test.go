package fitness

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/AustinOrphan/training-plan-generator/internal/plan"
)

func cacheRuns(n int) []plan.RunRecord {
	var runs []plan.RunRecord
	start := time.Date(2026, time.January, 5, 7, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		runs = append(runs, plan.RunRecord{
			Date:            start.AddDate(0, 0, i*2),
			DistanceMeters:  8000,
			DurationSeconds: 2700,
		})
	}
	return runs
}

func TestFingerprint(t *testing.T) {
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	runs := cacheRuns(5)

	if Fingerprint(runs, asOf) != Fingerprint(runs, asOf) {
		t.Error("identical inputs produced different fingerprints")
	}
	if Fingerprint(runs, asOf) == Fingerprint(runs[:4], asOf) {
		t.Error("different run sets share a fingerprint")
	}
	if Fingerprint(runs, asOf) == Fingerprint(runs, asOf.AddDate(0, 0, 7)) {
		t.Error("different reference dates share a fingerprint")
	}

	flagged := append([]plan.RunRecord(nil), runs...)
	flagged[0].Race = true
	if Fingerprint(runs, asOf) == Fingerprint(flagged, asOf) {
		t.Error("changing a run's race flag should change the fingerprint")
	}
}

func TestCalculatorCacheHitMatchesRecompute(t *testing.T) {
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	runs := buildHistory(asOf)

	cached := NewCalculator(NewProfileCache(8, time.Hour))
	uncached := NewCalculator(nil)

	first := cached.Profile(runs, asOf)
	second := cached.Profile(runs, asOf) // served from cache
	direct := uncached.Profile(runs, asOf)

	if !reflect.DeepEqual(first, second) {
		t.Error("cache hit differs from original computation")
	}
	if !reflect.DeepEqual(second, direct) {
		t.Error("cached profile differs from a fresh computation")
	}
}

func TestProfileCacheEviction(t *testing.T) {
	cache := NewProfileCache(2, time.Hour)
	calc := NewCalculator(cache)
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	for n := 1; n <= 4; n++ {
		calc.Profile(cacheRuns(n), asOf)
	}
	if got := cache.Len(); got > 2 {
		t.Errorf("Len() = %d after four distinct inputs, want <= 2", got)
	}
}

func TestProfileCacheExpiry(t *testing.T) {
	cache := NewProfileCache(8, time.Minute)
	current := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return current }

	key := "k"
	cache.put(key, plan.FitnessProfile{VDOT: 50})

	if _, ok := cache.get(key); !ok {
		t.Fatal("fresh entry should hit")
	}

	current = current.Add(2 * time.Minute)
	if _, ok := cache.get(key); ok {
		t.Error("expired entry should miss")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, expired entry should be dropped", cache.Len())
	}
}

func TestProfileCacheClear(t *testing.T) {
	cache := NewProfileCache(8, time.Hour)
	for i := 0; i < 3; i++ {
		cache.put(fmt.Sprintf("k%d", i), plan.FitnessProfile{})
	}
	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() = %d after Clear, want 0", cache.Len())
	}
}

func TestCachedProfileDoesNotAliasCallerState(t *testing.T) {
	cache := NewProfileCache(8, time.Hour)
	calc := NewCalculator(cache)
	asOf := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

	first := calc.Profile(nil, asOf)
	if len(first.Defaulted) == 0 {
		t.Fatal("empty history should default several estimates")
	}
	first.Defaulted[0] = "mutated"

	second := calc.Profile(nil, asOf)
	if second.Defaulted[0] == "mutated" {
		t.Error("mutating a returned profile leaked into the cache")
	}
}
