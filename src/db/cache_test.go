package db

import "testing"

func TestSummaryCacheRoundTrip(t *testing.T) {
	InitCache()

	SetSummaryCache("u-1", "summary-1")
	// Ristretto admits writes asynchronously.
	Cache.Wait()

	got, ok := GetSummaryCache("u-1")
	if !ok || got != "summary-1" {
		t.Fatalf("GetSummaryCache = %v, %v; want summary-1, true", got, ok)
	}

	if _, ok := GetSummaryCache("u-2"); ok {
		t.Error("GetSummaryCache hit for a user never cached")
	}

	InvalidateSummary("u-1")
	Cache.Wait()
	if _, ok := GetSummaryCache("u-1"); ok {
		t.Error("GetSummaryCache hit after invalidation")
	}
}

func TestClearAllSummaryCaches(t *testing.T) {
	InitCache()

	SetSummaryCache("u-1", "summary-1")
	SetSummaryCache("u-2", "summary-2")
	Cache.Wait()

	ClearAllSummaryCaches()
	Cache.Wait()

	for _, id := range []string{"u-1", "u-2"} {
		if _, ok := GetSummaryCache(id); ok {
			t.Errorf("GetSummaryCache(%s) hit after clear", id)
		}
	}

	SummaryCacheKeys.RLock()
	n := len(SummaryCacheKeys.m)
	SummaryCacheKeys.RUnlock()
	if n != 0 {
		t.Errorf("key set has %d entries after clear, want 0", n)
	}
}
