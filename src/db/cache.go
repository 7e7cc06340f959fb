package db

import (
	"log"
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Computed dashboard summaries are cached per user and dropped whenever a
// write lands on any table the summary reads from. Cache keys are tracked
// in a separate set so an admin wipe can clear every summary at once.
var (
	Cache            *ristretto.Cache
	SummaryCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

func InitCache() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func summaryCacheKey(userID string) string {
	return "dashboard_summary:" + userID
}

func SetSummaryCache(userID string, value interface{}) {
	key := summaryCacheKey(userID)
	SummaryCacheKeys.Lock()
	SummaryCacheKeys.m[key] = struct{}{}
	SummaryCacheKeys.Unlock()
	Cache.Set(key, value, 1)
}

func GetSummaryCache(userID string) (interface{}, bool) {
	return Cache.Get(summaryCacheKey(userID))
}

// InvalidateSummary drops a user's cached summary after a transaction,
// notification, or reminder write.
func InvalidateSummary(userID string) {
	key := summaryCacheKey(userID)
	SummaryCacheKeys.Lock()
	delete(SummaryCacheKeys.m, key)
	SummaryCacheKeys.Unlock()
	Cache.Del(key)
}

func ClearAllSummaryCaches() {
	SummaryCacheKeys.Lock()
	for key := range SummaryCacheKeys.m {
		Cache.Del(key)
	}
	SummaryCacheKeys.m = make(map[string]struct{})
	SummaryCacheKeys.Unlock()
}
