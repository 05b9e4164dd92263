package locator

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/LegacyCodeHQ/idegen/modinfo"
)

// ResolveModules resolves every module independently and returns one result
// per module. Modules share no mutable state, so resolution runs on a
// bounded worker pool; the outcome is identical to sequential resolution
// regardless of scheduling order.
func ResolveModules(modules map[string]modinfo.BuildModule, cfg Config) map[string]*Result {
	var mu sync.Mutex
	results := make(map[string]*Result, len(modules))

	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())

	for name, module := range modules {
		name, module := name, module
		g.Go(func() error {
			result := NewResolver(name, module, cfg).Locate()
			mu.Lock()
			results[name] = result
			mu.Unlock()
			return nil
		})
	}

	// Resolvers never fail; misses land in the result sets.
	_ = g.Wait()

	return results
}

// MergeResults unions per-module results into one aggregate, the shape a
// combined single-project layout consumes.
func MergeResults(results map[string]*Result) *Result {
	merged := NewResult()
	for _, result := range results {
		merged.Merge(result)
	}
	return merged
}
