// Package cache provides a small, generic, thread-safe LRU (Least Recently
// Used) memo used to keep the results of expensive, deterministic
// compilations: regular expressions supplied at call time and date layouts
// translated from pattern strings.
//
// The memo is bounded. When it reaches capacity the least recently used entry
// is dropped, so callers that feed it arbitrary user input cannot grow it
// without limit.
//
// # Usage
//
//	patterns := cache.New[string, *regexp.Regexp](256)
//
//	re := patterns.GetOrLoad(expr, func(expr string) *regexp.Regexp {
//		compiled, err := regexp.Compile(expr)
//		if err != nil {
//			return nil // remembered as "invalid"
//		}
//		return compiled
//	})
//
// Loaders must be pure: the same key always yields the same value. A loader
// may run more than once for a key when several goroutines miss at the same
// time; the last stored value wins, which is harmless for pure loaders.
//
// # Thread Safety
//
// All methods are safe for concurrent use. Loaders run outside the lock.
package cache
