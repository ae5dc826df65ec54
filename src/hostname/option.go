// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import "time"

// CheckerOption is a functional option for configuring a [Checker].
type CheckerOption func(*Checker)

// WithPolicy sets the validation policy.
// The default is [DefaultPolicy].
func WithPolicy(p Policy) CheckerOption {
	return func(c *Checker) {
		c.policy = p
	}
}

// SetPolicy replaces the policy of a running [Checker].
// It is safe to call concurrently with [Checker.Check] and
// [Checker.CheckOne].
//
// The change takes effect for candidates validated after this call
// returns; a batch already in flight keeps the policy it started with.
// Cached results are keyed by policy, so entries from the previous
// policy are never served under the new one.
//
// Relax the policy at runtime:
//
//	c.SetPolicy(hostname.NewPolicy(hostname.WithAllowUnderscore(true)))
func (c *Checker) SetPolicy(p Policy) {
	c.mu.Lock()
	c.policy = p
	c.mu.Unlock()
}

// WithConcurrency sets the maximum number of candidates validated
// concurrently by [Checker.Check].
// The default is 100.
func WithConcurrency(n int) CheckerOption {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithCache sets a custom [Cache] implementation.
// By default, the checker uses an in-memory cache with a 5-minute TTL.
//
// Pass nil to disable caching entirely.
func WithCache(cache Cache) CheckerOption {
	return func(c *Checker) {
		c.cache = cache
		c.cacheSet = true
	}
}

// WithCacheTTL sets the TTL for the built-in in-memory cache.
// This has no effect if a custom cache is set via [WithCache].
// The default is 5 minutes.
func WithCacheTTL(d time.Duration) CheckerOption {
	return func(c *Checker) {
		if d > 0 {
			c.cacheTTL = d
		}
	}
}
