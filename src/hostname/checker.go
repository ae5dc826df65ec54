// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Default configuration values.
const (
	defaultConcurrency = 100
	defaultCacheTTL    = 5 * time.Minute
)

// Checker validates batches of candidates concurrently under a shared,
// hot-swappable [Policy], memoizing results in a [Cache].
//
// Validation itself is pure; Checker only adds fan-out, caching and panic
// isolation for callers that process large lists, such as the hostcheck
// command.
type Checker struct {
	mu          sync.RWMutex
	policy      Policy
	concurrency int
	cache       Cache
	cacheSet    bool
	cacheTTL    time.Duration
}

// New creates a new [Checker] using [DefaultPolicy]. Use functional
// options to customize behavior.
//
//	// Default configuration:
//	c := hostname.New()
//
//	// Custom configuration:
//	c := hostname.New(
//	    hostname.WithPolicy(hostname.NewPolicy(hostname.WithDenyIDNA())),
//	    hostname.WithConcurrency(8),
//	)
func New(opts ...CheckerOption) *Checker {
	c := &Checker{
		policy:      DefaultPolicy(),
		concurrency: defaultConcurrency,
		cacheTTL:    defaultCacheTTL,
	}

	for _, opt := range opts {
		opt(c)
	}

	// Initialize cache unless WithCache was used, even with nil.
	if !c.cacheSet {
		c.cache = newMemoryCache(c.cacheTTL)
	}

	return c
}

// Policy returns the policy currently in effect.
func (c *Checker) Policy() Policy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.policy
}

// Check validates multiple candidates concurrently and returns a [Result]
// for each, in input order.
//
// If ctx is cancelled before every candidate has been scheduled, the
// remaining results carry ctx.Err() and Check returns that error after
// in-flight validations finish.
func (c *Checker) Check(ctx context.Context, candidates ...string) ([]Result, error) {
	policy := c.Policy()
	results := make([]Result, len(candidates))
	var wg sync.WaitGroup

	// Semaphore to limit concurrency.
	sem := make(chan struct{}, c.concurrency)

Loop:
	for i, candidate := range candidates {
		select {
		case <-ctx.Done():
			for j := i; j < len(candidates); j++ {
				results[j] = Result{
					Candidate: candidates[j],
					Error:     ctx.Err(),
				}
			}
			// Stop spawning; active goroutines are still awaited below.
			break Loop
		default:
		}

		wg.Add(1)
		sem <- struct{}{}

		go func(idx int, s string) {
			defer wg.Done()
			defer func() { <-sem }() // Release semaphore
			defer func() {
				if r := recover(); r != nil {
					results[idx] = Result{
						Candidate: s,
						Error:     fmt.Errorf("%w: %v", ErrInternalPanic, r),
					}
				}
			}()

			results[idx] = c.checkSingle(policy, s)
		}(i, candidate)
	}

	wg.Wait()
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, nil
}

// CheckOne validates a single candidate under the current policy.
// This is a convenience wrapper that bypasses the worker pool.
func (c *Checker) CheckOne(candidate string) Result {
	return c.checkSingle(c.Policy(), candidate)
}

// FlushCache clears all cached validation results.
func (c *Checker) FlushCache() {
	if c.cache != nil {
		c.cache.Flush()
	}
}

// checkSingle validates one candidate, consulting the cache first.
func (c *Checker) checkSingle(policy Policy, candidate string) Result {
	key := cacheKey(policy, candidate)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			return cached
		}
	}

	h, err := policy.Validate(candidate)
	result := Result{
		Candidate: candidate,
		Hostname:  h,
		Valid:     err == nil,
		Error:     err,
	}

	if c.cache != nil {
		c.cache.Set(key, result)
	}
	return result
}
