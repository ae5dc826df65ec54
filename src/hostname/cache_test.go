// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := newMemoryCache(5 * time.Minute)

	// Miss on empty cache.
	_, ok := c.Get("miss")
	assert.False(t, ok, "expected miss on empty cache")

	// Set and hit.
	want := Result{Candidate: "a.good.example", Valid: true}
	c.Set("hit", want)

	got, ok := c.Get("hit")
	require.True(t, ok, "expected hit after Set")
	assert.Equal(t, want, got)
	assert.Equal(t, 1, c.Len())
}

func TestMemoryCacheExpiration(t *testing.T) {
	c := newMemoryCache(50 * time.Millisecond)

	c.Set("expiring", Result{Candidate: "test.example"})

	// Immediately should be a hit.
	_, ok := c.Get("expiring")
	require.True(t, ok, "expected hit before expiration")

	// Wait for expiration.
	time.Sleep(100 * time.Millisecond)

	_, ok = c.Get("expiring")
	assert.False(t, ok, "expected miss after expiration")

	// Verify the expired entry was lazily deleted.
	assert.Equal(t, 0, c.Len(), "expected expired entry to be lazily deleted")
}

func TestMemoryCacheFlush(t *testing.T) {
	c := newMemoryCache(5 * time.Minute)

	c.Set("a", Result{Candidate: "a.example"})
	c.Set("b", Result{Candidate: "b.example"})

	c.Flush()

	_, ok := c.Get("a")
	assert.False(t, ok, "expected miss after Flush for key 'a'")

	_, ok = c.Get("b")
	assert.False(t, ok, "expected miss after Flush for key 'b'")
}

func TestCacheKeySeparatesPolicies(t *testing.T) {
	seen := make(map[string]Policy)
	for _, u := range []bool{false, true} {
		for _, i := range []bool{false, true} {
			for _, e := range []bool{false, true} {
				p := Policy{AllowUnderscore: u, AllowIDNA: i, AllowEmpty: e}
				k := cacheKey(p, "a.example")
				prev, dup := seen[k]
				assert.False(t, dup, "policies %v and %v share key %q", prev, p, k)
				seen[k] = p
			}
		}
	}
}
