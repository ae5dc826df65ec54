// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicCache is a Cache implementation that panics on Get.
type panicCache struct{}

func (c *panicCache) Get(key string) (Result, bool) {
	panic("cache panic")
}

func (c *panicCache) Set(key string, result Result) {
	// No-op
}

func (c *panicCache) Flush() {
	// No-op
}

func TestCheckPanicRecovery(t *testing.T) {
	c := New(WithCache(&panicCache{}))

	results, err := c.Check(context.Background(), "a.good.example", "b.good.example")

	// The batch itself succeeds; each poisoned candidate carries the panic.
	require.NoError(t, err)
	require.Len(t, results, 2)

	for i, r := range results {
		assert.False(t, r.Valid, "result[%d]", i)
		assert.True(t, errors.Is(r.Error, ErrInternalPanic), "expected ErrInternalPanic, got: %v", r.Error)
		assert.Equal(t, KindNone, r.Kind(), "a recovered panic is not a validation failure")
	}
}

func TestCheckContextCancellationEarly(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	candidates := []string{"a.example", "b.example", "c.example"}
	results, err := c.Check(ctx, candidates...)

	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, candidates[i], r.Candidate)
		assert.ErrorIs(t, r.Error, context.Canceled, "result[%d]", i)
	}
}
