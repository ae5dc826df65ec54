// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/hostname-checker/src/hostname"
)

func TestDefaultPolicy(t *testing.T) {
	p := hostname.DefaultPolicy()
	assert.False(t, p.AllowUnderscore)
	assert.True(t, p.AllowIDNA)
	assert.False(t, p.AllowEmpty)
	assert.Equal(t, p, hostname.NewPolicy())
}

func TestNewPolicyOptions(t *testing.T) {
	p := hostname.NewPolicy(
		hostname.WithAllowUnderscore(true),
		hostname.WithDenyIDNA(),
		hostname.WithAllowEmpty(true),
		nil,
	)
	assert.Equal(t, hostname.Policy{AllowUnderscore: true, AllowIDNA: false, AllowEmpty: true}, p)

	// Later options win.
	p = hostname.NewPolicy(hostname.WithDenyIDNA(), hostname.WithAllowIDNA(true))
	assert.True(t, p.AllowIDNA)
}

func TestPolicyFromMap(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]bool
		want hostname.Policy
	}{
		{"nil map", nil, hostname.DefaultPolicy()},
		{"allow underscore", map[string]bool{"allow_underscore": true}, hostname.Policy{AllowUnderscore: true, AllowIDNA: true}},
		{"allow idna false", map[string]bool{"allow_idna": false}, hostname.Policy{}},
		{"deny idna", map[string]bool{"deny_idna": true}, hostname.Policy{}},
		{"deny idna false", map[string]bool{"deny_idna": false}, hostname.DefaultPolicy()},
		{"consistent pair", map[string]bool{"allow_idna": false, "deny_idna": true}, hostname.Policy{}},
		{"allow empty", map[string]bool{"allow_empty": true}, hostname.Policy{AllowIDNA: true, AllowEmpty: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostname.PolicyFromMap(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPolicyFromMapRejects(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]bool
		msg  string
	}{
		{"unknown option", map[string]bool{"allow_spaces": true}, "allow_spaces"},
		{"typo", map[string]bool{"allow_underscores": true, "allow_empty": true}, "allow_underscores"},
		{"contradiction", map[string]bool{"allow_idna": true, "deny_idna": true}, "contradicts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hostname.PolicyFromMap(tt.in)
			require.ErrorIs(t, err, hostname.ErrConfiguration)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestPolicyMapRoundTrip(t *testing.T) {
	p := hostname.NewPolicy(hostname.WithAllowUnderscore(true), hostname.WithAllowEmpty(true))
	got, err := hostname.PolicyFromMap(p.Map())
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestLoadPolicy(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want hostname.Policy
	}{
		{"empty document", "", hostname.DefaultPolicy()},
		{"all keys", "allow_underscore: true\nallow_idna: false\nallow_empty: true\n", hostname.Policy{AllowUnderscore: true, AllowEmpty: true}},
		{"deny idna", "deny_idna: true\n", hostname.Policy{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := hostname.LoadPolicy(strings.NewReader(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadPolicyRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown key", "allow_spaces: true\n"},
		{"wrong type", "allow_underscore: maybe\n"},
		{"contradiction", "allow_idna: true\ndeny_idna: true\n"},
		{"not a mapping", "- allow_underscore\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hostname.LoadPolicy(strings.NewReader(tt.doc))
			require.ErrorIs(t, err, hostname.ErrConfiguration)
			assert.Equal(t, hostname.KindConfiguration, hostname.KindOf(err))
		})
	}
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "allow_underscore=false,allow_idna=true,allow_empty=false", hostname.DefaultPolicy().String())
}
