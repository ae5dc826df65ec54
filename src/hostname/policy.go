// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Policy option names recognized by [PolicyFromMap] and [LoadPolicy].
const (
	OptionAllowUnderscore = "allow_underscore"
	OptionAllowIDNA       = "allow_idna"
	OptionDenyIDNA        = "deny_idna"
	OptionAllowEmpty      = "allow_empty"
)

// Policy selects the non-default behaviour of the validator.
//
// The zero value is not the default policy; use [DefaultPolicy] or
// [NewPolicy]. A Policy is a plain value and is safe to share.
type Policy struct {
	// AllowUnderscore permits '_' in the leftmost label only.
	// This is non-standard; leave it off unless you must accept names
	// such as "_dmarc.example.com".
	AllowUnderscore bool

	// AllowIDNA permits non-ASCII input, which is converted to punycode.
	AllowIDNA bool

	// AllowEmpty makes a candidate without labels ("" or ".") valid.
	AllowEmpty bool
}

// DefaultPolicy returns the default policy: underscores rejected
// everywhere, IDNA allowed, empty names rejected.
func DefaultPolicy() Policy {
	return Policy{AllowIDNA: true}
}

// Option is a functional option for configuring a [Policy].
type Option func(*Policy)

// WithAllowUnderscore permits an underscore in the leftmost label.
func WithAllowUnderscore(allow bool) Option {
	return func(p *Policy) {
		p.AllowUnderscore = allow
	}
}

// WithAllowIDNA permits or forbids non-ASCII input.
// The default is to permit it.
func WithAllowIDNA(allow bool) Option {
	return func(p *Policy) {
		p.AllowIDNA = allow
	}
}

// WithDenyIDNA forbids non-ASCII input. It is shorthand for
// WithAllowIDNA(false).
func WithDenyIDNA() Option {
	return WithAllowIDNA(false)
}

// WithAllowEmpty makes a candidate with no labels validate successfully.
func WithAllowEmpty(allow bool) Option {
	return func(p *Policy) {
		p.AllowEmpty = allow
	}
}

// NewPolicy returns [DefaultPolicy] with opts applied in order.
//
//	p := hostname.NewPolicy(
//	    hostname.WithAllowUnderscore(true),
//	    hostname.WithDenyIDNA(),
//	)
func NewPolicy(opts ...Option) Policy {
	p := DefaultPolicy()
	for _, opt := range opts {
		if opt != nil {
			opt(&p)
		}
	}
	return p
}

// PolicyFromMap builds a policy from named boolean options, e.g. as parsed
// from a query string or a generic configuration map. Recognized names are
// [OptionAllowUnderscore], [OptionAllowIDNA], [OptionDenyIDNA] and
// [OptionAllowEmpty]; missing names keep their default.
//
// Unknown names, or allow_idna and deny_idna set to contradictory values,
// fail with an [*Error] of kind [KindConfiguration].
func PolicyFromMap(opts map[string]bool) (Policy, error) {
	var unknown []string
	for name := range opts {
		switch name {
		case OptionAllowUnderscore, OptionAllowIDNA, OptionDenyIDNA, OptionAllowEmpty:
		default:
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Policy{}, newError(KindConfiguration, fmt.Errorf("unknown option %q", unknown[0]))
	}

	var f policyFile
	if v, ok := opts[OptionAllowUnderscore]; ok {
		f.AllowUnderscore = &v
	}
	if v, ok := opts[OptionAllowIDNA]; ok {
		f.AllowIDNA = &v
	}
	if v, ok := opts[OptionDenyIDNA]; ok {
		f.DenyIDNA = &v
	}
	if v, ok := opts[OptionAllowEmpty]; ok {
		f.AllowEmpty = &v
	}
	return f.policy()
}

// LoadPolicy reads a policy from a YAML document such as:
//
//	allow_underscore: true
//	allow_idna: false
//	allow_empty: false
//
// Keys follow [PolicyFromMap]. Unknown keys are rejected rather than
// ignored. An empty document yields [DefaultPolicy].
func LoadPolicy(r io.Reader) (Policy, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f policyFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultPolicy(), nil
		}
		return Policy{}, newError(KindConfiguration, err)
	}
	return f.policy()
}

// Map returns the policy as named options, the inverse of [PolicyFromMap].
func (p Policy) Map() map[string]bool {
	return map[string]bool{
		OptionAllowUnderscore: p.AllowUnderscore,
		OptionAllowIDNA:       p.AllowIDNA,
		OptionAllowEmpty:      p.AllowEmpty,
	}
}

// String renders the policy for logs, e.g. "allow_underscore=false,allow_idna=true,allow_empty=false".
func (p Policy) String() string {
	return fmt.Sprintf("%s=%t,%s=%t,%s=%t",
		OptionAllowUnderscore, p.AllowUnderscore,
		OptionAllowIDNA, p.AllowIDNA,
		OptionAllowEmpty, p.AllowEmpty)
}

// key is a compact fingerprint used in cache keys.
func (p Policy) key() byte {
	var k byte
	if p.AllowUnderscore {
		k |= 1
	}
	if p.AllowIDNA {
		k |= 2
	}
	if p.AllowEmpty {
		k |= 4
	}
	return '0' + k
}

// policyFile mirrors the recognized option names. Pointers distinguish an
// absent key from an explicit false.
type policyFile struct {
	AllowUnderscore *bool `yaml:"allow_underscore"`
	AllowIDNA       *bool `yaml:"allow_idna"`
	DenyIDNA        *bool `yaml:"deny_idna"`
	AllowEmpty      *bool `yaml:"allow_empty"`
}

func (f policyFile) policy() (Policy, error) {
	p := DefaultPolicy()
	if f.AllowUnderscore != nil {
		p.AllowUnderscore = *f.AllowUnderscore
	}
	if f.AllowEmpty != nil {
		p.AllowEmpty = *f.AllowEmpty
	}

	switch {
	case f.AllowIDNA != nil && f.DenyIDNA != nil && *f.AllowIDNA == *f.DenyIDNA:
		return Policy{}, newError(KindConfiguration,
			fmt.Errorf("%s=%t contradicts %s=%t", OptionAllowIDNA, *f.AllowIDNA, OptionDenyIDNA, *f.DenyIDNA))
	case f.AllowIDNA != nil:
		p.AllowIDNA = *f.AllowIDNA
	case f.DenyIDNA != nil:
		p.AllowIDNA = !*f.DenyIDNA
	}
	return p, nil
}
