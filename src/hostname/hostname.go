// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"errors"
	"strings"

	"github.com/H0llyW00dzZ/hostname-checker/src/dnsname"
)

// Hostname is a validated hostname in canonical form: labels in their
// ASCII-compatible encoding joined by dots, without the root label.
type Hostname struct {
	name   string
	labels []string
	policy Policy
}

// String returns the canonical text form.
func (h Hostname) String() string {
	return h.name
}

// Labels returns a copy of the canonical labels, leftmost first.
func (h Hostname) Labels() []string {
	labels := make([]string, len(h.labels))
	copy(labels, h.labels)
	return labels
}

// Policy returns the policy the hostname was validated under.
func (h Hostname) Policy() Policy {
	return h.policy
}

// IsEmpty reports whether the hostname has no labels. This only happens
// under a policy with AllowEmpty set.
func (h Hostname) IsEmpty() bool {
	return len(h.labels) == 0
}

// Validate checks candidate against the default policy modified by opts.
// See [Policy.Validate].
func Validate(candidate any, opts ...Option) (Hostname, error) {
	return NewPolicy(opts...).Validate(candidate)
}

// IsHostname reports whether candidate is a valid hostname under the
// default policy modified by opts.
func IsHostname(candidate any, opts ...Option) bool {
	return NewPolicy(opts...).IsHostname(candidate)
}

// IsHostname reports whether [Policy.Validate] accepts candidate.
func (p Policy) IsHostname(candidate any) bool {
	_, err := p.Validate(candidate)
	return err == nil
}

// Validate reports whether candidate, a string or []byte, is a
// standards-compliant Internet hostname under p and returns its canonical
// form.
//
// Rules are applied in a fixed order and the first failure is returned as
// an [*Error]:
//
//  1. the candidate must be a string or []byte ([KindNotText]);
//  2. without AllowIDNA it must be pure ASCII ([KindNotASCII]);
//  3. it must parse as a DNS name ([KindDomainSyntax], or [KindEncoding]
//     when a non-ASCII label cannot be converted to punycode);
//  4. it must have at least one label besides the root, unless
//     AllowEmpty ([KindNoLabel]);
//  5. no label may begin or end with '-' ([KindBadHyphen]);
//  6. labels may contain only ASCII letters, digits and '-', plus '_' in
//     the leftmost label under AllowUnderscore ([KindUnderscore],
//     [KindInvalidCharacter]);
//  7. the rightmost label must not be all digits ([KindDigitOnly]).
func (p Policy) Validate(candidate any) (Hostname, error) {
	var s string
	switch c := candidate.(type) {
	case string:
		s = c
	case []byte:
		s = string(c)
	default:
		return Hostname{}, newError(KindNotText, nil)
	}

	if !p.AllowIDNA && !isASCII(s) {
		return Hostname{}, newError(KindNotASCII, nil)
	}

	name, err := dnsname.Parse(s, NormalizeLabel)
	if err != nil {
		var herr *Error
		if errors.As(err, &herr) {
			return Hostname{}, herr
		}
		return Hostname{}, newError(KindDomainSyntax, err)
	}

	if name.IsRoot() {
		if p.AllowEmpty {
			return Hostname{policy: p}, nil
		}
		return Hostname{}, newError(KindNoLabel, nil)
	}

	labels := make([]string, len(name.Labels))
	for i, label := range name.Labels {
		pos := position{index: i}
		if err := p.checkLabel(label, pos); err != nil {
			return Hostname{}, err
		}
		labels[i] = string(label.Wire)
	}

	last := name.Labels[len(name.Labels)-1]
	if allDigits(last.Wire) {
		return Hostname{}, &Error{Kind: KindDigitOnly, Label: last.Text, Index: len(name.Labels) - 1}
	}

	return Hostname{
		name:   strings.Join(labels, "."),
		labels: labels,
		policy: p,
	}, nil
}

// position locates a label within its name. Index 0 is the leftmost,
// most specific label.
type position struct {
	index int
}

func (pos position) first() bool { return pos.index == 0 }

// underscoreAllowed reports whether '_' is acceptable at pos. Only the
// leftmost label ever qualifies.
func (p Policy) underscoreAllowed(pos position) bool {
	return p.AllowUnderscore && pos.first()
}

// checkLabel applies the per-label rules to one parsed label.
func (p Policy) checkLabel(label dnsname.Label, pos position) error {
	wire := label.Wire
	if len(wire) == 0 {
		return &Error{Kind: KindNoLabel, Label: label.Text, Index: pos.index}
	}

	// The pre-encoding text is checked too: punycode turns "-ü" into an
	// A-label that starts with 'x'.
	if hasBoundaryHyphen(label.Text) || hasBoundaryHyphen(string(wire)) {
		return &Error{Kind: KindBadHyphen, Label: label.Text, Index: pos.index}
	}

	underscore := p.underscoreAllowed(pos)
	for _, c := range wire {
		switch {
		case isLDH(c):
		case c == '_' && underscore:
		case c == '_':
			return &Error{Kind: KindUnderscore, Label: label.Text, Index: pos.index, Char: c}
		default:
			return &Error{Kind: KindInvalidCharacter, Label: label.Text, Index: pos.index, Char: c}
		}
	}
	return nil
}

// isLDH reports whether c is an ASCII letter, digit or hyphen.
func isLDH(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return c == '-'
}

func hasBoundaryHyphen(s string) bool {
	return len(s) > 0 && (s[0] == '-' || s[len(s)-1] == '-')
}

func allDigits(b []byte) bool {
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(b) > 0
}
