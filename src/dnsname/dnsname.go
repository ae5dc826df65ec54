// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package dnsname splits textual domain names into DNS labels.
//
// It is a thin layer over [github.com/miekg/dns]: the miekg parser decides
// where labels begin and end (honouring \. and \DDD escapes) and packs the
// name into wire format, which enforces the 63 octet label and 255 octet
// name limits. Labels containing non-ASCII text are handed to an [Encoder]
// before packing, so the limits apply to the ASCII-compatible form rather
// than to raw UTF-8.
package dnsname

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/miekg/dns"
)

const (
	// MaxLabelLength is the longest a single label may be in wire format.
	MaxLabelLength = 63

	// MaxNameLength is the longest a full name may be in wire format,
	// including length octets and the root label.
	MaxNameLength = 255
)

var (
	// ErrEmptyLabel is returned when a name contains an empty label other
	// than the trailing root label, e.g. "a..b" or ".a".
	ErrEmptyLabel = errors.New("dnsname: empty label")

	// ErrInvalidName is returned when miekg/dns refuses the name, which
	// covers oversize labels, oversize names and bad escapes.
	ErrInvalidName = errors.New("dnsname: invalid domain name")
)

// Encoder converts a non-ASCII label to its ASCII-compatible form.
// Errors returned by an Encoder are passed through [Parse] unchanged.
type Encoder func(label string) (string, error)

// Label is one component of a parsed name.
type Label struct {
	// Text is the label as it appeared in the input, escapes included.
	Text string

	// Wire holds the label octets after encoding and unescaping.
	Wire []byte

	// Encoded reports whether Text went through the Encoder.
	Encoded bool
}

// Name is a parsed domain name without its root label.
type Name struct {
	// Labels are ordered leftmost (most specific) first.
	Labels []Label

	// FQDN reports whether the input ended in an explicit root label.
	FQDN bool
}

// String joins the wire form of the labels with dots. The root label is
// not rendered.
func (n Name) String() string {
	var b strings.Builder
	for i, l := range n.Labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.Write(l.Wire)
	}
	return b.String()
}

// IsRoot reports whether the name has no labels besides the root.
func (n Name) IsRoot() bool {
	return len(n.Labels) == 0
}

// Parse splits s into labels. The empty string and "." both parse to the
// root name. A nil encode leaves non-ASCII labels as raw UTF-8.
func Parse(s string, encode Encoder) (Name, error) {
	if s == "" || s == "." {
		return Name{FQDN: s == "."}, nil
	}

	texts := dns.SplitDomainName(s)
	for _, t := range texts {
		if t == "" {
			return Name{}, fmt.Errorf("%w: %q", ErrEmptyLabel, s)
		}
	}

	labels := make([]Label, len(texts))
	ascii := make([]string, len(texts))
	for i, t := range texts {
		labels[i].Text = t
		ascii[i] = t
		if encode == nil || isASCII(t) {
			continue
		}
		enc, err := encode(t)
		if err != nil {
			return Name{}, err
		}
		ascii[i] = enc
		labels[i].Encoded = true
	}

	fqdn := strings.Join(ascii, ".") + "."
	if _, ok := dns.IsDomainName(fqdn); !ok {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, s)
	}

	wire, err := pack(fqdn)
	if err != nil {
		return Name{}, fmt.Errorf("%w: %q: %v", ErrInvalidName, s, err)
	}
	if len(wire) != len(labels) {
		// An encoder produced a dot, or an escape changed the label count.
		return Name{}, fmt.Errorf("%w: %q: label count changed after encoding", ErrInvalidName, s)
	}
	for i := range labels {
		labels[i].Wire = wire[i]
	}

	return Name{Labels: labels, FQDN: dns.IsFqdn(s)}, nil
}

// pack converts a fully qualified name to wire format and returns the
// octets of each label, root excluded.
func pack(fqdn string) ([][]byte, error) {
	buf := make([]byte, MaxNameLength+1)
	off, err := dns.PackDomainName(fqdn, buf, 0, nil, false)
	if err != nil {
		return nil, err
	}

	var labels [][]byte
	for i := 0; i < off; {
		n := int(buf[i])
		if n == 0 {
			break
		}
		if n > MaxLabelLength || i+1+n > off {
			return nil, fmt.Errorf("label length %d out of range", n)
		}
		label := make([]byte, n)
		copy(label, buf[i+1:i+1+n])
		labels = append(labels, label)
		i += 1 + n
	}
	return labels, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
