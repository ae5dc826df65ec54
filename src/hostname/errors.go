// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"errors"
	"fmt"
)

// Sentinel errors for the hostname package.
//
// Every [*Error] returned by this package matches exactly one of the
// rejection sentinels through [errors.Is].
var (
	// ErrNotText is returned when the candidate is neither a string nor a byte slice.
	ErrNotText = errors.New("hostname: candidate is not text")

	// ErrNotASCII is returned when the candidate contains non-ASCII bytes
	// and the policy disallows IDNA.
	ErrNotASCII = errors.New("hostname: non-ASCII input with IDNA disallowed")

	// ErrDomainSyntax is returned when the DNS name parser rejects the candidate.
	ErrDomainSyntax = errors.New("hostname: DNS syntax error")

	// ErrEncoding is returned when IDNA conversion of a label fails.
	ErrEncoding = errors.New("hostname: IDNA encoding failed")

	// ErrNoLabel is returned when the candidate has no labels and the
	// policy does not allow empty names.
	ErrNoLabel = errors.New("hostname: no labels")

	// ErrBadHyphen is returned when a label starts or ends with a hyphen.
	ErrBadHyphen = errors.New("hostname: label starts or ends with a hyphen")

	// ErrUnderscore is returned when an underscore appears where it is not permitted.
	ErrUnderscore = errors.New("hostname: underscore not permitted")

	// ErrInvalidCharacter is returned for any other disallowed byte in a label.
	ErrInvalidCharacter = errors.New("hostname: invalid character")

	// ErrDigitOnly is returned when the rightmost label is entirely digits.
	ErrDigitOnly = errors.New("hostname: last label is all digits")

	// ErrConfiguration is returned when a policy is built from unknown or
	// contradictory options.
	ErrConfiguration = errors.New("hostname: invalid policy configuration")

	// ErrInternalPanic is returned when a panic is recovered inside [Checker.Check].
	ErrInternalPanic = errors.New("hostname: internal panic recovered")
)

// Kind identifies the rule that rejected a candidate.
type Kind uint8

// Kinds, one per sentinel error.
const (
	KindNone Kind = iota
	KindNotText
	KindNotASCII
	KindDomainSyntax
	KindEncoding
	KindNoLabel
	KindBadHyphen
	KindUnderscore
	KindInvalidCharacter
	KindDigitOnly
	KindConfiguration
)

var kindSentinels = [...]error{
	KindNotText:          ErrNotText,
	KindNotASCII:         ErrNotASCII,
	KindDomainSyntax:     ErrDomainSyntax,
	KindEncoding:         ErrEncoding,
	KindNoLabel:          ErrNoLabel,
	KindBadHyphen:        ErrBadHyphen,
	KindUnderscore:       ErrUnderscore,
	KindInvalidCharacter: ErrInvalidCharacter,
	KindDigitOnly:        ErrDigitOnly,
	KindConfiguration:    ErrConfiguration,
}

var kindNames = [...]string{
	KindNone:             "None",
	KindNotText:          "NotText",
	KindNotASCII:         "NotASCII",
	KindDomainSyntax:     "DomainSyntax",
	KindEncoding:         "Encoding",
	KindNoLabel:          "NoLabel",
	KindBadHyphen:        "BadHyphen",
	KindUnderscore:       "Underscore",
	KindInvalidCharacter: "InvalidCharacter",
	KindDigitOnly:        "DigitOnly",
	KindConfiguration:    "Configuration",
}

// String returns the kind name, e.g. "BadHyphen".
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Sentinel returns the package sentinel error for k, or nil for [KindNone]
// and unknown kinds.
func (k Kind) Sentinel() error {
	if int(k) < len(kindSentinels) {
		return kindSentinels[k]
	}
	return nil
}

// Error describes why a candidate was rejected.
//
// Label, Index and Char are diagnostics only; they are filled in when the
// failing rule is tied to a particular label or byte.
type Error struct {
	// Kind is the rule that failed.
	Kind Kind

	// Label is the offending label in its pre-encoding text form.
	Label string

	// Index is the zero-based position of Label, counted from the left.
	// It is -1 when no single label is at fault.
	Index int

	// Char is the offending byte for KindUnderscore and KindInvalidCharacter.
	Char byte

	// Err is the underlying parser, encoder or decoder diagnostic, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.Sentinel()
	if msg == nil {
		msg = errors.New("hostname: unknown failure")
	}

	switch {
	case e.Char != 0 && e.Label != "":
		return fmt.Sprintf("%v: %q in label %q", msg, e.Char, e.Label)
	case e.Label != "" && e.Err != nil:
		return fmt.Sprintf("%v: label %q: %v", msg, e.Label, e.Err)
	case e.Label != "":
		return fmt.Sprintf("%v: label %q", msg, e.Label)
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", msg, e.Err)
	}
	return msg.Error()
}

// Is reports whether target is the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.Sentinel()
	return s != nil && s == target
}

// Unwrap returns the underlying diagnostic.
func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the [Kind] carried by err, or [KindNone] when err is nil
// or was not produced by this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Kind
	}
	for k := KindNotText; k <= KindConfiguration; k++ {
		if errors.Is(err, k.Sentinel()) {
			return k
		}
	}
	return KindNone
}

func newError(kind Kind, err error) *Error {
	return &Error{Kind: kind, Index: -1, Err: err}
}
