// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

// Result represents the outcome of validating a single candidate
// with a [Checker].
type Result struct {
	// Candidate is the input exactly as it was passed to the checker.
	Candidate string

	// Hostname is the canonical hostname. It is only meaningful when
	// Valid is true.
	Hostname Hostname

	// Valid indicates whether the candidate passed validation.
	Valid bool

	// Error is the rejection reason when Valid is false. Use [KindOf]
	// or [errors.Is] with the package sentinels to classify it.
	// It may also carry a context error or [ErrInternalPanic].
	Error error
}

// Kind returns the rejection kind of r, or [KindNone] for valid results.
func (r Result) Kind() Kind {
	return KindOf(r.Error)
}
