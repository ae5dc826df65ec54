// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package hostname

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/net/idna"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

// labelProfile converts a single non-ASCII label to its A-label.
//
// ASCII rules (hyphen placement, underscores, other punctuation) are left
// to the validator so that it can report which rule failed, hence the
// relaxed StrictDomainName and CheckHyphens settings. Options are applied
// in order; the last two override what MapForLookup enables.
var labelProfile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.VerifyDNSLength(true),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

// NormalizeLabel returns the ASCII-compatible form of a single label.
//
// Pure ASCII labels, including the empty label, are returned unchanged with
// their case preserved. Any other label is converted with IDNA (UTS #46
// lookup mapping followed by punycode), producing an "xn--" A-label.
// Conversion failures are reported as an [*Error] of kind [KindEncoding]
// wrapping the idna diagnostic.
func NormalizeLabel(label string) (string, error) {
	if isASCII(label) {
		return label, nil
	}

	if !utf8.ValidString(label) {
		return "", &Error{Kind: KindEncoding, Label: label, Index: -1, Err: errInvalidUTF8}
	}

	ace, err := labelProfile.ToASCII(label)
	if err != nil {
		return "", &Error{Kind: KindEncoding, Label: label, Index: -1, Err: err}
	}
	return ace, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
