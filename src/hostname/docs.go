// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package hostname validates Internet hostnames.
//
// A candidate is accepted when it is a syntactically valid DNS name whose
// labels follow the classic hostname rules (RFC 952, RFC 1123): ASCII
// letters, digits and hyphens only, no hyphen at either end of a label, and
// a rightmost label that is not entirely digits. Non-ASCII labels are
// converted to punycode (IDNA, RFC 5890) before the rules are applied.
//
// Parsing is delegated to [github.com/miekg/dns] through the dnsname
// package, and IDNA conversion to [golang.org/x/net/idna].
//
// # Quick Start
//
//	h, err := hostname.Validate("bücher.example")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(h) // xn--bcher-kva.example
//
//	ok := hostname.IsHostname("last.digits.123") // false
//
// # Policy
//
// The default policy rejects underscores, allows IDNA input and rejects
// empty names. Use options to change it:
//
//	p := hostname.NewPolicy(
//	    // Allow "_" in the leftmost label only, e.g. "_dmarc.example.com".
//	    hostname.WithAllowUnderscore(true),
//
//	    // Reject non-ASCII input instead of converting it to punycode.
//	    hostname.WithDenyIDNA(),
//
//	    // Accept "" and "." as the empty hostname.
//	    hostname.WithAllowEmpty(true),
//	)
//	h, err := p.Validate(candidate)
//
// Policies can also be built from named options, and unknown names are
// rejected with [ErrConfiguration]:
//
//	p, err := hostname.PolicyFromMap(map[string]bool{"allow_underscore": true})
//	p, err := hostname.LoadPolicy(file) // YAML with the same keys
//
// # Errors
//
// Every rejection is an [*Error] whose [Kind] names the rule that failed.
// Sentinel errors are provided for use with [errors.Is]:
//
//	var (
//	    ErrNotText          // candidate is neither string nor []byte
//	    ErrNotASCII         // non-ASCII input with IDNA disallowed
//	    ErrDomainSyntax     // rejected by the DNS name parser
//	    ErrEncoding         // IDNA conversion failed
//	    ErrNoLabel          // no labels and empty names disallowed
//	    ErrBadHyphen        // label starts or ends with '-'
//	    ErrUnderscore       // '_' where it is not permitted
//	    ErrInvalidCharacter // any other disallowed byte
//	    ErrDigitOnly        // rightmost label is all digits
//	    ErrConfiguration    // unknown or contradictory policy option
//	)
//
// # Bulk Checking
//
// [Checker] validates many candidates concurrently with caching:
//
//	c := hostname.New(hostname.WithConcurrency(16))
//	results, err := c.Check(ctx, "a.good.example", "-bad.example")
//
// Runnable examples are available in the examples/ directory of the
// repository.
package hostname
