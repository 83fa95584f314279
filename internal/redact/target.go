// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"fmt"

	"bill-redactor/internal/detector"
	"bill-redactor/internal/matchers/account"
	"bill-redactor/internal/matchers/calldetail"
	"bill-redactor/internal/matchers/pattern"
	"bill-redactor/internal/matchers/phone"
)

// TargetKind selects which matcher a target runs
type TargetKind int

const (
	// TargetLiteral removes exact occurrences of a caller-supplied string
	TargetLiteral TargetKind = iota

	// TargetRegex removes matches of a caller-supplied regex pattern
	TargetRegex

	// TargetPhoneNumbers removes NANP phone numbers
	TargetPhoneNumbers

	// TargetAccount removes structured account numbers
	TargetAccount

	// TargetCallDetails removes call-record time and location columns
	TargetCallDetails
)

// String returns the string representation of the target kind
func (k TargetKind) String() string {
	switch k {
	case TargetLiteral:
		return "literal"
	case TargetRegex:
		return "regex"
	case TargetPhoneNumbers:
		return "phones"
	case TargetAccount:
		return "account"
	case TargetCallDetails:
		return "call_details"
	default:
		return "unknown"
	}
}

// Target is a tagged selection of which matcher to run. Targets are
// immutable once constructed; the regex variant carries its compiled
// pattern or fails at construction.
type Target struct {
	kind    TargetKind
	value   string // literal text or pattern source, for diagnostics
	matcher detector.Matcher
}

// Kind returns the target's kind tag.
func (t Target) Kind() TargetKind {
	return t.kind
}

// Describe returns a short human-readable description for diagnostics.
func (t Target) Describe() string {
	switch t.kind {
	case TargetLiteral:
		return fmt.Sprintf("literal %q", t.value)
	case TargetRegex:
		return fmt.Sprintf("regex %q", t.value)
	default:
		return t.kind.String()
	}
}

// NewLiteralTarget creates a target removing exact occurrences of text.
func NewLiteralTarget(text string) Target {
	return Target{
		kind:    TargetLiteral,
		value:   text,
		matcher: pattern.NewLiteralMatcher(text),
	}
}

// NewRegexTarget creates a target from a regex pattern. An invalid
// pattern fails here, before any document is touched.
func NewRegexTarget(expr string) (Target, error) {
	m, err := pattern.NewRegexMatcher(expr)
	if err != nil {
		return Target{}, NewInvalidPatternError(expr, err)
	}
	return Target{kind: TargetRegex, value: expr, matcher: m}, nil
}

// NewPhoneNumbersTarget creates the phone number target.
func NewPhoneNumbersTarget() Target {
	return Target{kind: TargetPhoneNumbers, matcher: phone.NewMatcher()}
}

// NewAccountTarget creates the account number target with default
// context heuristics.
func NewAccountTarget() Target {
	return NewAccountTargetWithOptions(nil, -1)
}

// NewAccountTargetWithOptions creates the account number target with
// custom label keywords and lookback window (zero values fall back to
// the matcher defaults).
func NewAccountTargetWithOptions(keywords []string, lookbackLines int) Target {
	return Target{
		kind:    TargetAccount,
		matcher: account.NewMatcherWithOptions(keywords, lookbackLines),
	}
}

// NewCallDetailsTarget creates the call-detail table target.
func NewCallDetailsTarget() Target {
	return Target{kind: TargetCallDetails, matcher: calldetail.NewMatcher()}
}

// VerizonTargets expands the named composite bundle: a wireless bill's
// sensitive content is the account number, every phone number, and the
// call-detail columns.
func VerizonTargets() []Target {
	return []Target{
		NewAccountTarget(),
		NewPhoneNumbersTarget(),
		NewCallDetailsTarget(),
	}
}
