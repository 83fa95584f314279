// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pattern provides the caller-supplied matchers: exact literal
// strings and user regular expressions.
package pattern

import (
	"fmt"
	"regexp"
	"strings"

	"bill-redactor/internal/detector"
)

// RegexMatcher wraps a user-supplied regular expression. The pattern is
// validated at construction; case-insensitive matching is controlled by
// an inline (?i) flag in the pattern text, not a separate option.
//
// No implicit word boundaries are inserted: extracted document text can
// collapse inter-word spacing, so patterns relying on \b may under-match.
// That is the caller's responsibility, not corrected here.
type RegexMatcher struct {
	expr string
	re   *regexp.Regexp
}

// NewRegexMatcher compiles expr and returns a matcher for it. An invalid
// pattern fails immediately with the underlying syntax error.
func NewRegexMatcher(expr string) (*RegexMatcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", expr, err)
	}
	return &RegexMatcher{expr: expr, re: re}, nil
}

// Name implements detector.Matcher.
func (m *RegexMatcher) Name() string {
	return "regex"
}

// Expr returns the pattern text as supplied by the caller.
func (m *RegexMatcher) Expr() string {
	return m.expr
}

// ExtractAll returns all non-overlapping matches, leftmost first, per the
// pattern's own semantics.
func (m *RegexMatcher) ExtractAll(text string) []detector.Match {
	var matches []detector.Match
	for _, loc := range m.re.FindAllStringIndex(text, -1) {
		if loc[0] == loc[1] {
			continue // empty matches cannot be redacted
		}
		matches = append(matches, detector.Match{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
			Kind:  detector.KindRegex,
		})
	}
	return matches
}

// LiteralMatcher finds exact occurrences of a fixed string.
type LiteralMatcher struct {
	literal string
}

// NewLiteralMatcher creates a matcher for the given literal.
func NewLiteralMatcher(literal string) *LiteralMatcher {
	return &LiteralMatcher{literal: literal}
}

// Name implements detector.Matcher.
func (m *LiteralMatcher) Name() string {
	return "literal"
}

// ExtractAll returns every non-overlapping occurrence of the literal.
func (m *LiteralMatcher) ExtractAll(text string) []detector.Match {
	if m.literal == "" {
		return nil
	}

	var matches []detector.Match
	for offset := 0; ; {
		i := strings.Index(text[offset:], m.literal)
		if i == -1 {
			break
		}
		start := offset + i
		end := start + len(m.literal)
		matches = append(matches, detector.Match{
			Text:  m.literal,
			Start: start,
			End:   end,
			Kind:  detector.KindLiteral,
		})
		offset = end
	}
	return matches
}
