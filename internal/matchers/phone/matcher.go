// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import (
	"regexp"
	"strings"

	"bill-redactor/internal/detector"
)

// nanpPattern matches North American Numbering Plan phone numbers across
// the surface formats found on billing statements:
//
//	(555) 234-5678
//	555-234-5678
//	555.234.5678
//	5552345678
//	+1 555 234 5678
//
// The area code group enforces the NANP rule that its first digit is 2-9,
// which rejects generic 10-digit numeric runs (invoice IDs, timestamps).
var nanpPattern = regexp.MustCompile(
	`(?:\+?\s*1[-.\s]?)?\(?\s*([2-9]\d{2})\s*\)?[-.\s]?\s*(\d{3})[-.\s]?\s*(\d{4})\b`)

// Matcher detects NANP phone numbers in extracted document text.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher creates a phone number matcher.
func NewMatcher() *Matcher {
	return &Matcher{pattern: nanpPattern}
}

// Name implements detector.Matcher.
func (m *Matcher) Name() string {
	return "phone"
}

// ExtractAll returns all non-overlapping phone number matches, leftmost
// first. When two candidate spans overlap, the first valid match wins.
// A candidate directly preceded by a digit is skipped so phone-shaped
// substrings embedded in longer numeric runs (account numbers, meter
// readings) do not surface as phones. Matches start at the number
// itself: whitespace the pattern's optional punctuation absorbs is
// trimmed so the match text equals what appears on the page.
func (m *Matcher) ExtractAll(text string) []detector.Match {
	var matches []detector.Match

	for _, loc := range m.pattern.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > 0 && text[loc[0]-1] >= '0' && text[loc[0]-1] <= '9' {
			continue
		}
		area := text[loc[2]:loc[3]]
		exchange := text[loc[4]:loc[5]]
		subscriber := text[loc[6]:loc[7]]
		if !Validate(area, exchange, subscriber) {
			continue
		}

		start := loc[0]
		for start < loc[1] && (text[start] == ' ' || text[start] == '\t') {
			start++
		}

		matches = append(matches, detector.Match{
			Text:  text[start:loc[1]],
			Start: start,
			End:   loc[1],
			Kind:  detector.KindPhone,
		})
	}

	return matches
}

// Validate checks a candidate's component groups against NANP rules:
// area code and exchange code must each start with 2-9.
func Validate(area, exchange, subscriber string) bool {
	return len(area) == 3 &&
		len(exchange) == 3 &&
		len(subscriber) == 4 &&
		area[0] >= '2' && area[0] <= '9' &&
		exchange[0] >= '2' && exchange[0] <= '9'
}

// Normalize strips all non-digit characters from a candidate and drops a
// leading country-code digit, returning the canonical 10-digit form. The
// second return is false when the candidate is not a valid NANP number.
func (m *Matcher) Normalize(candidate string) (string, bool) {
	var digits strings.Builder
	for _, r := range candidate {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	s := digits.String()
	if len(s) == 11 && s[0] == '1' {
		s = s[1:]
	}
	if len(s) != 10 {
		return "", false
	}
	if !Validate(s[0:3], s[3:6], s[6:10]) {
		return "", false
	}

	return s, true
}
