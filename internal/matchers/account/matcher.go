// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package account

import (
	"regexp"
	"sort"

	"bill-redactor/internal/detector"
)

var (
	// groupedPattern matches the 9-5 display format (XXXXXXXXX-XXXXX)
	// used for wireless account numbers.
	groupedPattern = regexp.MustCompile(`\b\d{9}-\d{5}\b`)

	// contiguousPattern matches a bare 14-digit run, the undelimited form
	// of the same account number.
	contiguousPattern = regexp.MustCompile(`\b\d{14}\b`)
)

// DefaultKeywords are the account-label tokens that must appear near a
// bare 14-digit candidate before it is accepted. Matched
// case-insensitively as substrings of the lookback window.
var DefaultKeywords = []string{"account", "acct"}

// DefaultLookbackLines is how many lines above the candidate's line are
// searched for a label keyword.
const DefaultLookbackLines = 2

// Matcher detects account-number-shaped tokens. The 9-5 grouped form is
// distinctive enough to accept on shape alone; the contiguous 14-digit
// form additionally requires an account-label keyword within the
// lookback window, so unrelated long numeric IDs are left untouched.
type Matcher struct {
	keywords []string
	ctx      *detector.ContextExtractor
}

// NewMatcher creates an account matcher with default keywords and
// lookback window.
func NewMatcher() *Matcher {
	return NewMatcherWithOptions(DefaultKeywords, DefaultLookbackLines)
}

// NewMatcherWithOptions creates an account matcher with custom label
// keywords and lookback window size.
func NewMatcherWithOptions(keywords []string, lookbackLines int) *Matcher {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if lookbackLines < 0 {
		lookbackLines = DefaultLookbackLines
	}
	return &Matcher{
		keywords: keywords,
		ctx:      detector.NewContextExtractor().WithLookbackLines(lookbackLines),
	}
}

// Name implements detector.Matcher.
func (m *Matcher) Name() string {
	return "account"
}

// ExtractAll returns all account-number matches in offset order. When the
// grouped and contiguous shapes would claim overlapping spans, the
// grouped form wins.
func (m *Matcher) ExtractAll(text string) []detector.Match {
	var matches []detector.Match

	for _, loc := range groupedPattern.FindAllStringIndex(text, -1) {
		matches = append(matches, detector.Match{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
			Kind:  detector.KindAccount,
		})
	}

	for _, loc := range contiguousPattern.FindAllStringIndex(text, -1) {
		if overlapsAny(matches, loc[0], loc[1]) {
			continue
		}
		window := m.ctx.Window(text, loc[0])
		if !m.ctx.ContainsKeyword(window, m.keywords) {
			continue
		}
		matches = append(matches, detector.Match{
			Text:  text[loc[0]:loc[1]],
			Start: loc[0],
			End:   loc[1],
			Kind:  detector.KindAccount,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})

	return matches
}

func overlapsAny(matches []detector.Match, start, end int) bool {
	for _, m := range matches {
		if start < m.End && end > m.Start {
			return true
		}
	}
	return false
}
