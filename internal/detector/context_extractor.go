// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import "strings"

// ContextExtractor provides line-oriented lookback around a match offset.
// Matchers use it for keyword heuristics (e.g. requiring an account label
// near a candidate before accepting it).
type ContextExtractor struct {
	// Number of lines before the match line to include in the window
	LookbackLines int
}

// NewContextExtractor creates a context extractor with default settings
func NewContextExtractor() *ContextExtractor {
	return &ContextExtractor{
		LookbackLines: 2, // Look at 2 lines before the match by default
	}
}

// WithLookbackLines sets the number of lookback lines
func (ce *ContextExtractor) WithLookbackLines(lines int) *ContextExtractor {
	ce.LookbackLines = lines
	return ce
}

// Window returns the text of the line containing offset plus up to
// LookbackLines preceding lines, joined by newlines. The window always
// includes the portion of the match line before the offset, so a label on
// the same line as the candidate is visible to keyword checks.
func (ce *ContextExtractor) Window(text string, offset int) string {
	if offset < 0 {
		offset = 0
	}
	if offset > len(text) {
		offset = len(text)
	}

	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1

	// Walk backwards over the requested number of preceding lines
	windowStart := lineStart
	for i := 0; i < ce.LookbackLines && windowStart > 0; i++ {
		windowStart = strings.LastIndexByte(text[:windowStart-1], '\n') + 1
	}

	lineEnd := strings.IndexByte(text[offset:], '\n')
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}

	return text[windowStart:lineEnd]
}

// ContainsKeyword reports whether any of the keywords appears in the
// window, case-insensitively.
func (ce *ContextExtractor) ContainsKeyword(window string, keywords []string) bool {
	lower := strings.ToLower(window)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
