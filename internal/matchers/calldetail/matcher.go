// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package calldetail detects tabular call-record rows in extracted bill
// text. Rows are recognized line by line from their column shape (a
// time-of-day stamp followed by location tokens), so detection works no
// matter which page the table continues on.
package calldetail

import (
	"regexp"
	"strings"

	"bill-redactor/internal/detector"
)

var (
	// timePattern matches time-of-day stamps like "10:26 PM" or "3:45 am".
	timePattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\s*(?:AM|PM|am|pm)\b`)

	// locationPattern matches origin/destination tokens: a capitalized
	// word run followed by a 2-letter code, covering "New York, NY",
	// "Incoming, CL", and switch names like "Nwyrcyzn15, NY".
	locationPattern = regexp.MustCompile(`\b[A-Z][A-Za-z0-9]*(?:\s+[A-Za-z0-9]+)*\s*,\s*[A-Z]{2}\b`)
)

// Matcher detects call-detail rows and yields their time and location
// columns as separate literal matches. Duration and charge columns on the
// same row are never included, so non-sensitive totals survive redaction.
type Matcher struct{}

// NewMatcher creates a call-detail matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Name implements detector.Matcher.
func (m *Matcher) Name() string {
	return "call_detail"
}

// ExtractAll scans text line by line and, for every qualifying row,
// returns the time token and each location token as its own match. A line
// qualifies only if a location token appears after a time token; lines
// with a bare timestamp are ordinary text and are skipped, so unrelated
// timestamps elsewhere in the document are preserved.
func (m *Matcher) ExtractAll(text string) []detector.Match {
	var matches []detector.Match

	offset := 0
	for _, line := range strings.SplitAfter(text, "\n") {
		matches = append(matches, m.extractRow(line, offset)...)
		offset += len(line)
	}

	return matches
}

// extractRow returns the redactable column values of a single line, with
// offsets shifted by the line's position in the source text.
func (m *Matcher) extractRow(line string, offset int) []detector.Match {
	times := timePattern.FindAllStringIndex(line, -1)
	if len(times) == 0 {
		return nil
	}

	// Only location tokens after the first time stamp count: the row
	// shape is date, time, number, origination, destination. Scanning
	// the tail keeps the AM/PM token out of any location match.
	base := times[0][1]
	var locations [][]int
	for _, loc := range locationPattern.FindAllStringIndex(line[base:], -1) {
		locations = append(locations, []int{base + loc[0], base + loc[1]})
	}
	if len(locations) == 0 {
		return nil
	}

	matches := make([]detector.Match, 0, len(times)+len(locations))
	for _, loc := range times {
		matches = append(matches, detector.Match{
			Text:  line[loc[0]:loc[1]],
			Start: offset + loc[0],
			End:   offset + loc[1],
			Kind:  detector.KindCallDetail,
		})
	}
	for _, loc := range locations {
		matches = append(matches, detector.Match{
			Text:  line[loc[0]:loc[1]],
			Start: offset + loc[0],
			End:   offset + loc[1],
			Kind:  detector.KindCallDetail,
		})
	}

	return matches
}
