// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

// Kind identifies which matcher produced a match. It is carried for
// diagnostics only and never influences planning decisions.
type Kind string

const (
	KindPhone      Kind = "PHONE"
	KindAccount    Kind = "ACCOUNT"
	KindCallDetail Kind = "CALL_DETAIL"
	KindRegex      Kind = "REGEX"
	KindLiteral    Kind = "LITERAL"
)

// Match represents a detected occurrence of sensitive text. Matches are
// produced only by matchers and are immutable once returned.
type Match struct {
	// Text is the literal substring exactly as it appears in the source.
	Text string

	// Start and End are byte offsets of Text within the source blob.
	Start int
	End   int

	// Kind tags the matcher that produced this match.
	Kind Kind
}

// Matcher is the uniform contract implemented by every detector: given a
// text blob, produce all non-overlapping matches, leftmost first.
type Matcher interface {
	// Name returns a short identifier for diagnostics.
	Name() string

	// ExtractAll returns every non-overlapping match in text, in
	// discovery order. Implementations must not mutate text and must be
	// safe for concurrent use across independent calls.
	ExtractAll(text string) []Match
}
