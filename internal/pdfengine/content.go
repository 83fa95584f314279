// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfengine

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
)

// textSpan is one string operand of a show-text operator: its raw byte
// range in the content stream (delimiters included) and its decoded
// text.
type textSpan struct {
	rawStart int
	rawEnd   int
	text     string
}

// textRun is one show-text operator occurrence. A Tj, ' or " run has a
// single span; a TJ run has one span per string element of its array.
type textRun struct {
	spans []textSpan
}

// removeLiteralFromContent rewrites a decoded content stream with every
// occurrence of literal excised from its show-text operators and
// returns the rewritten stream plus the occurrence count. The literal
// may span adjacent strings of a TJ array. When exact bytes do not line
// up, a whitespace-insensitive pass catches spacing introduced by text
// reconstruction. Streams where the literal cannot be found are
// returned unchanged with a zero count.
func removeLiteralFromContent(content []byte, literal string) ([]byte, int) {
	if literal == "" {
		return content, 0
	}

	runs := parseTextRuns(content)

	var edits []spanEdit
	removed := 0
	for _, run := range runs {
		runEdits, n := exciseFromRun(run, literal)
		edits = append(edits, runEdits...)
		removed += n
	}

	if removed == 0 {
		return content, 0
	}

	return applyEdits(content, edits), removed
}

// spanEdit replaces one raw byte range with a re-encoded string.
type spanEdit struct {
	rawStart int
	rawEnd   int
	raw      []byte
}

// exciseFromRun removes literal occurrences from one run and returns
// the raw edits for every span whose text changed.
func exciseFromRun(run textRun, literal string) ([]spanEdit, int) {
	concat := runText(run)

	ranges := findOccurrences(concat, literal)
	if len(ranges) == 0 {
		ranges = findSquashedOccurrences(concat, literal)
	}
	if len(ranges) == 0 {
		return nil, 0
	}

	drop := make([]bool, len(concat))
	for _, r := range ranges {
		for i := r[0]; i < r[1]; i++ {
			drop[i] = true
		}
	}

	var edits []spanEdit
	offset := 0
	for _, span := range run.spans {
		changed := false
		var kept strings.Builder
		for i := 0; i < len(span.text); i++ {
			if drop[offset+i] {
				changed = true
				continue
			}
			kept.WriteByte(span.text[i])
		}
		offset += len(span.text)

		if changed {
			edits = append(edits, spanEdit{
				rawStart: span.rawStart,
				rawEnd:   span.rawEnd,
				raw:      encodeLiteralString(kept.String()),
			})
		}
	}

	return edits, len(ranges)
}

func runText(run textRun) string {
	var b strings.Builder
	for _, span := range run.spans {
		b.WriteString(span.text)
	}
	return b.String()
}

// findOccurrences returns the non-overlapping byte ranges of literal in
// text, leftmost first.
func findOccurrences(text, literal string) [][2]int {
	var ranges [][2]int
	for start := 0; ; {
		i := strings.Index(text[start:], literal)
		if i < 0 {
			break
		}
		ranges = append(ranges, [2]int{start + i, start + i + len(literal)})
		start += i + len(literal)
	}
	return ranges
}

// findSquashedOccurrences matches with all whitespace removed from both
// sides, mapping squashed positions back to the original text. This
// lines up literals whose spacing came from row reconstruction rather
// than the stream's own bytes.
func findSquashedOccurrences(text, literal string) [][2]int {
	squashedLiteral := squash(literal)
	if squashedLiteral == "" {
		return nil
	}

	squashedText, index := squashWithIndex(text)

	var ranges [][2]int
	for start := 0; ; {
		i := strings.Index(squashedText[start:], squashedLiteral)
		if i < 0 {
			break
		}
		from := index[start+i]
		to := index[start+i+len(squashedLiteral)-1] + 1
		ranges = append(ranges, [2]int{from, to})
		start += i + len(squashedLiteral)
	}
	return ranges
}

func squash(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if !isSpaceByte(s[i]) {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// squashWithIndex removes whitespace and returns, for each squashed
// byte, its position in the original string.
func squashWithIndex(s string) (string, []int) {
	var b strings.Builder
	var index []int
	for i := 0; i < len(s); i++ {
		if !isSpaceByte(s[i]) {
			b.WriteByte(s[i])
			index = append(index, i)
		}
	}
	return b.String(), index
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func applyEdits(content []byte, edits []spanEdit) []byte {
	sort.Slice(edits, func(i, j int) bool {
		return edits[i].rawStart < edits[j].rawStart
	})

	var buf bytes.Buffer
	last := 0
	for _, edit := range edits {
		buf.Write(content[last:edit.rawStart])
		buf.Write(edit.raw)
		last = edit.rawEnd
	}
	buf.Write(content[last:])
	return buf.Bytes()
}

// parseTextRuns scans a content stream for show-text operators (Tj, ',
// ", TJ) and collects their string operands. Strings in other operand
// positions are discarded when the operator turns out not to show text.
func parseTextRuns(content []byte) []textRun {
	var runs []textRun
	var pending []textSpan
	var arraySpans []textSpan
	inArray := false

	i := 0
	for i < len(content) {
		c := content[i]
		switch {
		case c == '%':
			for i < len(content) && content[i] != '\n' && content[i] != '\r' {
				i++
			}

		case c == '(':
			span, next := parseLiteralString(content, i)
			if inArray {
				arraySpans = append(arraySpans, span)
			} else {
				pending = append(pending, span)
			}
			i = next

		case c == '<' && i+1 < len(content) && content[i+1] == '<':
			pending, arraySpans = nil, nil
			i += 2

		case c == '>' && i+1 < len(content) && content[i+1] == '>':
			pending, arraySpans = nil, nil
			i += 2

		case c == '<':
			span, next := parseHexString(content, i)
			if inArray {
				arraySpans = append(arraySpans, span)
			} else {
				pending = append(pending, span)
			}
			i = next

		case c == '[':
			inArray = true
			arraySpans = nil
			i++

		case c == ']':
			inArray = false
			i++

		case isOperatorByte(c):
			start := i
			for i < len(content) && isOperatorByte(content[i]) {
				i++
			}
			op := string(content[start:i])

			switch op {
			case "Tj", "'", "\"":
				if len(pending) > 0 {
					runs = append(runs, textRun{spans: pending[len(pending)-1:]})
				}
			case "TJ":
				if len(arraySpans) > 0 {
					runs = append(runs, textRun{spans: arraySpans})
				}
			}
			pending, arraySpans = nil, nil

		default:
			i++
		}
	}

	return runs
}

func isOperatorByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c == '\'' || c == '"' || c == '*'
}

// parseLiteralString decodes a ( ... ) string starting at start and
// returns its span plus the index just past the closing parenthesis.
// Nested parentheses and the standard escapes are honored.
func parseLiteralString(content []byte, start int) (textSpan, int) {
	var text strings.Builder
	depth := 0
	i := start

	for i < len(content) {
		c := content[i]
		switch {
		case c == '\\' && i+1 < len(content):
			decoded, next := decodeEscape(content, i+1)
			text.WriteString(decoded)
			i = next

		case c == '(':
			depth++
			if depth > 1 {
				text.WriteByte(c)
			}
			i++

		case c == ')':
			depth--
			if depth == 0 {
				return textSpan{rawStart: start, rawEnd: i + 1, text: text.String()}, i + 1
			}
			text.WriteByte(c)
			i++

		default:
			text.WriteByte(c)
			i++
		}
	}

	// Unterminated string; treat what we have as the span.
	return textSpan{rawStart: start, rawEnd: i, text: text.String()}, i
}

// decodeEscape decodes one backslash escape starting at the byte after
// the backslash and returns the decoded text plus the next index.
func decodeEscape(content []byte, i int) (string, int) {
	switch content[i] {
	case 'n':
		return "\n", i + 1
	case 'r':
		return "\r", i + 1
	case 't':
		return "\t", i + 1
	case 'b':
		return "\b", i + 1
	case 'f':
		return "\f", i + 1
	case '(', ')', '\\':
		return string(content[i]), i + 1
	case '\n':
		return "", i + 1 // line continuation
	case '\r':
		if i+1 < len(content) && content[i+1] == '\n' {
			return "", i + 2
		}
		return "", i + 1
	}

	if content[i] >= '0' && content[i] <= '7' {
		value := 0
		j := i
		for j < len(content) && j < i+3 && content[j] >= '0' && content[j] <= '7' {
			value = value*8 + int(content[j]-'0')
			j++
		}
		return string(byte(value)), j
	}

	// Unknown escape: the backslash is dropped, the byte stands.
	return string(content[i]), i + 1
}

// parseHexString decodes a < ... > string starting at start. An odd
// final digit is padded with zero per the PDF spec.
func parseHexString(content []byte, start int) (textSpan, int) {
	var digits []byte
	i := start + 1

	for i < len(content) && content[i] != '>' {
		c := content[i]
		if isHexDigit(c) {
			digits = append(digits, c)
		}
		i++
	}
	if i < len(content) {
		i++ // consume '>'
	}

	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	var text strings.Builder
	for j := 0; j+1 < len(digits); j += 2 {
		text.WriteByte(hexValue(digits[j])<<4 | hexValue(digits[j+1]))
	}

	return textSpan{rawStart: start, rawEnd: i, text: text.String()}, i
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// encodeLiteralString re-encodes text as a ( ... ) string with the
// required escapes. Non-printable bytes use octal form.
func encodeLiteralString(text string) []byte {
	var buf bytes.Buffer
	buf.WriteByte('(')
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '(' || c == ')' || c == '\\':
			buf.WriteByte('\\')
			buf.WriteByte(c)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\r':
			buf.WriteString(`\r`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c < 0x20 || c > 0x7e:
			fmt.Fprintf(&buf, `\%03o`, c)
		default:
			buf.WriteByte(c)
		}
	}
	buf.WriteByte(')')
	return buf.Bytes()
}
