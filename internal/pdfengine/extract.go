// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfengine

import (
	"bytes"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// extractPageText returns one page's text with rows in reading order.
// Row-based extraction keeps a bill's tabular layout: each visual row
// becomes one line, so line-oriented matchers see call-detail columns
// and label-value pairs the way they appear on the page.
func extractPageText(p pdf.Page) (string, error) {
	rows, err := p.GetTextByRow()
	if err != nil {
		// Plain extraction loses column spacing but still feeds the
		// matchers something.
		text, err := p.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		return cleanPageText(text), nil
	}

	sorted := make([]*pdf.Row, 0, len(rows))
	for _, row := range rows {
		if row != nil && len(row.Content) > 0 {
			sorted = append(sorted, row)
		}
	}

	// PDF Y grows bottom-up; ascending average Y here matches the
	// library's row positions to top-to-bottom reading order.
	sort.Slice(sorted, func(i, j int) bool {
		return averageY(sorted[i].Content) < averageY(sorted[j].Content)
	})

	var buf bytes.Buffer
	for _, row := range sorted {
		line := reconstructRow(row.Content)
		if strings.TrimSpace(line) != "" {
			buf.WriteString(line)
			buf.WriteString("\n")
		}
	}

	return cleanPageText(buf.String()), nil
}

func averageY(elements []pdf.Text) float64 {
	if len(elements) == 0 {
		return 0
	}
	var total float64
	for _, el := range elements {
		total += el.Y
	}
	return total / float64(len(elements))
}

// reconstructRow joins a row's glyph runs left to right, inserting a
// space wherever the horizontal gap between runs is wide enough to be a
// column or word boundary rather than intra-word kerning.
func reconstructRow(elements []pdf.Text) string {
	if len(elements) == 0 {
		return ""
	}

	sorted := make([]pdf.Text, len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].X < sorted[j].X
	})

	var buf bytes.Buffer
	for i, el := range sorted {
		buf.WriteString(el.S)

		if i == len(sorted)-1 {
			break
		}

		gap := sorted[i+1].X - (el.X + el.W)
		fontSize := el.FontSize
		if fontSize <= 0 {
			fontSize = 12
		}
		if gap > fontSize*0.2 {
			buf.WriteString(" ")
		}
	}

	return buf.String()
}

// cleanPageText normalizes extracted text: blank lines dropped, tabs
// turned into spaces, runs of spaces collapsed within each line. Line
// breaks are preserved so the label lookback window stays meaningful.
func cleanPageText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.ReplaceAll(line, "\t", " ")
		for strings.Contains(line, "  ") {
			line = strings.ReplaceAll(line, "  ", " ")
		}
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}

	return strings.Join(cleaned, "\n")
}
