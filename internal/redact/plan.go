// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import "bill-redactor/internal/detector"

// Entry is one literal string scheduled for removal from a page.
type Entry struct {
	// Literal is the exact substring to remove
	Literal string

	// Kind tags the matcher that discovered the literal (diagnostics only)
	Kind detector.Kind
}

// PagePlan is the ordered, deduplicated removal list for one page. No
// literal appears twice within a page.
type PagePlan struct {
	// PageIndex is the zero-based page the entries apply to
	PageIndex int

	// Entries in discovery order: target list order, then matcher output order
	Entries []Entry
}

// Plan is the removal plan for a whole document. A plan is built fresh
// for each redaction run and discarded after the engine consumes it.
type Plan struct {
	// Pages holds per-page plans for pages with at least one entry
	Pages []PagePlan

	// TotalEntries is the entry count across all pages, bounded by the
	// strategy's max-hits ceiling
	TotalEntries int

	// Truncation is non-nil when the max-hits ceiling was reached. It is
	// a reported condition, not a failure.
	Truncation *Error
}

// Truncated reports whether the plan hit the max-hits ceiling.
func (p *Plan) Truncated() bool {
	return p.Truncation != nil
}

// IsEmpty reports whether the plan schedules no removals.
func (p *Plan) IsEmpty() bool {
	return p.TotalEntries == 0
}
