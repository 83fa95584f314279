// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"bill-redactor/internal/observability"
)

// DefaultMaxHits bounds the total plan size, and with it the worst-case
// number of removal calls against the document engine.
const DefaultMaxHits = 100

// Strategy builds a removal plan from extracted page text
type Strategy interface {
	// Plan runs the targets' matchers over every page and merges the
	// results into one deduplicated, bounded plan.
	Plan(pages []string, targets []Target) (*Plan, error)

	// Name returns a human-readable strategy name
	Name() string

	// Secure reports whether the resulting plan is meant for physical
	// removal (vs. visual-only obscuring)
	Secure() bool
}

// matchContext carries one page's text through planning. It lives only
// for the duration of that page's processing.
type matchContext struct {
	pageIndex int
	text      string
}

// SecureStrategy plans physical text removal. Planning is deterministic:
// targets are processed in list order and matcher output order, so
// identical inputs always yield identical plans. The verbose flag feeds
// diagnostics only and never changes which matches are found.
type SecureStrategy struct {
	maxHits  int
	verbose  bool
	observer *observability.Observer
}

// NewSecureStrategy creates a secure planning strategy with the default
// max-hits ceiling.
func NewSecureStrategy() *SecureStrategy {
	return &SecureStrategy{maxHits: DefaultMaxHits}
}

// WithMaxHits sets the maximum number of plan entries across the whole
// document. Values below 1 keep the current ceiling.
func (s *SecureStrategy) WithMaxHits(maxHits int) *SecureStrategy {
	if maxHits > 0 {
		s.maxHits = maxHits
	}
	return s
}

// WithVerbose enables diagnostic reporting. Planning decisions are
// unaffected.
func (s *SecureStrategy) WithVerbose(verbose bool) *SecureStrategy {
	s.verbose = verbose
	return s
}

// SetObserver sets the observability component
func (s *SecureStrategy) SetObserver(observer *observability.Observer) {
	s.observer = observer
}

// MaxHits returns the configured ceiling.
func (s *SecureStrategy) MaxHits() int {
	return s.maxHits
}

// Name implements Strategy.
func (s *SecureStrategy) Name() string {
	return "secure"
}

// Secure implements Strategy.
func (s *SecureStrategy) Secure() bool {
	return true
}

// Plan implements Strategy. Matches are deduplicated by literal value
// within each page; duplicates never count toward the ceiling. Once the
// cumulative entry count reaches the ceiling, further matches are
// dropped and the plan carries a truncation notice.
func (s *SecureStrategy) Plan(pages []string, targets []Target) (*Plan, error) {
	if len(targets) == 0 {
		return nil, NewNoTargetsError()
	}

	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("planner", "plan_document")
	}

	plan := &Plan{}
	total := 0
	dropped := 0

	for pageIndex, text := range pages {
		mc := matchContext{pageIndex: pageIndex, text: text}
		pagePlan := s.planPage(mc, targets, &total, &dropped)
		if len(pagePlan.Entries) > 0 {
			plan.Pages = append(plan.Pages, pagePlan)
		}
	}

	plan.TotalEntries = total
	if dropped > 0 {
		plan.Truncation = NewHitLimitError(s.maxHits, dropped)
	}

	if finish != nil {
		finish(true, map[string]interface{}{
			"pages":        len(pages),
			"plan_entries": total,
			"dropped":      dropped,
		})
	}

	return plan, nil
}

// planPage runs every target's matcher over one page and merges the
// results in discovery order.
func (s *SecureStrategy) planPage(mc matchContext, targets []Target, total, dropped *int) PagePlan {
	pagePlan := PagePlan{PageIndex: mc.pageIndex}
	seen := make(map[string]struct{})

	for _, target := range targets {
		for _, match := range target.matcher.ExtractAll(mc.text) {
			if _, dup := seen[match.Text]; dup {
				continue
			}
			seen[match.Text] = struct{}{}

			if *total >= s.maxHits {
				*dropped++
				continue
			}

			pagePlan.Entries = append(pagePlan.Entries, Entry{
				Literal: match.Text,
				Kind:    match.Kind,
			})
			*total++
		}
	}

	return pagePlan
}
