// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bill-redactor/internal/detector"
)

func TestSecureStrategyRequiresTargets(t *testing.T) {
	strategy := NewSecureStrategy()

	plan, err := strategy.Plan([]string{"some page text"}, nil)

	require.Error(t, err)
	assert.Nil(t, plan)
	assert.True(t, IsKind(err, ErrorNoTargets))
}

func TestSecureStrategyPlansLiterals(t *testing.T) {
	strategy := NewSecureStrategy()
	targets := []Target{NewLiteralTarget("555-234-5678")}

	plan, err := strategy.Plan([]string{
		"Call 555-234-5678 for support.",
		"No numbers on this page.",
		"Billing: 555-234-5678",
	}, targets)

	require.NoError(t, err)
	require.Len(t, plan.Pages, 2)
	assert.Equal(t, 0, plan.Pages[0].PageIndex)
	assert.Equal(t, 2, plan.Pages[1].PageIndex)
	assert.Equal(t, 2, plan.TotalEntries)
	assert.False(t, plan.Truncated())
}

func TestSecureStrategyDeduplicatesWithinPage(t *testing.T) {
	strategy := NewSecureStrategy()
	targets := []Target{NewPhoneNumbersTarget(), NewLiteralTarget("(555) 234-5678")}

	// The phone matcher and the literal target find the same string; it
	// must appear in the plan exactly once.
	plan, err := strategy.Plan([]string{
		"Primary: (555) 234-5678\nBackup: (555) 234-5678",
	}, targets)

	require.NoError(t, err)
	require.Len(t, plan.Pages, 1)
	require.Len(t, plan.Pages[0].Entries, 1)
	assert.Equal(t, "(555) 234-5678", plan.Pages[0].Entries[0].Literal)
	assert.Equal(t, detector.KindPhone, plan.Pages[0].Entries[0].Kind)
	assert.Equal(t, 1, plan.TotalEntries)
}

func TestSecureStrategySameLiteralOnEveryPage(t *testing.T) {
	strategy := NewSecureStrategy()
	targets := []Target{NewLiteralTarget("ACME Corp")}

	// Deduplication is per page; a footer repeated on every page gets
	// one entry per page.
	plan, err := strategy.Plan([]string{
		"Statement for ACME Corp",
		"ACME Corp page 2 of 3",
		"ACME Corp page 3 of 3",
	}, targets)

	require.NoError(t, err)
	assert.Len(t, plan.Pages, 3)
	assert.Equal(t, 3, plan.TotalEntries)
}

func TestSecureStrategyHitCeiling(t *testing.T) {
	strategy := NewSecureStrategy().WithMaxHits(2)
	targets := []Target{NewLiteralTarget("a"), NewLiteralTarget("b"),
		NewLiteralTarget("c"), NewLiteralTarget("d"), NewLiteralTarget("e")}

	plan, err := strategy.Plan([]string{"a b c d e"}, targets)

	require.NoError(t, err)
	require.Len(t, plan.Pages, 1)
	assert.Len(t, plan.Pages[0].Entries, 2)
	assert.Equal(t, "a", plan.Pages[0].Entries[0].Literal)
	assert.Equal(t, "b", plan.Pages[0].Entries[1].Literal)
	assert.Equal(t, 2, plan.TotalEntries)

	require.True(t, plan.Truncated())
	assert.True(t, IsKind(plan.Truncation, ErrorHitLimit))
	assert.Contains(t, plan.Truncation.Error(), "3")
}

func TestSecureStrategyDuplicatesNeverCountTowardCeiling(t *testing.T) {
	strategy := NewSecureStrategy().WithMaxHits(2)
	targets := []Target{NewLiteralTarget("x"), NewLiteralTarget("y")}

	// "x" appears three times but plans once; the ceiling of 2 still
	// admits "y".
	plan, err := strategy.Plan([]string{"x x x y"}, targets)

	require.NoError(t, err)
	require.Len(t, plan.Pages, 1)
	assert.Len(t, plan.Pages[0].Entries, 2)
	assert.False(t, plan.Truncated())
}

func TestSecureStrategyCeilingIsCumulativeAcrossPages(t *testing.T) {
	strategy := NewSecureStrategy().WithMaxHits(3)
	targets := []Target{NewLiteralTarget("tok")}

	plan, err := strategy.Plan([]string{"tok", "tok", "tok", "tok", "tok"}, targets)

	require.NoError(t, err)
	assert.Len(t, plan.Pages, 3)
	assert.Equal(t, 3, plan.TotalEntries)
	require.True(t, plan.Truncated())
}

func TestSecureStrategyDeterministicOrder(t *testing.T) {
	strategy := NewSecureStrategy()
	targets := []Target{NewLiteralTarget("beta"), NewLiteralTarget("alpha")}
	pages := []string{"alpha beta gamma"}

	first, err := strategy.Plan(pages, targets)
	require.NoError(t, err)
	second, err := strategy.Plan(pages, targets)
	require.NoError(t, err)

	// Target list order wins, not text order.
	require.Len(t, first.Pages, 1)
	assert.Equal(t, "beta", first.Pages[0].Entries[0].Literal)
	assert.Equal(t, "alpha", first.Pages[0].Entries[1].Literal)
	assert.Equal(t, first, second)
}

func TestSecureStrategySkipsEmptyPages(t *testing.T) {
	strategy := NewSecureStrategy()
	targets := []Target{NewLiteralTarget("needle")}

	plan, err := strategy.Plan([]string{"", "nothing here", ""}, targets)

	require.NoError(t, err)
	assert.Empty(t, plan.Pages)
	assert.True(t, plan.IsEmpty())
}

func TestSecureStrategyDefaults(t *testing.T) {
	strategy := NewSecureStrategy()

	assert.Equal(t, DefaultMaxHits, strategy.MaxHits())
	assert.Equal(t, "secure", strategy.Name())
	assert.True(t, strategy.Secure())

	// Non-positive ceilings are ignored.
	strategy.WithMaxHits(0)
	assert.Equal(t, DefaultMaxHits, strategy.MaxHits())
}
