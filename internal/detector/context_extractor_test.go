// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package detector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowSameLine(t *testing.T) {
	ce := NewContextExtractor()
	text := "Account Number: 12345678900001"
	offset := strings.Index(text, "12345")

	window := ce.Window(text, offset)

	// The label before the offset stays in the window
	assert.Equal(t, "Account Number: 12345678900001", window)
}

func TestWindowLookbackLines(t *testing.T) {
	ce := NewContextExtractor()
	text := "line one\nline two\nAccount\nline four\n12345678900001 here\ntrailer"
	offset := strings.Index(text, "12345")

	window := ce.Window(text, offset)

	// Default lookback is 2 lines plus the match line
	assert.Equal(t, "Account\nline four\n12345678900001 here", window)
}

func TestWindowCustomLookback(t *testing.T) {
	ce := NewContextExtractor().WithLookbackLines(0)
	text := "label above\ncandidate here"
	offset := strings.Index(text, "candidate")

	assert.Equal(t, "candidate here", ce.Window(text, offset))
}

func TestWindowAtTextStart(t *testing.T) {
	ce := NewContextExtractor()

	assert.Equal(t, "first line", ce.Window("first line\nsecond", 3))
}

func TestWindowClampsOffset(t *testing.T) {
	ce := NewContextExtractor()
	text := "only line"

	assert.Equal(t, "only line", ce.Window(text, -5))
	assert.Equal(t, "only line", ce.Window(text, len(text)+10))
}

func TestContainsKeyword(t *testing.T) {
	ce := NewContextExtractor()

	assert.True(t, ce.ContainsKeyword("Your Account Summary", []string{"account", "acct"}))
	assert.True(t, ce.ContainsKeyword("ACCT #: 123", []string{"account", "acct"}))
	assert.False(t, ce.ContainsKeyword("Usage details", []string{"account", "acct"}))
	assert.False(t, ce.ContainsKeyword("anything", nil))
}
