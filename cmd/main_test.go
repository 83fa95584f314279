// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bill-redactor/internal/config"
	"bill-redactor/internal/redact"
)

func TestBuildTargetsPatternsAndRegexes(t *testing.T) {
	tf := &targetFlags{
		patterns: []string{"John Doe", "42 Main St"},
		regexes:  []string{`CUST-\d+`},
	}

	targets, err := buildTargets(tf, nil)

	require.NoError(t, err)
	require.Len(t, targets, 3)
	assert.Equal(t, redact.TargetLiteral, targets[0].Kind())
	assert.Equal(t, redact.TargetLiteral, targets[1].Kind())
	assert.Equal(t, redact.TargetRegex, targets[2].Kind())
}

func TestBuildTargetsInvalidRegex(t *testing.T) {
	tf := &targetFlags{regexes: []string{"[unclosed"}}

	_, err := buildTargets(tf, nil)

	require.Error(t, err)
	assert.True(t, redact.IsKind(err, redact.ErrorInvalidPattern))
}

func TestBuildTargetsVerizonShorthand(t *testing.T) {
	tf := &targetFlags{verizon: true}

	targets, err := buildTargets(tf, nil)

	require.NoError(t, err)
	require.Len(t, targets, 3)
	assert.Equal(t, redact.TargetAccount, targets[0].Kind())
	assert.Equal(t, redact.TargetPhoneNumbers, targets[1].Kind())
	assert.Equal(t, redact.TargetCallDetails, targets[2].Kind())
}

func TestBuildTargetsVerizonAbsorbsIndividualFlags(t *testing.T) {
	tf := &targetFlags{verizon: true, phones: true, account: true}

	targets, err := buildTargets(tf, nil)

	require.NoError(t, err)
	// No duplicates when -verizon and the flags it covers are combined
	assert.Len(t, targets, 3)
}

func TestBuildTargetsIndividualFlags(t *testing.T) {
	tf := &targetFlags{phones: true, callDetails: true}

	targets, err := buildTargets(tf, nil)

	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, redact.TargetPhoneNumbers, targets[0].Kind())
	assert.Equal(t, redact.TargetCallDetails, targets[1].Kind())
}

func TestBuildTargetsMixedWithPatterns(t *testing.T) {
	tf := &targetFlags{
		patterns: []string{"ACME Corp"},
		verizon:  true,
	}

	targets, err := buildTargets(tf, nil)

	require.NoError(t, err)
	require.Len(t, targets, 4)
	// Caller-supplied patterns come first, then the bundle
	assert.Equal(t, redact.TargetLiteral, targets[0].Kind())
	assert.Equal(t, redact.TargetAccount, targets[1].Kind())
}

func TestBuildTargetsEmpty(t *testing.T) {
	targets, err := buildTargets(&targetFlags{}, nil)

	require.NoError(t, err)
	assert.Empty(t, targets)
}

func TestTargetFlagsAnySet(t *testing.T) {
	assert.False(t, (&targetFlags{}).anySet())
	assert.True(t, (&targetFlags{phones: true}).anySet())
	assert.True(t, (&targetFlags{patterns: []string{"x"}}).anySet())
}

func TestTargetsFromProfile(t *testing.T) {
	tf := targetsFromProfile([]string{"account", "phones", "call-details"})

	assert.True(t, tf.account)
	assert.True(t, tf.phones)
	assert.True(t, tf.callDetails)
	assert.False(t, tf.verizon)
}

func TestResolveConfigurationPrecedence(t *testing.T) {
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	cfg.Defaults.MaxHits = 50

	profile := &config.Profile{MaxHits: 25, Verbose: true}

	final := resolveConfiguration(cfg, profile, &configFlags{})

	// Profile overrides config defaults; flags were not set
	assert.Equal(t, 25, final.maxHits)
	assert.True(t, final.verbose)
}

func TestResolveConfigurationDefaults(t *testing.T) {
	final := resolveConfiguration(nil, nil, &configFlags{})

	assert.Equal(t, 100, final.maxHits)
	assert.False(t, final.verbose)
	assert.False(t, final.debug)
	assert.False(t, final.noColor)
}
