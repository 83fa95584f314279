// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegexTargetValidation(t *testing.T) {
	_, err := NewRegexTarget("[invalid(")

	require.Error(t, err)
	assert.True(t, IsKind(err, ErrorInvalidPattern))

	target, err := NewRegexTarget(`\d{4}`)
	require.NoError(t, err)
	assert.Equal(t, TargetRegex, target.Kind())
}

func TestTargetDescribe(t *testing.T) {
	lit := NewLiteralTarget("John Doe")
	assert.Equal(t, `literal "John Doe"`, lit.Describe())

	re, err := NewRegexTarget("CONF-\\d+")
	require.NoError(t, err)
	assert.Equal(t, `regex "CONF-\\d+"`, re.Describe())

	assert.Equal(t, "phones", NewPhoneNumbersTarget().Describe())
	assert.Equal(t, "account", NewAccountTarget().Describe())
	assert.Equal(t, "call_details", NewCallDetailsTarget().Describe())
}

func TestVerizonTargetsBundle(t *testing.T) {
	targets := VerizonTargets()

	require.Len(t, targets, 3)
	assert.Equal(t, TargetAccount, targets[0].Kind())
	assert.Equal(t, TargetPhoneNumbers, targets[1].Kind())
	assert.Equal(t, TargetCallDetails, targets[2].Kind())
}
