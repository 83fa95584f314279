// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package account

import "bill-redactor/internal/help"

// GetTargetInfo returns standardized information about the account target
func (m *Matcher) GetTargetInfo() help.TargetInfo {
	return help.TargetInfo{
		Name:             "ACCOUNT",
		Flag:             "-account",
		ShortDescription: "Detects 14-digit account numbers (9-5 grouped or contiguous)",
		DetailedDescription: `The account target detects account-number-shaped tokens in two
literal shapes: a 9-digit group, a dash, and a 5-digit group
(XXXXXXXXX-XXXXX), or a contiguous 14-digit run.

The grouped form is accepted on shape alone. The contiguous form is only
accepted when an account-label keyword (e.g. "Account", "Acct") appears
on the candidate's line or within the two preceding lines, which keeps
unrelated 14-digit strings such as long invoice IDs out of the plan.`,

		Patterns: []string{
			"123456789-00001 (9-5 grouped)",
			"12345678900001 (contiguous, label required nearby)",
		},

		FalsePositiveControls: []string{
			"Contiguous 14-digit runs require an account-label keyword within the lookback window",
			"Grouped form takes precedence when both shapes claim overlapping spans",
		},

		Examples: []string{
			"bill-redactor -input bill.pdf -output redacted.pdf -account",
			"bill-redactor -input bill.pdf -output redacted.pdf -verizon",
		},
	}
}
