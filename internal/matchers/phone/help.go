// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package phone

import "bill-redactor/internal/help"

// GetTargetInfo returns standardized information about the phones target
func (m *Matcher) GetTargetInfo() help.TargetInfo {
	return help.TargetInfo{
		Name:             "PHONES",
		Flag:             "-phones",
		ShortDescription: "Detects North American (NANP) phone numbers",
		DetailedDescription: `The phones target detects phone numbers in North American Numbering Plan
formats as they appear on billing statements: parenthesized area codes,
dash/dot/space separators, bare 10-digit runs, and an optional +1 country
code.

A candidate is accepted only if it yields exactly 10 digits after
stripping separators (or 11 with a leading 1) and both its area code and
exchange code start with a digit 2-9. This rejects generic numeric runs
such as invoice IDs or timestamps that happen to be 10 digits long.`,

		Patterns: []string{
			"(555) 234-5678",
			"555-234-5678",
			"555.234.5678",
			"5552345678",
			"+1 555 234 5678",
		},

		FalsePositiveControls: []string{
			"Area code first digit must be 2-9 (NANP rule)",
			"Exchange code first digit must be 2-9 (NANP rule)",
			"Exactly 10 digits after separator stripping (11 with leading 1)",
		},

		Examples: []string{
			"bill-redactor -input bill.pdf -output redacted.pdf -phones",
			"bill-redactor -input bill.pdf -output redacted.pdf -phones -verbose",
		},
	}
}
