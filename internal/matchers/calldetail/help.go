// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package calldetail

import "bill-redactor/internal/help"

// GetTargetInfo returns standardized information about the call-details target
func (m *Matcher) GetTargetInfo() help.TargetInfo {
	return help.TargetInfo{
		Name:             "CALL_DETAILS",
		Flag:             "-call-details",
		ShortDescription: "Detects call-record rows (time and location columns)",
		DetailedDescription: `The call-details target detects tabular call-record rows in
line-oriented bill text. A line qualifies as a call-detail row when it
contains a time-of-day stamp (H:MM AM/PM) followed by at least one
location token such as "New York, NY" or "Incoming, CL".

Each qualifying row contributes its time and location values as separate
literals, so non-sensitive columns on the same row (call duration,
charges) are preserved. Lines with a timestamp but no location token are
treated as ordinary text and skipped.`,

		Patterns: []string{
			"Time: 10:26 PM, 3:45 am",
			"Location: New York, NY / Incoming, CL / Nwyrcyzn15, NY",
		},

		FalsePositiveControls: []string{
			"Rows require a location token after the time stamp",
			"Duration and charge columns are never included",
		},

		Examples: []string{
			"bill-redactor -input bill.pdf -output redacted.pdf -call-details",
			"bill-redactor -input bill.pdf -output redacted.pdf -verizon",
		},
	}
}
