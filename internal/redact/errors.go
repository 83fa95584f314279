// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes redaction errors
type ErrorKind int

const (
	// ErrorInvalidPattern indicates a regex pattern that failed to compile
	ErrorInvalidPattern ErrorKind = iota

	// ErrorNoTargets indicates a redaction request with an empty target list
	ErrorNoTargets

	// ErrorExtraction indicates the document engine could not read page text
	ErrorExtraction

	// ErrorRemoval indicates the document engine could not apply a removal
	ErrorRemoval

	// ErrorHitLimit indicates the plan was truncated at the max-hits ceiling.
	// This is a reported condition, never a fatal error.
	ErrorHitLimit

	// ErrorDocument indicates the document could not be opened or written
	ErrorDocument
)

// String returns the string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case ErrorInvalidPattern:
		return "invalid_pattern"
	case ErrorNoTargets:
		return "no_targets"
	case ErrorExtraction:
		return "extraction_failure"
	case ErrorRemoval:
		return "removal_failure"
	case ErrorHitLimit:
		return "hit_limit_reached"
	case ErrorDocument:
		return "document_failure"
	default:
		return "unknown"
	}
}

// Error is a structured redaction error carrying enough context (page
// index, literal, pattern) for the caller to diagnose without re-running
// in verbose mode.
type Error struct {
	// Kind is the error category
	Kind ErrorKind

	// Message describes what went wrong
	Message string

	// Page is the zero-based page index, or -1 when not page-specific
	Page int

	// Literal is the plan entry involved, when applicable
	Literal string

	// Pattern is the offending regex pattern, when applicable
	Pattern string

	// Cause is the underlying error
	Cause error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Kind, e.Message)
	if e.Page >= 0 {
		msg += fmt.Sprintf(" (page %d)", e.Page+1)
	}
	if e.Literal != "" {
		msg += fmt.Sprintf(" (literal: %q)", e.Literal)
	}
	if e.Pattern != "" {
		msg += fmt.Sprintf(" (pattern: %q)", e.Pattern)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsKind reports whether err is a redaction Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}

// NewInvalidPatternError reports a regex that failed to compile.
func NewInvalidPatternError(pattern string, cause error) *Error {
	return &Error{
		Kind:    ErrorInvalidPattern,
		Message: "regex pattern failed to compile",
		Page:    -1,
		Pattern: pattern,
		Cause:   cause,
	}
}

// NewNoTargetsError reports an empty target list. Raised before any
// engine call so a no-op run never masquerades as success.
func NewNoTargetsError() *Error {
	return &Error{
		Kind:    ErrorNoTargets,
		Message: "no redaction targets specified",
		Page:    -1,
	}
}

// NewExtractionError reports a page whose text could not be extracted.
func NewExtractionError(page int, cause error) *Error {
	return &Error{
		Kind:    ErrorExtraction,
		Message: "failed to extract page text",
		Page:    page,
		Cause:   cause,
	}
}

// NewRemovalError reports a literal the engine could not remove.
func NewRemovalError(page int, literal string, cause error) *Error {
	return &Error{
		Kind:    ErrorRemoval,
		Message: "failed to remove literal",
		Page:    page,
		Literal: literal,
		Cause:   cause,
	}
}

// NewHitLimitError builds the truncation notice attached to a capped
// plan. It is reported to the caller, never returned as a failure.
func NewHitLimitError(maxHits, dropped int) *Error {
	return &Error{
		Kind:    ErrorHitLimit,
		Message: fmt.Sprintf("plan truncated at %d entries, %d further matches dropped", maxHits, dropped),
		Page:    -1,
	}
}

// NewDocumentError reports a document that could not be opened or written.
func NewDocumentError(message string, cause error) *Error {
	return &Error{
		Kind:    ErrorDocument,
		Message: message,
		Page:    -1,
		Cause:   cause,
	}
}
