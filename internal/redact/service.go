// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package redact

import (
	"fmt"
	"strings"

	"bill-redactor/internal/observability"
)

// Document is an open document inside the engine. Page indexes are
// zero-based; implementations translate to whatever the underlying
// library expects.
type Document interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// ExtractPageText extracts the text of one page
	ExtractPageText(pageIndex int) (string, error)

	// RemoveLiteral physically removes every occurrence of literal from
	// the page's content and returns the number of instances removed.
	// Zero is a valid result, not an error.
	RemoveLiteral(pageIndex int, literal string) (int, error)

	// Save writes the document to the given path
	Save(path string) error

	// Close releases the document's resources
	Close() error
}

// Engine opens documents for text extraction and content removal
type Engine interface {
	Open(path string) (Document, error)
}

// Result summarizes one completed redaction run
type Result struct {
	PagesProcessed   int
	PagesModified    int
	InstancesRemoved int
	PlanEntries      int
	Truncated        bool
	Secure           bool
}

// Service drives the full redaction flow: extract, plan, remove, save
type Service struct {
	engine   Engine
	strategy Strategy
	observer *observability.Observer
}

// NewService creates a redaction service
func NewService(engine Engine, strategy Strategy) *Service {
	return &Service{
		engine:   engine,
		strategy: strategy,
	}
}

// SetObserver sets the observability component
func (s *Service) SetObserver(observer *observability.Observer) {
	s.observer = observer
}

// Redact opens inputPath, removes every planned literal, and writes the
// result to outputPath. The output is written even when nothing matched,
// so an empty plan degrades to a plain copy. Targets are validated
// before the document is touched.
func (s *Service) Redact(inputPath, outputPath string, targets []Target) (*Result, error) {
	if len(targets) == 0 {
		return nil, NewNoTargetsError()
	}

	var finish func(bool, map[string]interface{})
	if s.observer != nil {
		finish = s.observer.StartTiming("service", "redact")
	}

	result, err := s.redact(inputPath, outputPath, targets)
	if finish != nil {
		if err != nil {
			finish(false, map[string]interface{}{"error": err.Error()})
		} else {
			finish(true, map[string]interface{}{
				"pages_processed":   result.PagesProcessed,
				"pages_modified":    result.PagesModified,
				"instances_removed": result.InstancesRemoved,
			})
		}
	}
	return result, err
}

func (s *Service) redact(inputPath, outputPath string, targets []Target) (*Result, error) {
	debug := s.debugObserver()
	step := func(name, path string) func(success bool, details string) {
		if debug == nil {
			return func(bool, string) {}
		}
		return debug.StartStep("service", name, path)
	}

	doc, err := s.engine.Open(inputPath)
	if err != nil {
		return nil, NewDocumentError("failed to open document", err)
	}
	defer doc.Close()

	done := step("extract_text", inputPath)
	pages, err := s.extractPages(doc)
	if err != nil {
		done(false, err.Error())
		return nil, err
	}
	done(true, fmt.Sprintf("%d pages", len(pages)))

	done = step("plan", inputPath)
	plan, err := s.strategy.Plan(pages, targets)
	if err != nil {
		done(false, err.Error())
		return nil, err
	}
	done(true, fmt.Sprintf("%d entries", plan.TotalEntries))

	result := &Result{
		PagesProcessed: len(pages),
		PlanEntries:    plan.TotalEntries,
		Truncated:      plan.Truncated(),
		Secure:         s.strategy.Secure(),
	}

	done = step("remove", inputPath)
	for _, pagePlan := range plan.Pages {
		modified := false
		for _, entry := range pagePlan.Entries {
			removed, err := doc.RemoveLiteral(pagePlan.PageIndex, entry.Literal)
			if err != nil {
				done(false, err.Error())
				return nil, NewRemovalError(pagePlan.PageIndex, entry.Literal, err)
			}
			if removed > 0 {
				result.InstancesRemoved += removed
				modified = true
			}
		}
		if modified {
			result.PagesModified++
		}
	}
	done(true, fmt.Sprintf("%d instances", result.InstancesRemoved))
	if debug != nil {
		debug.LogMetric("service", "pages_modified", result.PagesModified)
		debug.LogMetric("service", "instances_removed", result.InstancesRemoved)
	}

	done = step("save", outputPath)
	if err := doc.Save(outputPath); err != nil {
		done(false, err.Error())
		return nil, NewDocumentError("failed to save document", err)
	}
	done(true, "")

	return result, nil
}

// debugObserver returns the step logger when debug output is enabled.
func (s *Service) debugObserver() *observability.DebugObserver {
	if s.observer == nil {
		return nil
	}
	return s.observer.DebugObserver
}

// ExtractText returns the document's full text with pages joined by
// newlines. Used by the extract-only mode to preview what the matchers
// will see.
func (s *Service) ExtractText(inputPath string) (string, error) {
	doc, err := s.engine.Open(inputPath)
	if err != nil {
		return "", NewDocumentError("failed to open document", err)
	}
	defer doc.Close()

	pages, err := s.extractPages(doc)
	if err != nil {
		return "", err
	}

	return strings.Join(pages, "\n"), nil
}

func (s *Service) extractPages(doc Document) ([]string, error) {
	count := doc.PageCount()
	pages := make([]string, count)
	for i := 0; i < count; i++ {
		text, err := doc.ExtractPageText(i)
		if err != nil {
			return nil, NewExtractionError(i, err)
		}
		pages[i] = text
	}
	return pages, nil
}
