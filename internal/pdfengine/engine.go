// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package pdfengine adapts PDF documents to the redaction service. Text
// extraction goes through ledongthuc/pdf for positioned glyph runs;
// content removal and writing go through pdfcpu.
package pdfengine

import (
	"fmt"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"bill-redactor/internal/redact"
)

// Engine opens PDF files for redaction. All engine and document
// operations serialize on one mutex: the underlying libraries keep
// per-document state that is not safe for concurrent mutation.
type Engine struct {
	mu   *sync.Mutex
	conf *model.Configuration
}

// NewEngine creates a PDF engine with its own lock.
func NewEngine() *Engine {
	return NewEngineWithLock(&sync.Mutex{})
}

// NewEngineWithLock creates a PDF engine sharing the caller's lock.
// Callers running several engines against shared state pass the same
// mutex to all of them.
func NewEngineWithLock(mu *sync.Mutex) *Engine {
	return &Engine{
		mu:   mu,
		conf: model.NewDefaultConfiguration(),
	}
}

// Open implements redact.Engine. The file is validated before any
// processing so corrupt input fails fast with a clear error.
func (e *Engine) Open(path string) (redact.Document, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cannot access %s: %w", path, err)
	}

	if err := api.ValidateFile(path, e.conf); err != nil {
		return nil, fmt.Errorf("invalid PDF file: %w", err)
	}

	ctx, err := api.ReadContextFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF for text extraction: %w", err)
	}

	return &document{
		mu:     e.mu,
		ctx:    ctx,
		file:   f,
		reader: r,
	}, nil
}
