// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package pdfengine

import (
	"fmt"
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// document is an open PDF. It holds two views of the same file: the
// pdfcpu context for content mutation and writing, and the ledongthuc
// reader for positioned text extraction. Page indexes are zero-based at
// this boundary and one-based inside both libraries.
type document struct {
	mu     *sync.Mutex
	ctx    *model.Context
	file   *os.File
	reader *pdf.Reader
}

// PageCount implements redact.Document.
func (d *document) PageCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ctx.PageCount
}

// ExtractPageText implements redact.Document. A page the reader cannot
// resolve yields empty text rather than an error: scanned pages and
// image-only pages have no text layer.
func (d *document) ExtractPageText(pageIndex int) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if pageIndex < 0 || pageIndex >= d.ctx.PageCount {
		return "", fmt.Errorf("page index %d out of range [0, %d)", pageIndex, d.ctx.PageCount)
	}

	p := d.reader.Page(pageIndex + 1)
	if p.V.IsNull() {
		return "", nil
	}

	return extractPageText(p)
}

// RemoveLiteral implements redact.Document. Every content stream of the
// page is decoded, rewritten without the literal, and re-encoded in
// place. Returns the number of instances removed; zero means the
// literal's bytes could not be lined up in the stream (split show
// operators, subset font encodings) and is not an error.
func (d *document) RemoveLiteral(pageIndex int, literal string) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if pageIndex < 0 || pageIndex >= d.ctx.PageCount {
		return 0, fmt.Errorf("page index %d out of range [0, %d)", pageIndex, d.ctx.PageCount)
	}

	refs, err := contentStreamRefs(d.ctx, pageIndex+1)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, ref := range refs {
		n, err := d.rewriteStream(ref, literal)
		if err != nil {
			return total, err
		}
		total += n
	}

	return total, nil
}

// rewriteStream excises the literal from one content stream and stores
// the re-encoded stream back into the cross-reference table.
func (d *document) rewriteStream(ref *types.IndirectRef, literal string) (int, error) {
	entry, found := d.ctx.FindTableEntryForIndRef(ref)
	if !found || entry.Object == nil {
		return 0, nil
	}

	sd, ok := entry.Object.(types.StreamDict)
	if !ok {
		return 0, nil
	}

	if err := sd.Decode(); err != nil {
		return 0, fmt.Errorf("failed to decode content stream: %w", err)
	}

	rewritten, n := removeLiteralFromContent(sd.Content, literal)
	if n == 0 {
		return 0, nil
	}

	sd.Content = rewritten
	if err := sd.Encode(); err != nil {
		return 0, fmt.Errorf("failed to encode content stream: %w", err)
	}
	sd.Dict.Update("Length", types.Integer(len(sd.Raw)))
	entry.Object = sd

	return n, nil
}

// Save implements redact.Document.
func (d *document) Save(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := api.WriteContextFile(d.ctx, path); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

// Close implements redact.Document.
func (d *document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.file.Close()
}

// contentStreamRefs resolves a page's Contents entry to the indirect
// references of its content streams. Contents may be a single stream
// reference, an array of references, or a reference to such an array.
func contentStreamRefs(ctx *model.Context, pageNr int) ([]*types.IndirectRef, error) {
	pageDict, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve page %d: %w", pageNr, err)
	}
	if pageDict == nil {
		return nil, nil
	}

	obj, found := pageDict.Find("Contents")
	if !found {
		return nil, nil
	}

	if ir, ok := obj.(types.IndirectRef); ok {
		resolved, err := ctx.Dereference(ir)
		if err != nil {
			return nil, fmt.Errorf("failed to dereference page contents: %w", err)
		}
		if arr, ok := resolved.(types.Array); ok {
			return refsFromArray(arr), nil
		}
		return []*types.IndirectRef{&ir}, nil
	}

	if arr, ok := obj.(types.Array); ok {
		return refsFromArray(arr), nil
	}

	return nil, nil
}

func refsFromArray(arr types.Array) []*types.IndirectRef {
	var refs []*types.IndirectRef
	for _, el := range arr {
		if ir, ok := el.(types.IndirectRef); ok {
			ref := ir
			refs = append(refs, &ref)
		}
	}
	return refs
}
