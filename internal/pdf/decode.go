// Package pdf decodes PDF files into the doc page/block/line/span
// structure the outline classifier consumes. Text runs come from
// rsc.io/pdf; pdfcpu probes the file first so unreadable input fails
// with a clean error instead of deep inside the content-stream parser.
package pdf

import (
	"fmt"
	"os"

	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
	rpdf "rsc.io/pdf"

	"github.com/jackzampolin/skim/internal/doc"
)

// A4 dimensions in points, used when a page carries no usable MediaBox.
const (
	defaultPageWidth  = 595.0
	defaultPageHeight = 842.0
)

// Decode reads the PDF at path and returns its text as a doc.Document.
// The content-stream parser panics on malformed streams; those are
// recovered and surfaced as a single opaque decode error.
func Decode(path string) (d doc.Document, err error) {
	if _, err := pdfcpu.PageCountFile(path); err != nil {
		return doc.Document{}, fmt.Errorf("invalid PDF %s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return doc.Document{}, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return doc.Document{}, fmt.Errorf("failed to stat PDF: %w", err)
	}

	r, err := rpdf.NewReader(f, info.Size())
	if err != nil {
		return doc.Document{}, fmt.Errorf("failed to read PDF: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			d = doc.Document{}
			err = fmt.Errorf("failed to decode PDF %s: %v", path, p)
		}
	}()

	pages := make([]doc.Page, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		width, height := pageSize(page)
		if page.V.IsNull() {
			pages = append(pages, doc.Page{Width: width, Height: height})
			continue
		}

		content := page.Content()
		runs := make([]textRun, 0, len(content.Text))
		for _, t := range content.Text {
			runs = append(runs, textRun{
				font: t.Font,
				size: t.FontSize,
				x:    t.X,
				y:    t.Y,
				w:    t.W,
				text: t.S,
			})
		}
		pages = append(pages, assemblePage(runs, width, height))
	}

	return doc.Document{Pages: pages}, nil
}

// pageSize resolves the page's MediaBox, walking up the page tree for
// inherited values. Falls back to A4.
func pageSize(p rpdf.Page) (width, height float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.Kind() != rpdf.Array || mb.Len() < 4 {
			continue
		}
		w := mb.Index(2).Float64() - mb.Index(0).Float64()
		h := mb.Index(3).Float64() - mb.Index(1).Float64()
		if w > 0 && h > 0 {
			return w, h
		}
	}
	return defaultPageWidth, defaultPageHeight
}
