// Package doc defines the page/block/line/span structure produced by the
// PDF decoder and consumed by the outline classifier.
//
// The structure is a plain tree: a Document owns Pages, a Page owns
// Blocks, a Block owns Lines, a Line owns Spans. Traversal is strictly
// top-down; no parent back-pointers exist.
package doc

// FlagBold is the style-flags bit marking bold-equivalent weight
// (bit 4 of the span flags).
const FlagBold = 1 << 4

// BBox is a rectangle in page coordinates. The coordinate system is
// y-down: Y0 is the top edge, Y1 the bottom edge.
type BBox struct {
	X0, Y0, X1, Y1 float64
}

// CenterX returns the horizontal center of the box.
func (b BBox) CenterX() float64 {
	return (b.X0 + b.X1) / 2
}

// Span is a run of text with uniform styling.
type Span struct {
	Text  string
	Size  float64
	Font  string
	Color int
	Flags int
}

// Line is an ordered sequence of spans sharing a baseline, plus its
// bounding box. Lines within a page are not guaranteed sorted by vertical
// position; callers sort before statistics or scoring.
type Line struct {
	Spans []Span
	BBox  BBox
}

// Block is a decoder-defined grouping of lines (e.g. a paragraph).
type Block struct {
	Lines []Line
}

// Page is an ordered sequence of blocks plus the page dimensions.
type Page struct {
	Width  float64
	Height float64
	Blocks []Block
}

// Lines returns the page's lines flattened in block order.
func (p Page) Lines() []Line {
	var lines []Line
	for _, b := range p.Blocks {
		lines = append(lines, b.Lines...)
	}
	return lines
}

// Document is an ordered sequence of pages. Pages are 0-indexed here;
// outline output is 1-indexed.
type Document struct {
	Pages []Page
}
