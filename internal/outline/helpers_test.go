package outline

import "github.com/jackzampolin/skim/internal/doc"

// line builds a single-span line for tests.
func line(text string, size float64, bbox doc.BBox) doc.Line {
	return doc.Line{
		Spans: []doc.Span{{Text: text, Size: size, Font: "Helvetica"}},
		BBox:  bbox,
	}
}

// boldLine builds a single-span line with the bold flag set.
func boldLine(text string, size float64, bbox doc.BBox) doc.Line {
	return doc.Line{
		Spans: []doc.Span{{Text: text, Size: size, Font: "Helvetica", Flags: doc.FlagBold}},
		BBox:  bbox,
	}
}

// pageOf wraps lines in a single block on a default A4-ish page.
func pageOf(lines ...doc.Line) doc.Page {
	return doc.Page{
		Width:  595,
		Height: 842,
		Blocks: []doc.Block{{Lines: lines}},
	}
}
