package pdf

import (
	"sort"
	"strings"

	"github.com/jackzampolin/skim/internal/doc"
)

// textRun is one positioned show-text operation from the content stream.
// x and y are the glyph origin in PDF space (y-up, baseline), w the
// advance width.
type textRun struct {
	font string
	size float64
	x, y, w float64
	text string
}

// Assembly tolerances, all relative to font size unless noted.
const (
	// baselineTolerance is the absolute y distance (points) within which
	// runs are treated as sharing a baseline.
	baselineTolerance = 2.0

	// wordGapFactor: a horizontal gap wider than this fraction of the
	// font size becomes a space inside the span text.
	wordGapFactor = 0.3

	// blockGapFactor: a vertical gap between lines wider than this
	// multiple of the line height starts a new block.
	blockGapFactor = 1.5

	// Approximate ascent/descent fractions used to box a baseline run.
	ascentFactor  = 0.8
	descentFactor = 0.2
)

// assemblePage groups a page's text runs into lines, spans, and blocks
// and converts coordinates into the y-down space the classifier expects.
func assemblePage(runs []textRun, width, height float64) doc.Page {
	// Whitespace-only runs carry no content; the gap logic below
	// re-derives word spacing from geometry.
	kept := runs[:0]
	for _, r := range runs {
		if strings.TrimSpace(r.text) != "" {
			kept = append(kept, r)
		}
	}
	if len(kept) == 0 {
		return doc.Page{Width: width, Height: height}
	}

	// Reading order: top of page first (highest PDF y), then left to
	// right within a baseline.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].y != kept[j].y {
			return kept[i].y > kept[j].y
		}
		return kept[i].x < kept[j].x
	})

	var lines []doc.Line
	start := 0
	for i := 1; i <= len(kept); i++ {
		if i < len(kept) && kept[start].y-kept[i].y <= baselineTolerance {
			continue
		}
		lines = append(lines, assembleLine(kept[start:i], height))
		start = i
	}

	return doc.Page{Width: width, Height: height, Blocks: groupBlocks(lines)}
}

// assembleLine merges one baseline's runs into spans. Consecutive runs
// with the same font and size share a span; horizontal gaps become
// spaces inside the span text.
func assembleLine(runs []textRun, pageHeight float64) doc.Line {
	sort.SliceStable(runs, func(i, j int) bool { return runs[i].x < runs[j].x })

	var spans []doc.Span
	var text strings.Builder
	flush := func(r textRun) {
		if text.Len() > 0 {
			spans[len(spans)-1].Text = text.String()
		}
		text.Reset()
		spans = append(spans, doc.Span{
			Size:  r.size,
			Font:  r.font,
			Flags: fontFlags(r.font),
		})
	}

	x0 := runs[0].x
	x1 := runs[0].x + runs[0].w
	maxSize := 0.0
	baseline := runs[0].y

	penX := runs[0].x
	for i, r := range runs {
		if r.size > maxSize {
			maxSize = r.size
		}
		if r.x+r.w > x1 {
			x1 = r.x + r.w
		}

		if i > 0 && r.x-penX > wordGapFactor*r.size && !strings.HasSuffix(text.String(), " ") {
			text.WriteString(" ")
		}
		if i == 0 || r.font != spans[len(spans)-1].Font || r.size != spans[len(spans)-1].Size {
			flush(r)
		}
		text.WriteString(r.text)
		penX = r.x + r.w
	}
	if text.Len() > 0 {
		spans[len(spans)-1].Text = text.String()
	}

	// Box the baseline with approximate ascent and descent, converted to
	// y-down page coordinates.
	return doc.Line{
		Spans: spans,
		BBox: doc.BBox{
			X0: x0,
			Y0: pageHeight - (baseline + ascentFactor*maxSize),
			X1: x1,
			Y1: pageHeight - (baseline - descentFactor*maxSize),
		},
	}
}

// groupBlocks splits the top-down line sequence into blocks at large
// vertical gaps.
func groupBlocks(lines []doc.Line) []doc.Block {
	if len(lines) == 0 {
		return nil
	}

	var blocks []doc.Block
	current := []doc.Line{lines[0]}
	for _, l := range lines[1:] {
		prev := current[len(current)-1]
		lineHeight := prev.BBox.Y1 - prev.BBox.Y0
		if l.BBox.Y0-prev.BBox.Y1 > blockGapFactor*lineHeight {
			blocks = append(blocks, doc.Block{Lines: current})
			current = []doc.Line{l}
			continue
		}
		current = append(current, l)
	}
	return append(blocks, doc.Block{Lines: current})
}

// fontFlags derives span style flags from the font name. rsc.io/pdf does
// not expose the font descriptor, so weight in the name is the only
// signal available at assembly time.
func fontFlags(font string) int {
	if strings.Contains(strings.ToLower(font), "bold") {
		return doc.FlagBold
	}
	return 0
}
