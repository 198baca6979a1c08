package pdf

import (
	"testing"

	"github.com/jackzampolin/skim/internal/doc"
	"github.com/jackzampolin/skim/internal/outline"
)

const (
	pageW = 595.0
	pageH = 842.0
)

func run(text string, x, y, w, size float64, font string) textRun {
	return textRun{font: font, size: size, x: x, y: y, w: w, text: text}
}

func TestAssemblePage_Lines(t *testing.T) {
	t.Run("runs on one baseline form one line", func(t *testing.T) {
		page := assemblePage([]textRun{
			run("Hello", 50, 700, 30, 12, "Helvetica"),
			run("world", 84, 700, 30, 12, "Helvetica"),
		}, pageW, pageH)

		lines := page.Lines()
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if got := outline.LineText(lines[0]); got != "Hello world" {
			t.Errorf("line text = %q, want %q", got, "Hello world")
		}
	})

	t.Run("distinct baselines split lines top-down", func(t *testing.T) {
		page := assemblePage([]textRun{
			run("below", 50, 600, 30, 12, "Helvetica"),
			run("above", 50, 700, 30, 12, "Helvetica"),
		}, pageW, pageH)

		lines := page.Lines()
		if len(lines) != 2 {
			t.Fatalf("expected 2 lines, got %d", len(lines))
		}
		if outline.LineText(lines[0]) != "above" || outline.LineText(lines[1]) != "below" {
			t.Errorf("lines out of reading order: %q, %q",
				outline.LineText(lines[0]), outline.LineText(lines[1]))
		}
		if lines[0].BBox.Y0 >= lines[1].BBox.Y0 {
			t.Error("y-down coordinates: first line must have smaller Y0")
		}
	})

	t.Run("sub-tolerance baseline jitter stays one line", func(t *testing.T) {
		page := assemblePage([]textRun{
			run("a", 50, 700, 10, 12, "Helvetica"),
			run("b", 62, 699, 10, 12, "Helvetica"),
		}, pageW, pageH)
		if got := len(page.Lines()); got != 1 {
			t.Errorf("expected 1 line, got %d", got)
		}
	})

	t.Run("left-to-right within a baseline", func(t *testing.T) {
		page := assemblePage([]textRun{
			run("world", 84, 700, 30, 12, "Helvetica"),
			run("Hello", 50, 700, 30, 12, "Helvetica"),
		}, pageW, pageH)
		if got := outline.LineText(page.Lines()[0]); got != "Hello world" {
			t.Errorf("line text = %q, want %q", got, "Hello world")
		}
	})
}

func TestAssembleLine_Spans(t *testing.T) {
	t.Run("font change starts a new span", func(t *testing.T) {
		l := assembleLine([]textRun{
			run("Bold", 50, 700, 30, 12, "Helvetica-Bold"),
			run("plain", 84, 700, 30, 12, "Helvetica"),
		}, pageH)

		if len(l.Spans) != 2 {
			t.Fatalf("expected 2 spans, got %d", len(l.Spans))
		}
		if l.Spans[0].Flags&doc.FlagBold == 0 {
			t.Error("bold font name should set the bold flag")
		}
		if l.Spans[1].Flags&doc.FlagBold != 0 {
			t.Error("plain font must not set the bold flag")
		}
	})

	t.Run("same styling merges into one span with gap spaces", func(t *testing.T) {
		l := assembleLine([]textRun{
			run("Hello", 50, 700, 30, 12, "Helvetica"),
			run("world", 90, 700, 30, 12, "Helvetica"), // gap 10 > 0.3*12
		}, pageH)

		if len(l.Spans) != 1 {
			t.Fatalf("expected 1 span, got %d", len(l.Spans))
		}
		if l.Spans[0].Text != "Hello world" {
			t.Errorf("span text = %q, want %q", l.Spans[0].Text, "Hello world")
		}
	})

	t.Run("tight runs concatenate without a space", func(t *testing.T) {
		l := assembleLine([]textRun{
			run("Hel", 50, 700, 20, 12, "Helvetica"),
			run("lo", 70.5, 700, 12, 12, "Helvetica"), // gap 0.5 < 0.3*12
		}, pageH)
		if l.Spans[0].Text != "Hello" {
			t.Errorf("span text = %q, want %q", l.Spans[0].Text, "Hello")
		}
	})

	t.Run("bbox spans runs and boxes the baseline", func(t *testing.T) {
		l := assembleLine([]textRun{
			run("Hello", 50, 700, 30, 12, "Helvetica"),
			run("world", 90, 700, 40, 12, "Helvetica"),
		}, pageH)
		if l.BBox.X0 != 50 || l.BBox.X1 != 130 {
			t.Errorf("x extent = [%v, %v], want [50, 130]", l.BBox.X0, l.BBox.X1)
		}
		if l.BBox.Y0 >= l.BBox.Y1 {
			t.Error("Y0 must be above Y1 in y-down coordinates")
		}
	})
}

func TestGroupBlocks(t *testing.T) {
	mk := func(y0, y1 float64) doc.Line {
		return doc.Line{
			Spans: []doc.Span{{Text: "x", Size: 12}},
			BBox:  doc.BBox{X0: 50, Y0: y0, X1: 100, Y1: y1},
		}
	}

	t.Run("tight lines share a block", func(t *testing.T) {
		blocks := groupBlocks([]doc.Line{mk(100, 112), mk(116, 128), mk(132, 144)})
		if len(blocks) != 1 {
			t.Errorf("expected 1 block, got %d", len(blocks))
		}
	})

	t.Run("large vertical gap splits blocks", func(t *testing.T) {
		blocks := groupBlocks([]doc.Line{mk(100, 112), mk(200, 212)})
		if len(blocks) != 2 {
			t.Errorf("expected 2 blocks, got %d", len(blocks))
		}
	})

	t.Run("no lines", func(t *testing.T) {
		if blocks := groupBlocks(nil); blocks != nil {
			t.Errorf("expected nil, got %v", blocks)
		}
	})
}

func TestAssemblePage_Degenerate(t *testing.T) {
	t.Run("no runs", func(t *testing.T) {
		page := assemblePage(nil, pageW, pageH)
		if len(page.Lines()) != 0 {
			t.Error("expected no lines")
		}
		if page.Width != pageW || page.Height != pageH {
			t.Error("page dimensions must survive")
		}
	})

	t.Run("whitespace-only runs dropped", func(t *testing.T) {
		page := assemblePage([]textRun{run("   ", 50, 700, 10, 12, "Helvetica")}, pageW, pageH)
		if len(page.Lines()) != 0 {
			t.Error("whitespace-only runs must not form lines")
		}
	})
}
