package outline

import (
	"reflect"
	"testing"

	"github.com/jackzampolin/skim/internal/doc"
)

// bodyBlock returns four plain 11pt body lines anchoring the page
// statistics around typical paragraph text.
func bodyBlock() doc.Block {
	return doc.Block{Lines: []doc.Line{
		line("plain body text to establish statistics baseline", 11, doc.BBox{X0: 50, Y0: 300, X1: 500, Y1: 311}),
		line("more plain body text in the same size as before", 11, doc.BBox{X0: 50, Y0: 320, X1: 500, Y1: 331}),
		line("yet another body line keeping the page average low", 11, doc.BBox{X0: 50, Y0: 340, X1: 500, Y1: 351}),
		line("final body line rounding out the statistics sample", 11, doc.BBox{X0: 50, Y0: 360, X1: 500, Y1: 371}),
	}}
}

func headingPage(headings ...doc.Line) doc.Page {
	return doc.Page{
		Width:  595,
		Height: 842,
		Blocks: []doc.Block{{Lines: headings}, bodyBlock()},
	}
}

func testDocument() doc.Document {
	return doc.Document{Pages: []doc.Page{
		headingPage(boldLine("Annual Report", 28, centeredBox(50))),
		headingPage(boldLine("Introduction", 18, centeredBox(100))),
		headingPage(
			boldLine("INTRODUCTION ", 18, centeredBox(100)),
			boldLine("Methods", 18, centeredBox(400)),
		),
		headingPage(boldLine("Data Sources", 14, centeredBox(100))),
	}}
}

func TestExtract(t *testing.T) {
	got := New(Config{Workers: 1}).Extract(testDocument())

	if got.Title != "Annual Report" {
		t.Errorf("title = %q, want %q", got.Title, "Annual Report")
	}

	want := []Entry{
		{Level: "H1", Text: "Introduction", Page: 2},
		{Level: "H1", Text: "Methods", Page: 3},
		{Level: "H2", Text: "Data Sources", Page: 4},
	}
	if !reflect.DeepEqual(got.Outline, want) {
		t.Errorf("outline = %+v, want %+v", got.Outline, want)
	}
}

func TestExtract_DuplicateSuppressed(t *testing.T) {
	got := New(Config{Workers: 1}).Extract(testDocument())
	for _, e := range got.Outline {
		if e.Page == 3 && dedupeKey(e.Text) == "introduction" {
			t.Error("second INTRODUCTION occurrence should be dropped")
		}
	}
}

func TestExtract_TitleNotRepeatedAsHeading(t *testing.T) {
	// A page-1 line matching the title case-insensitively is skipped, so
	// the title never reappears in the outline.
	d := doc.Document{Pages: []doc.Page{
		{
			Width:  595,
			Height: 842,
			Blocks: []doc.Block{
				{Lines: []doc.Line{
					boldLine("Overview", 28, centeredBox(50)),
					boldLine("OVERVIEW", 18, centeredBox(150)),
				}},
				bodyBlock(),
			},
		},
	}}
	got := New(Config{Workers: 1}).Extract(d)
	if got.Title != "Overview" {
		t.Fatalf("title = %q, want Overview", got.Title)
	}
	for _, e := range got.Outline {
		if dedupeKey(e.Text) == "overview" {
			t.Errorf("title resurfaced as heading: %+v", e)
		}
	}
}

func TestExtract_EmptyDocument(t *testing.T) {
	got := New(Config{}).Extract(doc.Document{})
	if got.Title != "" || len(got.Outline) != 0 {
		t.Errorf("expected empty result, got %+v", got)
	}
}

func TestExtract_DegeneratePages(t *testing.T) {
	d := doc.Document{Pages: []doc.Page{
		{Width: 595, Height: 842},                                        // no blocks
		{Width: 595, Height: 842, Blocks: []doc.Block{{}}},               // block without lines
		{Width: 595, Height: 842, Blocks: []doc.Block{{Lines: []doc.Line{{BBox: doc.BBox{Y0: 10}}}}}}, // line without spans
	}}
	got := New(Config{Workers: 2}).Extract(d)
	if got.Title != "" || len(got.Outline) != 0 {
		t.Errorf("degenerate pages must yield empty result, got %+v", got)
	}
}

func TestExtract_EmptyFirstPageLeavesTitleEmpty(t *testing.T) {
	d := doc.Document{Pages: []doc.Page{
		{Width: 595, Height: 842},
		headingPage(boldLine("Introduction", 18, centeredBox(100))),
	}}
	got := New(Config{Workers: 1}).Extract(d)
	if got.Title != "" {
		t.Errorf("title = %q, want empty for textless first page", got.Title)
	}
	if len(got.Outline) != 1 || got.Outline[0].Text != "Introduction" {
		t.Errorf("outline = %+v", got.Outline)
	}
}

func TestExtract_WorkerCountDoesNotChangeResult(t *testing.T) {
	d := testDocument()
	sequential := New(Config{Workers: 1}).Extract(d)
	for _, workers := range []int{2, 4, 8} {
		parallel := New(Config{Workers: workers}).Extract(d)
		if !reflect.DeepEqual(sequential, parallel) {
			t.Errorf("workers=%d diverged: %+v vs %+v", workers, parallel, sequential)
		}
	}
}
