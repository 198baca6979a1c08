package outline

import (
	"testing"

	"github.com/jackzampolin/skim/internal/doc"
)

func TestIsBold(t *testing.T) {
	tests := []struct {
		name string
		font string
		flag int
		want bool
	}{
		{"flag bit alone", "Helvetica", doc.FlagBold, true},
		{"bold in name alone", "Arial-Bold", 0, true},
		{"semibold in name", "SourceSansPro-SemiBold", 0, true},
		{"medium in name", "Roboto-Medium", 0, true},
		{"black in name", "Inter-Black", 0, true},
		{"uppercase name still matches", "ARIAL-BOLD", 0, true},
		{"regular weight", "Times-Roman", 0, false},
		{"other flag bits ignored", "Times-Roman", 1 | 2 | 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBold(tt.font, tt.flag); got != tt.want {
				t.Errorf("IsBold(%q, %#x) = %v, want %v", tt.font, tt.flag, got, tt.want)
			}
		})
	}
}

func TestLineText(t *testing.T) {
	l := doc.Line{Spans: []doc.Span{
		{Text: "Chapter ", Size: 12},
		{Text: "One", Size: 12},
	}}
	if got := LineText(l); got != "Chapter One" {
		t.Errorf("LineText = %q, want %q", got, "Chapter One")
	}

	if got := LineText(doc.Line{}); got != "" {
		t.Errorf("LineText(empty) = %q, want empty", got)
	}
}

func TestDominantFont(t *testing.T) {
	t.Run("largest span wins", func(t *testing.T) {
		l := doc.Line{Spans: []doc.Span{
			{Text: "a", Size: 10, Font: "Small"},
			{Text: "b", Size: 18, Font: "BIG-Font", Color: 7, Flags: doc.FlagBold},
			{Text: "c", Size: 12, Font: "Mid"},
		}}
		f, ok := DominantFont(l)
		if !ok {
			t.Fatal("expected ok")
		}
		if f.Size != 18 || f.Name != "big-font" || f.Color != 7 || f.Flags != doc.FlagBold {
			t.Errorf("unexpected font: %+v", f)
		}
	})

	t.Run("ties keep first occurrence", func(t *testing.T) {
		l := doc.Line{Spans: []doc.Span{
			{Text: "a", Size: 14, Font: "First"},
			{Text: "b", Size: 14, Font: "Second"},
		}}
		f, _ := DominantFont(l)
		if f.Name != "first" {
			t.Errorf("tie broke to %q, want first span", f.Name)
		}
	})

	t.Run("spanless line", func(t *testing.T) {
		if _, ok := DominantFont(doc.Line{}); ok {
			t.Error("expected ok=false for spanless line")
		}
	})
}
