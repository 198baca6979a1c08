package outline

import (
	"strings"

	"github.com/jackzampolin/skim/internal/doc"
)

// Font describes the dominant styling of a line. Name is lowercased so
// weight markers can be matched regardless of producer casing.
type Font struct {
	Size  float64
	Name  string
	Color int
	Flags int
}

// boldMarkers are the font-name substrings treated as bold-equivalent.
// Different PDF producers encode weight in the name, the flags, or both.
var boldMarkers = []string{"bold", "semibold", "medium", "black"}

// LineText concatenates the line's span texts in order. No separator is
// inserted: the decoder segments spans at word boundaries and keeps the
// spacing inside the span text.
func LineText(l doc.Line) string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// DominantFont returns the font descriptor of the span with the largest
// size, ties broken by first occurrence. ok is false for spanless lines.
func DominantFont(l doc.Line) (f Font, ok bool) {
	if len(l.Spans) == 0 {
		return Font{}, false
	}
	best := l.Spans[0]
	for _, s := range l.Spans[1:] {
		if s.Size > best.Size {
			best = s
		}
	}
	return Font{
		Size:  best.Size,
		Name:  strings.ToLower(best.Font),
		Color: best.Color,
		Flags: best.Flags,
	}, true
}

// maxSpanSize returns the largest span size on the line, 0 if spanless.
func maxSpanSize(l doc.Line) float64 {
	var max float64
	for _, s := range l.Spans {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// IsBold reports whether a line is bold. Either signal alone suffices:
// a weight marker in the (lowercased) font name, or the bold flag bit.
func IsBold(fontName string, flags int) bool {
	name := strings.ToLower(fontName)
	for _, m := range boldMarkers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return flags&doc.FlagBold != 0
}
