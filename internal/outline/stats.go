package outline

import (
	"math"
	"sort"

	"github.com/jackzampolin/skim/internal/doc"
)

// PageStats is the per-page typographic baseline: the mean and population
// standard deviation of dominant font sizes, and the mean vertical
// spacing between line top edges. Recomputed fresh for every page.
type PageStats struct {
	AvgFontSize float64
	StdFontSize float64
	AvgSpacing  float64
}

// ComputeStats derives the baseline from a page's lines. Lines without
// spans are ignored. Pages with no qualifying lines yield the zero
// baseline, which makes the scorer treat every line as non-exceptional.
func ComputeStats(lines []doc.Line) PageStats {
	var sizes []float64
	var ys []float64
	for _, l := range lines {
		if len(l.Spans) == 0 {
			continue
		}
		sizes = append(sizes, maxSpanSize(l))
		ys = append(ys, l.BBox.Y0)
	}
	if len(sizes) == 0 {
		return PageStats{}
	}

	var sum float64
	for _, s := range sizes {
		sum += s
	}
	mean := sum / float64(len(sizes))

	var varSum float64
	for _, s := range sizes {
		d := s - mean
		varSum += d * d
	}
	std := math.Sqrt(varSum / float64(len(sizes)))

	var spacing float64
	if len(ys) > 1 {
		sort.Float64s(ys)
		var gapSum float64
		for i := 1; i < len(ys); i++ {
			gapSum += ys[i] - ys[i-1]
		}
		spacing = gapSum / float64(len(ys)-1)
	}

	return PageStats{AvgFontSize: mean, StdFontSize: std, AvgSpacing: spacing}
}
