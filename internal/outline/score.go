package outline

import (
	"math"

	"github.com/jackzampolin/skim/internal/doc"
)

// Heuristic scoring constants. These are empirical and load-bearing:
// changing any of them changes which lines classify as headings, so they
// are covered by golden-output tests and must not be retuned casually.
const (
	maxHeadingWords = 12
	minHeadingChars = 2
	maxHeadingChars = 50
	maxDigitRatio   = 0.3

	zStrong = 1.5
	zMild   = 1.0

	centerTolerance = 50.0
	spacingFactor   = 1.2

	headingThreshold = 6.0

	// stdEpsilon keeps the z-score finite on near-uniform pages.
	stdEpsilon = 1e-5
)

// prevLine carries the bottom edge of the previously scored line on the
// page. It is an explicit fold accumulator threaded through sequential
// line evaluations, reset at the start of every page.
type prevLine struct {
	y   float64
	set bool
}

// isLikelyHeading decides whether a single line is a heading, judged
// against the page baseline and the previous line's bottom edge. It is
// pure: inputs are not mutated and no state is kept between calls.
func isLikelyHeading(line doc.Line, prev prevLine, stats PageStats, pageWidth float64) bool {
	if len(line.Spans) == 0 {
		return false
	}

	text := collapseSpace(LineText(line))
	runes := []rune(text)
	if text == "" || wordCount(text) > maxHeadingWords || len(runes) < minHeadingChars {
		return false
	}
	last := runes[len(runes)-1]
	if last == '.' || last == ',' || last == ':' {
		return false
	}
	if runes[0] == '•' || isAllDigits(text) {
		return false
	}
	if digitRatio(text) > maxDigitRatio {
		return false
	}

	font, _ := DominantFont(line)
	bold := IsBold(font.Name, font.Flags)
	caps := isUpperCase(text)
	title := isTitleCase(text)
	short := len(runes) <= maxHeadingChars

	var z float64
	if stats.StdFontSize != 0 {
		z = (font.Size - stats.AvgFontSize) / (stats.StdFontSize + stdEpsilon)
	}

	centered := math.Abs(line.BBox.CenterX()-pageWidth/2) < centerTolerance

	var gap float64
	if prev.set && prev.y != 0 {
		gap = line.BBox.Y0 - prev.y
	}
	spacious := stats.AvgSpacing != 0 && gap > stats.AvgSpacing*spacingFactor

	score := 0.0
	switch {
	case z > zStrong:
		score += 3
	case z > zMild:
		score += 2
	}
	if bold {
		score += 2
	}
	if centered {
		score += 1.5
	}
	if spacious {
		score += 1.5
	}
	if caps || title {
		score += 1
	}
	if short {
		score += 1
	}

	return score >= headingThreshold
}

func wordCount(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if r == ' ' {
			inWord = false
		} else if !inWord {
			inWord = true
			n++
		}
	}
	return n
}
