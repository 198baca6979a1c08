package outline

import (
	"github.com/jackzampolin/skim/internal/doc"
)

// Title pre-filter bounds. Narrower than the general heading filter:
// titles are short and carry real words.
const (
	maxTitleWords = 6
	minTitleChars = 3

	topOfPage = 0.3
)

// titleCandidate is a heading-accepted line on page 1, scored
// independently of heading candidacy.
type titleCandidate struct {
	text     string
	size     float64
	bold     bool
	position float64 // y0 normalized by page height
}

// selectTitle picks the document title from the first page. Lines are
// walked in block traversal order with the heading scorer; accepted lines
// passing the narrower title filter become candidates. With no candidate
// the raw text of the largest-font line wins.
func selectTitle(page doc.Page) string {
	lines := page.Lines()
	if len(lines) == 0 {
		return ""
	}

	stats := ComputeStats(lines)
	var prev prevLine
	var candidates []titleCandidate

	for _, line := range lines {
		if len(line.Spans) == 0 {
			continue
		}

		text := collapseSpace(LineText(line))
		if wordCount(text) > maxTitleWords || len([]rune(text)) < minTitleChars {
			continue
		}

		if isLikelyHeading(line, prev, stats, page.Width) {
			font, _ := DominantFont(line)
			pos := 0.0
			if page.Height != 0 {
				pos = line.BBox.Y0 / page.Height
			}
			candidates = append(candidates, titleCandidate{
				text:     text,
				size:     font.Size,
				bold:     font.Flags&doc.FlagBold != 0,
				position: pos,
			})
		}

		prev = prevLine{y: line.BBox.Y1, set: true}
	}

	if len(candidates) == 0 {
		return largestFontText(lines)
	}

	maxSize := candidates[0].size
	for _, c := range candidates[1:] {
		if c.size > maxSize {
			maxSize = c.size
		}
	}

	best := candidates[0]
	bestScore := titleScore(candidates[0], maxSize)
	for _, c := range candidates[1:] {
		if s := titleScore(c, maxSize); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best.text
}

// titleScore ranks a candidate by relative size, boldness, proximity to
// the top of the page, and casing. Ties keep the first candidate in
// traversal order.
func titleScore(c titleCandidate, maxSize float64) float64 {
	score := 0.0
	if maxSize != 0 {
		score += c.size / maxSize * 3
	}
	if c.bold {
		score += 1.5
	}
	if c.position >= 0 && c.position < topOfPage {
		score += 2
	}
	if isTitleCase(c.text) || isUpperCase(c.text) {
		score += 1.5
	}
	return score
}

// largestFontText is the title fallback: the raw (trimmed) text of the
// line with the single largest dominant span, first encountered wins.
func largestFontText(lines []doc.Line) string {
	text := ""
	maxSize := 0.0
	for _, l := range lines {
		if len(l.Spans) == 0 {
			continue
		}
		if size := maxSpanSize(l); size > maxSize {
			maxSize = size
			text = LineText(l)
		}
	}
	return trimSpace(text)
}
