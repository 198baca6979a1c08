// Package outline classifies lines of a page-structured document into a
// title and a hierarchical H1–H3 outline using only visual and
// typographic cues: font size, weight, position, spacing, and casing.
// It performs no semantic language understanding.
package outline

import (
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackzampolin/skim/internal/doc"
)

// Entry is one outline item. Page is 1-indexed.
type Entry struct {
	Level string `json:"level" yaml:"level"`
	Text  string `json:"text" yaml:"text"`
	Page  int    `json:"page" yaml:"page"`
}

// Result is the classifier output: the selected title (possibly empty for
// documents with no text) and the ordered outline.
type Result struct {
	Title   string  `json:"title" yaml:"title"`
	Outline []Entry `json:"outline" yaml:"outline"`
}

// Candidate is a line accepted by the heading scorer, pending clustering
// and de-duplication.
type Candidate struct {
	Text string
	Size float64
	Page int
	BBox doc.BBox
}

// Extractor runs the document-wide outline extraction. Pages are scored
// independently on a bounded worker pool; title selection, global
// de-duplication, and level assignment happen in a sequential reduce.
type Extractor struct {
	workers int
	logger  *slog.Logger
}

// Config configures an Extractor.
type Config struct {
	// Workers bounds the per-page scoring pool (default: NumCPU).
	Workers int
	Logger  *slog.Logger
}

// New creates an Extractor.
func New(cfg Config) *Extractor {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{workers: workers, logger: logger}
}

// pageResult holds one page's scorer output. Only page 0 sets title.
type pageResult struct {
	title      string
	candidates []Candidate
}

// Extract classifies the whole document. It is a pure function of its
// input: empty or degenerate documents produce an empty result, never an
// error.
func (e *Extractor) Extract(d doc.Document) Result {
	start := time.Now()

	results := make([]pageResult, len(d.Pages))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.workers)
	for i, page := range d.Pages {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, page doc.Page) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = scorePage(page, i)
		}(i, page)
	}
	wg.Wait()

	// Sequential reduce: title from page 1, then global de-duplication in
	// (page, y) order. First occurrence of a normalized key wins.
	title := ""
	if len(results) > 0 {
		title = results[0].title
	}

	seen := make(map[string]struct{})
	var candidates []Candidate
	for _, pr := range results {
		for _, c := range pr.candidates {
			key := dedupeKey(c.Text)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			candidates = append(candidates, c)
		}
	}

	levelMap, ordered := buildLevelMap(candidates)

	outline := make([]Entry, 0, len(ordered))
	for _, c := range ordered {
		level, ok := levelMap[c.Size]
		if !ok {
			continue
		}
		outline = append(outline, Entry{Level: level, Text: c.Text, Page: c.Page + 1})
	}

	e.logger.Debug("outline extracted",
		"pages", len(d.Pages),
		"candidates", len(candidates),
		"headings", len(outline),
		"elapsed", time.Since(start))

	return Result{Title: title, Outline: outline}
}

// scorePage runs the statistics estimator and heading scorer over one
// page. Lines are sorted by top edge; prevY threads the previous line's
// bottom edge through the walk, reset at page start. On page 0 the title
// is selected first and any line matching it is skipped so the title does
// not reappear as a heading.
func scorePage(page doc.Page, pageNum int) pageResult {
	lines := page.Lines()
	if len(lines) == 0 {
		return pageResult{}
	}

	title := ""
	if pageNum == 0 {
		title = selectTitle(page)
	}

	stats := ComputeStats(lines)
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].BBox.Y0 < lines[j].BBox.Y0
	})

	var prev prevLine
	var candidates []Candidate
	for _, line := range lines {
		if len(line.Spans) == 0 {
			continue
		}
		text := collapseSpace(LineText(line))
		if text == "" {
			continue
		}
		if pageNum == 0 && strings.EqualFold(text, title) {
			continue
		}

		if isLikelyHeading(line, prev, stats, page.Width) {
			candidates = append(candidates, Candidate{
				Text: text,
				Size: maxSpanSize(line),
				Page: pageNum,
				BBox: line.BBox,
			})
		}
		prev = prevLine{y: line.BBox.Y1, set: true}
	}

	return pageResult{title: title, candidates: candidates}
}
