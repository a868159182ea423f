// Package segment turns raw page-by-page extracted text into a normalized
// word sequence and a structural decomposition into titled sections.
//
// The pipeline has three stages with no feedback loops: whitespace/page-number
// normalization, front-matter elimination, and section detection. Every stage
// is deterministic and side-effect-free; degenerate input degrades to a less
// accurate segmentation, never to an error.
package segment

import (
	"log/slog"
	"strings"
)

// RawPage is one page's extracted text, ordered by page number starting at 1.
type RawPage struct {
	Number int
	Text   string
}

// Document is the segmented output for a single upload.
type Document struct {
	FullText string    `json:"-"`        // main content, normalized, front matter removed
	Words    []string  `json:"-"`        // whitespace tokens of FullText; all positions index this
	Sections []Section `json:"sections"`
	Metadata Metadata  `json:"metadata"`
}

// Segmenter runs the segmentation pipeline.
type Segmenter struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Segmenter {
	return &Segmenter{log: log}
}

// Segment runs the full pipeline over raw pages. It always produces a usable
// Document: at least one section, and word indices consistent with Words.
func (s *Segmenter) Segment(pages []RawPage, fileName string) *Document {
	normalized := Normalize(JoinPages(pages))
	main := StripFrontMatter(normalized)
	sections := DetectSections(main)
	words := strings.Fields(main)
	meta := AssembleMetadata(len(pages), words, fileName)

	s.log.Info("segmented document",
		"file", fileName,
		"pages", meta.TotalPages,
		"words", meta.TotalWords,
		"sections", len(sections),
		"est_minutes", meta.EstimatedReadingTime,
	)

	return &Document{
		FullText: main,
		Words:    words,
		Sections: sections,
		Metadata: meta,
	}
}

// JoinPages concatenates per-page text with blank-line separators, the form
// the normalizer expects.
func JoinPages(pages []RawPage) string {
	var sb strings.Builder
	for i, p := range pages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(p.Text)
	}
	return sb.String()
}
