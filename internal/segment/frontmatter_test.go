package segment

import (
	"strings"
	"testing"
)

func TestStripFrontMatter_CutsAtFirstChapterHeading(t *testing.T) {
	doc := strings.Join([]string{
		"The Great Book",
		"Copyright",
		"Table of Contents",
		"Chapter 1",
		"It begins here.",
		"Chapter 2",
		"It continues.",
	}, "\n")

	got := StripFrontMatter(doc)
	if !strings.HasPrefix(got, "Chapter 1") {
		t.Errorf("expected content to start at %q, got %q", "Chapter 1", got)
	}
	if strings.Contains(got, "Copyright") {
		t.Errorf("expected front matter removed, got %q", got)
	}
}

func TestStripFrontMatter_SkipSectionsDoNotBlockSearch(t *testing.T) {
	doc := strings.Join([]string{
		"Preface",
		"Some preface text about the book.",
		"Acknowledgements",
		"Thanks to everyone.",
		"Part 1",
		"The real content.",
	}, "\n")

	got := StripFrontMatter(doc)
	if !strings.HasPrefix(got, "Part 1") {
		t.Errorf("expected content to start at %q, got %q", "Part 1", got)
	}
}

func TestStripFrontMatter_FallbackSkipsTenPercent(t *testing.T) {
	var ls []string
	for i := 0; i < 50; i++ {
		ls = append(ls, "plain body text with no headings at all")
	}
	doc := strings.Join(ls, "\n")

	got := StripFrontMatter(doc)
	gotLines := strings.Split(got, "\n")
	if len(gotLines) != 45 { // 50 - floor(50*0.1)
		t.Errorf("expected 45 lines after 10%% skip, got %d", len(gotLines))
	}
}

func TestStripFrontMatter_ShortDocumentLosesNothing(t *testing.T) {
	doc := strings.Join([]string{
		"line one",
		"line two",
		"line three",
	}, "\n")

	got := StripFrontMatter(doc)
	if got != doc {
		t.Errorf("expected document under 10 lines untouched, got %q", got)
	}
}

func TestStripFrontMatter_ResultIsSuffixOfInputLines(t *testing.T) {
	docs := []string{
		"Title\nCopyright\nChapter 1\nbody text\nmore body",
		strings.Repeat("filler line\n", 30) + "the end",
		"only one line",
		"",
	}
	for _, doc := range docs {
		got := StripFrontMatter(doc)
		if !strings.HasSuffix(doc, got) {
			t.Errorf("expected result to be a suffix of input, doc %q got %q", doc, got)
		}
	}
}

func TestStripFrontMatter_NumberedHeadingIsCutPoint(t *testing.T) {
	doc := "Foreword\nsome words\n1. The Beginning\nfirst chapter text"
	got := StripFrontMatter(doc)
	if !strings.HasPrefix(got, "1. The Beginning") {
		t.Errorf("expected content to start at numbered heading, got %q", got)
	}
}

func TestClassifyLine_Chapters(t *testing.T) {
	headings := []string{
		"Chapter 1",
		"chapter 12: The Storm",
		"CHAPTER IV",
		"Part 2",
		"Section 3",
		"7. Getting Started",
	}
	for _, h := range headings {
		if ClassifyLine(h) != ClassChapter {
			t.Errorf("expected %q to classify as chapter", h)
		}
	}
}

func TestClassifyLine_SkipSections(t *testing.T) {
	skips := []string{
		"Table of Contents",
		"contents",
		"Acknowledgements",
		"Preface",
		"Foreword",
		"Introduction",
		"About the Author",
		"Copyright",
		"Dedication",
		"Bibliography",
		"References",
		"Index",
		"Glossary",
	}
	for _, s := range skips {
		if ClassifyLine(s) != ClassSkip {
			t.Errorf("expected %q to classify as skip section", s)
		}
	}
}

func TestClassifyLine_Body(t *testing.T) {
	bodies := []string{
		"It was the best of times.",
		"The preface said otherwise.",
		"chapters are numbered",
		"",
	}
	for _, b := range bodies {
		if ClassifyLine(b) != ClassBody {
			t.Errorf("expected %q to classify as body", b)
		}
	}
}
