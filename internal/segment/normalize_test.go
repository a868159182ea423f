package segment

import (
	"strings"
	"testing"
)

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	got := Normalize("one\t two   three\nfour")
	want := "one two three four"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_PreservesParagraphBreaks(t *testing.T) {
	got := Normalize("first paragraph\n\nsecond paragraph")
	// A paragraph break survives as a line boundary, never as 3+ newlines.
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected no run of 3+ newlines, got %q", got)
	}
	if !strings.Contains(got, "\n") {
		t.Errorf("expected paragraph break to survive, got %q", got)
	}
}

func TestNormalize_CollapsesExcessNewlines(t *testing.T) {
	got := Normalize("first\n\n\n\n\nsecond")
	if strings.Contains(got, "\n\n\n") {
		t.Errorf("expected at most one blank line, got %q", got)
	}
	if !strings.HasPrefix(got, "first") || !strings.HasSuffix(got, "second") {
		t.Errorf("expected surrounding text preserved, got %q", got)
	}
}

func TestNormalize_RemovesStandalonePageMarkerLine(t *testing.T) {
	got := Normalize("some text\n\nPage 42\n\nmore text")
	if strings.Contains(got, "Page 42") || strings.Contains(got, "42") {
		t.Errorf("expected standalone page marker removed, got %q", got)
	}
	if !strings.Contains(got, "some text") || !strings.Contains(got, "more text") {
		t.Errorf("expected surrounding text preserved, got %q", got)
	}
}

func TestNormalize_RemovesEmbeddedPageMarker(t *testing.T) {
	got := Normalize("as seen on Page 7 of this report")
	if strings.Contains(got, "Page 7") || strings.Contains(got, "7") {
		t.Errorf("expected embedded page marker removed, got %q", got)
	}
	want := "as seen on of this report"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_LeavesChapterHeadingsAlone(t *testing.T) {
	got := Normalize("Chapter 7\n\nIt was a dark and stormy night.")
	if !strings.Contains(got, "Chapter 7") {
		t.Errorf("expected %q to survive page-number stripping, got %q", "Chapter 7", got)
	}
}

func TestNormalize_RemovesBareNumberLines(t *testing.T) {
	got := Normalize("some text\n\n117\n\nmore text")
	if strings.Contains(got, "117") {
		t.Errorf("expected bare page number line removed, got %q", got)
	}
}

func TestNormalize_KeepsNumbersInRunningText(t *testing.T) {
	got := Normalize("there were 117 reasons to continue")
	if !strings.Contains(got, "117") {
		t.Errorf("expected in-sentence number preserved, got %q", got)
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("expected empty output for empty input, got %q", got)
	}
	if got := Normalize("   \n\t\n  "); got != "" {
		t.Errorf("expected empty output for whitespace-only input, got %q", got)
	}
}

func TestNormalize_TrimsResult(t *testing.T) {
	got := Normalize("\n\n  hello world  \n\n")
	if got != "hello world" {
		t.Errorf("expected trimmed %q, got %q", "hello world", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	in := "Page 3\n\nChapter 1\n\nSome   body \t text\n\n\n\n42\n\nthe end"
	a := Normalize(in)
	b := Normalize(in)
	if a != b {
		t.Errorf("expected identical output on repeated runs, got %q and %q", a, b)
	}
}
