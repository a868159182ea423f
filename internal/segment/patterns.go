package segment

import (
	"regexp"
	"strings"
)

// LineClass tags a line during the front-matter scan.
type LineClass int

const (
	// ClassBody is ordinary content.
	ClassBody LineClass = iota
	// ClassChapter is a structural heading: chapter, part, or numbered section.
	ClassChapter
	// ClassSkip is known non-content front or back matter.
	ClassSkip
)

// maxHeadingLen guards against body sentences that happen to start with a
// number or the word "chapter".
const maxHeadingLen = 100

// chapterRules match structural headings that mark where real content begins.
var chapterRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^chapter\s+\d+`),
	regexp.MustCompile(`(?i)^chapter\s+[ivxlcdm]+`),
	regexp.MustCompile(`(?i)^part\s+\d+`),
	regexp.MustCompile(`(?i)^section\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
}

// skipRules match whole lines naming front/back matter we never treat as a
// content cut point.
var skipRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^table of contents$`),
	regexp.MustCompile(`(?i)^contents$`),
	regexp.MustCompile(`(?i)^acknowledge?ments?$`),
	regexp.MustCompile(`(?i)^preface$`),
	regexp.MustCompile(`(?i)^foreword$`),
	regexp.MustCompile(`(?i)^introduction$`),
	regexp.MustCompile(`(?i)^about the author$`),
	regexp.MustCompile(`(?i)^copyright$`),
	regexp.MustCompile(`(?i)^dedication$`),
	regexp.MustCompile(`(?i)^bibliography$`),
	regexp.MustCompile(`(?i)^references$`),
	regexp.MustCompile(`(?i)^index$`),
	regexp.MustCompile(`(?i)^glossary$`),
}

// sectionRules is the broader set used when partitioning the retained
// content: structural headings plus named book sections.
var sectionRules = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^foreword$`),
	regexp.MustCompile(`(?i)^preface$`),
	regexp.MustCompile(`(?i)^prologue$`),
	regexp.MustCompile(`(?i)^introduction$`),
	regexp.MustCompile(`(?i)^table of contents$`),
	regexp.MustCompile(`(?i)^contents$`),
	regexp.MustCompile(`(?i)^acknowledge?ments?$`),
	regexp.MustCompile(`(?i)^dedication$`),
	regexp.MustCompile(`(?i)^about the author$`),
	regexp.MustCompile(`(?i)^chapter\s+\d+`),
	regexp.MustCompile(`(?i)^chapter\s+[ivxlcdm]+`),
	regexp.MustCompile(`(?i)^part\s+\d+`),
	regexp.MustCompile(`(?i)^section\s+\d+`),
	regexp.MustCompile(`^\d+\.\s+[A-Z]`),
	regexp.MustCompile(`(?i)^epilogue$`),
	regexp.MustCompile(`(?i)^afterword$`),
	regexp.MustCompile(`(?i)^appendix`),
}

// ClassifyLine tags a single line for the front-matter scan. Chapter wins
// over skip so a heading is never mistaken for front matter.
func ClassifyLine(line string) LineClass {
	trimmed := strings.TrimSpace(line)
	for _, re := range chapterRules {
		if re.MatchString(trimmed) {
			return ClassChapter
		}
	}
	for _, re := range skipRules {
		if re.MatchString(trimmed) {
			return ClassSkip
		}
	}
	return ClassBody
}

// IsSectionHeading reports whether a line opens a new section in the main
// content. Lines at or above maxHeadingLen never qualify.
func IsSectionHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) >= maxHeadingLen {
		return false
	}
	for _, re := range sectionRules {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}
