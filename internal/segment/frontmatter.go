package segment

import "strings"

// StripFrontMatter removes everything before the first structural chapter
// heading. Lines classified as known front matter (table of contents,
// preface, and so on) are never a cut point but never block the search
// either. When no heading exists anywhere, the first 10% of lines (rounded
// down) are dropped as a front-matter estimate; documents under 10 lines may
// therefore lose nothing, which is intentional.
//
// The result is always a contiguous suffix of the input's line sequence.
func StripFrontMatter(doc string) string {
	lines := strings.Split(doc, "\n")

	for i, line := range lines {
		switch ClassifyLine(line) {
		case ClassChapter:
			return strings.Join(lines[i:], "\n")
		case ClassSkip:
			// Known non-content section; keep scanning.
			continue
		}
	}

	skip := len(lines) / 10
	return strings.Join(lines[skip:], "\n")
}
