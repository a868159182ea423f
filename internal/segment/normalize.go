package segment

import (
	"regexp"
	"strings"
)

var (
	pageMarkerRe = regexp.MustCompile(`(?i)\bpage\s+\d+\b`)
	wsRunRe      = regexp.MustCompile(`\s+`)
	bareNumberRe = regexp.MustCompile(`^\d+$`)
)

// Normalize cleans raw extracted text: "Page N" markers are removed, runs of
// whitespace collapse to a single space, paragraph breaks (two or more
// newlines) survive as exactly one blank line, lines holding nothing but a
// page number are dropped, and the result is trimmed. Never fails; empty
// input yields an empty string.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	cleaned := pageMarkerRe.ReplaceAllString(raw, "")

	cleaned = wsRunRe.ReplaceAllStringFunc(cleaned, func(run string) string {
		if strings.Count(run, "\n") >= 2 {
			return "\n\n"
		}
		return " "
	})

	lines := strings.Split(cleaned, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if bareNumberRe.MatchString(strings.TrimSpace(line)) {
			continue
		}
		// Dropping a page-number line must not stack blank lines.
		if line == "" && len(kept) > 0 && kept[len(kept)-1] == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}
