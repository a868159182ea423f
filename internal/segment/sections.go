package segment

import "strings"

// Section is a contiguous, word-indexed span of the main content.
// StartIndex/EndIndex address the document word sequence; Content holds the
// section's body lines without the heading line, so WordCount can run
// slightly below EndIndex-StartIndex.
type Section struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	WordCount  int    `json:"wordCount"`
	StartIndex int    `json:"startIndex"`
	EndIndex   int    `json:"endIndex"`
}

// fallbackTitle labels the synthetic whole-book section when no heading
// matches.
const fallbackTitle = "Full Book"

// DetectSections partitions main content into titled sections in document
// order. Sections are contiguous and non-overlapping: each section ends where
// the next begins, and the last ends at the total word count. Words appearing
// before the first heading are counted toward word positions but assigned to
// no section. Always returns at least one section.
func DetectSections(content string) []Section {
	var sections []Section

	var (
		open  bool
		title string
		start int
		buf   []string
	)
	idx := 0

	for _, line := range strings.Split(content, "\n") {
		if IsSectionHeading(line) {
			if open {
				sections = append(sections, closeSection(title, buf, start, idx))
			}
			title = strings.TrimSpace(line)
			start = idx
			buf = buf[:0]
			open = true
			idx += len(strings.Fields(line))
			continue
		}
		if open {
			buf = append(buf, line)
		}
		idx += len(strings.Fields(line))
	}

	if open {
		sections = append(sections, closeSection(title, buf, start, idx))
	}

	if len(sections) == 0 {
		words := strings.Fields(content)
		sections = append(sections, Section{
			Title:      fallbackTitle,
			Content:    content,
			WordCount:  len(words),
			StartIndex: 0,
			EndIndex:   len(words),
		})
	}

	return sections
}

func closeSection(title string, buf []string, start, end int) Section {
	content := strings.Join(buf, "\n")
	return Section{
		Title:      title,
		Content:    content,
		WordCount:  len(strings.Fields(content)),
		StartIndex: start,
		EndIndex:   end,
	}
}
