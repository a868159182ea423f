package segment

// ReferenceWPM is the fixed rate used for the reading-time estimate,
// independent of any user-configured pace.
const ReferenceWPM = 200

// Metadata is the read-only summary of a segmented document.
type Metadata struct {
	TotalPages           int    `json:"totalPages"`
	TotalWords           int    `json:"totalWords"`
	EstimatedReadingTime int    `json:"estimatedReadingTime"` // minutes at ReferenceWPM
	FileName             string `json:"fileName"`
}

// AssembleMetadata derives summary metadata. Never fails.
func AssembleMetadata(totalPages int, words []string, fileName string) Metadata {
	total := len(words)
	return Metadata{
		TotalPages:           totalPages,
		TotalWords:           total,
		EstimatedReadingTime: (total + ReferenceWPM - 1) / ReferenceWPM,
		FileName:             fileName,
	}
}
