package ai

import (
	"context"
	"fmt"
	"strings"
)

// SessionStats summarizes one finished reading session for analysis.
type SessionStats struct {
	WordGoal       int     `json:"wordGoal"`
	WordsRead      int     `json:"wordsRead"`
	TargetWPM      int     `json:"targetWPM"`
	ActualWPM      int     `json:"actualWPM"`
	TimeSpent      int     `json:"timeSpent"` // seconds
	CompletionRate float64 `json:"completionRate"`
}

// Analysis is the coach-style feedback for a session.
type Analysis struct {
	Summary      string   `json:"summary"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
	NextGoal     string   `json:"nextGoal"`
}

// AnalyzeSession asks the model to review a finished session's numbers.
func (c *Client) AnalyzeSession(ctx context.Context, stats SessionStats) (*Analysis, error) {
	var sb strings.Builder
	sb.WriteString("You are a reading coach analyzing a user's reading session.\n\n")
	sb.WriteString("SESSION DATA:\n")
	fmt.Fprintf(&sb, "- Goal: %d words\n", stats.WordGoal)
	fmt.Fprintf(&sb, "- Actually Read: %d words (%.1f%%)\n", stats.WordsRead, stats.CompletionRate)
	fmt.Fprintf(&sb, "- Target Speed: %d WPM\n", stats.TargetWPM)
	fmt.Fprintf(&sb, "- Actual Speed: %d WPM\n", stats.ActualWPM)
	fmt.Fprintf(&sb, "- Time Spent: %dm %ds\n\n", stats.TimeSpent/60, stats.TimeSpent%60)
	sb.WriteString(`Provide a JSON response with:
{
  "summary": "Brief 1-sentence performance overview",
  "strengths": ["what they did well", "another strength"],
  "improvements": ["actionable tip 1", "actionable tip 2"],
  "nextGoal": "Specific suggestion for next session"
}

Be encouraging but honest. Focus on actionable insights.`)

	reply, err := c.generate(ctx, sb.String())
	if err != nil {
		return nil, fmt.Errorf("analyze session: %w", err)
	}

	var analysis Analysis
	if err := ExtractObject(reply, &analysis); err != nil {
		return nil, fmt.Errorf("analyze session: %w", err)
	}
	return &analysis, nil
}
