package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// The model is asked for a lone JSON object but routinely wraps it in prose
// or a code fence. Each way that can go wrong is a distinct error so callers
// can report what actually happened.
var (
	ErrNoJSON      = errors.New("ai reply contains no JSON object")
	ErrInvalidJSON = errors.New("ai reply contains malformed JSON")
	ErrWrongShape  = errors.New("ai reply JSON has an unexpected shape")
)

// ExtractObject locates the first balanced {...} span in a free-text reply
// and unmarshals it into v.
func ExtractObject(reply string, v any) error {
	span, err := firstObjectSpan(reply)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(span), v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return nil
}

// firstObjectSpan scans for the first '{' and returns the substring up to
// its balancing '}', honoring JSON string literals and escapes.
func firstObjectSpan(s string) (string, error) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", ErrNoJSON
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: unbalanced braces", ErrInvalidJSON)
}
