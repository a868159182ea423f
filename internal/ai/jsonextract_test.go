package ai

import (
	"errors"
	"testing"
)

func TestExtractObject_PlainObject(t *testing.T) {
	var v struct {
		A int `json:"a"`
	}
	if err := ExtractObject(`{"a": 7}`, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.A != 7 {
		t.Errorf("expected a=7, got %d", v.A)
	}
}

func TestExtractObject_SurroundedByProse(t *testing.T) {
	reply := "Sure! Here is the JSON you asked for:\n\n" +
		`{"score": 85, "feedback": "good"}` +
		"\n\nLet me know if you need anything else."
	var v struct {
		Score    float64 `json:"score"`
		Feedback string  `json:"feedback"`
	}
	if err := ExtractObject(reply, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Score != 85 || v.Feedback != "good" {
		t.Errorf("unexpected values: %+v", v)
	}
}

func TestExtractObject_NestedObjectsAndStrings(t *testing.T) {
	reply := `prefix {"outer": {"inner": "has } brace and \" quote"}, "n": 2} suffix`
	var v struct {
		Outer struct {
			Inner string `json:"inner"`
		} `json:"outer"`
		N int `json:"n"`
	}
	if err := ExtractObject(reply, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.N != 2 {
		t.Errorf("expected n=2, got %d", v.N)
	}
	if v.Outer.Inner != `has } brace and " quote` {
		t.Errorf("unexpected inner string %q", v.Outer.Inner)
	}
}

func TestExtractObject_NoBraces(t *testing.T) {
	var v map[string]any
	err := ExtractObject("the model refused and wrote an apology instead", &v)
	if !errors.Is(err, ErrNoJSON) {
		t.Errorf("expected ErrNoJSON, got %v", err)
	}
}

func TestExtractObject_UnbalancedBraces(t *testing.T) {
	var v map[string]any
	err := ExtractObject(`{"a": 1, "b": {"c": 2}`, &v)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}

func TestExtractObject_BalancedButNotJSON(t *testing.T) {
	var v map[string]any
	err := ExtractObject("a set {1, 2, 3} is not an object", &v)
	if !errors.Is(err, ErrInvalidJSON) {
		t.Errorf("expected ErrInvalidJSON, got %v", err)
	}
}
