package diff

import (
	"fmt"
	"strings"
	"testing"
)

func TestUnified_IdenticalContent(t *testing.T) {
	content := []byte("{\n  \"name\": \"Ahmed Ali\"\n}\n")

	if result := Unified(content, content, "before", "after"); result != "" {
		t.Errorf("Expected empty diff for identical content, got: %s", result)
	}
}

func TestUnified_SingleFieldChange(t *testing.T) {
	before := []byte("{\n  \"name\": \"Ahmed Ali\",\n  \"bio\": \"hi\"\n}\n")
	after := []byte("{\n  \"name\": \"Sara Kim\",\n  \"bio\": \"hi\"\n}\n")

	result := Unified(before, after, "saved", "edited")

	if !strings.Contains(result, "--- saved") || !strings.Contains(result, "+++ edited") {
		t.Error("Diff should contain unified diff headers")
	}
	if !strings.Contains(result, "-  \"name\": \"Ahmed Ali\",") {
		t.Errorf("Diff should show the removed line, got:\n%s", result)
	}
	if !strings.Contains(result, "+  \"name\": \"Sara Kim\",") {
		t.Errorf("Diff should show the added line, got:\n%s", result)
	}
	if !strings.Contains(result, "   \"bio\": \"hi\"") {
		t.Errorf("Diff should keep unchanged lines as context, got:\n%s", result)
	}
}

func TestUnified_Truncates(t *testing.T) {
	var before, after strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		fmt.Fprintf(&before, "a%d\n", i)
		fmt.Fprintf(&after, "b%d\n", i)
	}

	result := Unified([]byte(before.String()), []byte(after.String()), "a", "b")
	if !strings.HasSuffix(result, truncateMessage+"\n") {
		t.Error("Expected oversized diff to end with the truncation marker")
	}
}

func TestChanged(t *testing.T) {
	before := []byte("a\nb\nc\n")
	after := []byte("a\nB\nc\n")

	got := Changed(before, after)
	if len(got) != 2 || got[0] != "-b" || got[1] != "+B" {
		t.Errorf("Changed() = %q, want [-b +B]", got)
	}
	if Changed(before, before) != nil {
		t.Error("Expected no changes for identical content")
	}
}

func TestInline(t *testing.T) {
	got := Inline("Digital Creator | Tech Enthusiast", "Digital Artist | Tech Enthusiast")

	if !strings.Contains(got, "[-") || !strings.Contains(got, "{+") {
		t.Errorf("Inline() should mark removed and added runs, got %q", got)
	}
	if !strings.Contains(got, "| Tech Enthusiast") {
		t.Errorf("Inline() should keep the unchanged tail, got %q", got)
	}
	if Inline("same", "same") != "same" {
		t.Error("Inline() of identical text should return it unchanged")
	}
}
