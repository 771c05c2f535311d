package sse

import (
	"fmt"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	got := Extract("event: ping\ndata: hello\nid: 5\ndata: world\n")
	if got != "hello\nworld" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractPassThrough(t *testing.T) {
	// Lines without framing pass through unchanged; blank lines are dropped.
	got := Extract("plain line\n\nretry: 3000\ndata:   spaced")
	if got != "plain line\nspaced" {
		t.Fatalf("got %q", got)
	}
}

func TestExtractEmptyData(t *testing.T) {
	if got := Extract("data:\ndata: \n"); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
}

func TestClip(t *testing.T) {
	text := numberedLines(1, 10)
	got := Clip(text, 3)
	if got != "line8\nline9\nline10" {
		t.Fatalf("got %q", got)
	}
	if Clip(text, 10) != text {
		t.Fatalf("clip at exact size should be a no-op")
	}
	if Clip(text, 0) != text {
		t.Fatalf("non-positive max should be a no-op")
	}
}

func TestMergeBounds(t *testing.T) {
	old := numberedLines(1, 1000)
	chunk := numberedLines(2001, 2050)
	got := Merge(old, chunk, 1000)
	lines := strings.Split(got, "\n")
	if len(lines) != 1000 {
		t.Fatalf("merged length: %d", len(lines))
	}
	// Last 950 old lines, then all 50 new ones.
	if lines[0] != "line51" {
		t.Fatalf("first line: %s", lines[0])
	}
	if lines[949] != "line1000" {
		t.Fatalf("last old line: %s", lines[949])
	}
	if lines[950] != "line2001" || lines[999] != "line2050" {
		t.Fatalf("new lines misplaced: %s .. %s", lines[950], lines[999])
	}
}

func TestMergeOversizedChunk(t *testing.T) {
	// A single chunk larger than the cap is clipped before concatenation.
	got := Merge("old", numberedLines(1, 1500), 1000)
	lines := strings.Split(got, "\n")
	if len(lines) != 1000 {
		t.Fatalf("merged length: %d", len(lines))
	}
	if lines[0] != "line501" {
		t.Fatalf("first line: %s", lines[0])
	}
}

func TestMergeIntoEmpty(t *testing.T) {
	if got := Merge("", "a\nb", 1000); got != "a\nb" {
		t.Fatalf("got %q", got)
	}
}

func numberedLines(from, to int) string {
	parts := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		parts = append(parts, fmt.Sprintf("line%d", i))
	}
	return strings.Join(parts, "\n")
}
