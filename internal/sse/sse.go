// Package sse turns a raw server-sent-events payload into a bounded,
// human-readable scrollback buffer.
package sse

import "strings"

// DefaultMaxLines is the scrollback cap applied by Merge when callers pass 0.
const DefaultMaxLines = 1000

// Extract strips SSE framing from a raw payload and returns the payload
// lines joined by newlines. Meta lines (event:, id:, retry:) are dropped,
// "data:" prefixes are removed together with any whitespace right after
// them, and lines left empty are discarded. Lines without any framing pass
// through unchanged.
func Extract(raw string) string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "event:") || strings.HasPrefix(line, "id:") || strings.HasPrefix(line, "retry:") {
			continue
		}
		content := line
		if strings.HasPrefix(line, "data:") {
			content = strings.TrimLeft(strings.TrimPrefix(line, "data:"), " \t")
		}
		if content == "" {
			continue
		}
		out = append(out, content)
	}
	return strings.Join(out, "\n")
}

// Clip keeps only the trailing max lines of text. max <= 0 means no limit.
func Clip(text string, max int) string {
	if max <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= max {
		return text
	}
	return strings.Join(lines[len(lines)-max:], "\n")
}

// Merge appends a new parsed chunk onto an accumulated buffer, keeping the
// result within max lines. The chunk is clipped on its own first, then the
// concatenation is clipped again, so even a single oversized chunk cannot
// grow the buffer past the cap. Eviction is strictly oldest-first.
func Merge(existing, chunk string, max int) string {
	if max <= 0 {
		max = DefaultMaxLines
	}
	chunk = Clip(chunk, max)
	if existing == "" {
		return chunk
	}
	return Clip(existing+"\n"+chunk, max)
}
