package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClipLines(t *testing.T) {
	text := "a\nb\nc\nd"
	if got := clipLines(text, 1, 2); got != "b\nc" {
		t.Fatalf("got %q", got)
	}
	if got := clipLines(text, 3, 5); got != "d" {
		t.Fatalf("tail clip: %q", got)
	}
	if got := clipLines(text, 10, 2); got != "" {
		t.Fatalf("past-end clip: %q", got)
	}
}

func TestKeyMatchesFold(t *testing.T) {
	k := tea.Key{Type: tea.KeyRunes, Runes: []rune{'r'}}
	lower := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	upper := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'R'}}
	other := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}
	if !keyMatchesFold(lower, k) || !keyMatchesFold(upper, k) {
		t.Fatalf("case-insensitive match failed")
	}
	if keyMatchesFold(other, k) {
		t.Fatalf("matched wrong rune")
	}
	esc := tea.Key{Type: tea.KeyEsc}
	if !keyMatchesFold(tea.KeyMsg{Type: tea.KeyEsc}, esc) {
		t.Fatalf("special key match failed")
	}
}
