package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	PrevPage    tea.Key
	NextPage    tea.Key
	ScrollUp    tea.Key
	ScrollDown  tea.Key
	LoadConfigs tea.Key
	Reload      tea.Key
	LoadLogs    tea.Key
	Quit        tea.Key
	Escape      tea.Key
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		PrevPage:    tea.Key{Type: tea.KeyLeft},
		NextPage:    tea.Key{Type: tea.KeyRight},
		ScrollUp:    tea.Key{Type: tea.KeyUp},
		ScrollDown:  tea.Key{Type: tea.KeyDown},
		LoadConfigs: tea.Key{Type: tea.KeyEnter},
		Reload:      tea.Key{Type: tea.KeyRunes, Runes: []rune{'r'}},
		LoadLogs:    tea.Key{Type: tea.KeyRunes, Runes: []rune{'l'}},
		Quit:        tea.Key{Type: tea.KeyRunes, Runes: []rune{'q'}},
		Escape:      tea.Key{Type: tea.KeyEsc},
	}
}

func keyMatches(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes {
		return msg.Type == k.Type
	}
	if len(k.Runes) > 0 {
		return msg.String() == string(k.Runes)
	}
	return false
}

// keyMatchesFold is keyMatches for letter keys where upper- and lowercase
// both trigger the action.
func keyMatchesFold(msg tea.KeyMsg, k tea.Key) bool {
	if k.Type != tea.KeyRunes || len(k.Runes) == 0 {
		return keyMatches(msg, k)
	}
	return strings.EqualFold(msg.String(), string(k.Runes))
}
