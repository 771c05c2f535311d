package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clashview/internal/session"
	"clashview/internal/version"
)

const (
	outputRegionHeight = 5
	navRegionHeight    = 2
)

func (m *Model) contentWidth() int {
	if m.termWidth <= 0 {
		return 80
	}
	return m.termWidth - 2 // border
}

func (m *Model) contentHeight() int {
	h := m.termHeight - outputRegionHeight - navRegionHeight - 2 // border
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) View() string {
	content := m.renderPage()
	output := m.renderOutput()
	nav := m.renderTabs()
	return lipgloss.JoinVertical(lipgloss.Left, content, output, nav)
}

func (m *Model) renderPage() string {
	var body string
	switch m.sess.CurrentPage {
	case session.PageProxy:
		body = m.centered("Proxy Page")
	case session.PageLog:
		body = m.renderLogPage()
	case session.PageSettings:
		body = m.renderSettingsPage()
	default:
		body = m.renderConfigPage()
	}
	box := m.styles.Border.Width(m.contentWidth()).Height(m.contentHeight())
	title := m.styles.Title.Render(m.sess.CurrentPage.Title())
	return box.Render(title + "\n" + body)
}

func (m *Model) renderLogPage() string {
	if m.sess.LogsLoading {
		return m.centered(m.styles.Loading.Render(m.spin.View() + " Loading logs..."))
	}
	if m.sess.LogsLoaded {
		return m.logView.View()
	}
	return m.centered(m.styles.Hint.Render("Press 'L' to load logs"))
}

func (m *Model) renderSettingsPage() string {
	lines := []string{
		"Settings Page",
		"",
		m.styles.Hint.Render("controller: " + m.cfg.APIURL),
		m.styles.Hint.Render("clashview " + version.String()),
	}
	return m.centered(strings.Join(lines, "\n"))
}

func (m *Model) renderConfigPage() string {
	if m.sess.Loading {
		return m.centered(m.styles.Loading.Render(m.spin.View() + " Loading configs..."))
	}
	if m.sess.Err != "" {
		return m.centered(m.styles.ErrorText.Render(m.sess.Err))
	}
	if m.sess.Configs == nil {
		return m.centered(m.styles.Hint.Render("Press Enter or R to load configs"))
	}
	text := m.sess.PrettyConfigs()
	view := clipLines(text, m.sess.ScrollOffset, m.contentHeight()-2)
	pos := fmt.Sprintf("line %d/%d", m.sess.ScrollPos+1, m.sess.ScrollBound+1)
	return view + "\n" + m.styles.Status.Render(pos)
}

func (m *Model) renderOutput() string {
	out := m.sess.Output
	style := m.styles.Output
	if out == "" {
		out = "No output"
		style = m.styles.Hint
	}
	box := m.styles.Border.Width(m.contentWidth()).Height(outputRegionHeight - 2)
	return box.Render(style.Render(out))
}

func (m *Model) renderTabs() string {
	titles := make([]string, 0, 4)
	for i := 0; i < 4; i++ {
		p := session.PageFromIndex(i)
		t := p.Title()
		if p == m.sess.CurrentPage {
			t = m.styles.TabActive.Render(t)
		} else {
			t = m.styles.TabInactive.Render(t)
		}
		titles = append(titles, t)
	}
	bar := strings.Join(titles, m.styles.TabInactive.Render(" | "))
	hint := m.styles.Status.Render("←/→ pages  ↑/↓ scroll  q quit")
	return bar + "\n" + hint
}

func (m *Model) centered(s string) string {
	w := m.contentWidth()
	h := m.contentHeight() - 1
	if w <= 0 || h <= 0 {
		return s
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, s)
}

// clipLines renders the window of text starting at offset, count lines tall.
// Scrolling past the end yields a shrinking tail rather than an error.
func clipLines(text string, offset, count int) string {
	if count <= 0 {
		return ""
	}
	lines := strings.Split(text, "\n")
	if offset >= len(lines) {
		return ""
	}
	if offset < 0 {
		offset = 0
	}
	end := offset + count
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[offset:end], "\n")
}
