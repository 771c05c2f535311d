// Package ui is the Bubble Tea front end. It owns no domain state of its
// own: every frame is drawn from the session, and every key event mutates
// the session synchronously before the next frame. A load therefore blocks
// the render loop until it completes, reproducing the dashboard's
// one-operation-at-a-time model.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"clashview/internal/api"
	"clashview/internal/config"
	"clashview/internal/session"
	"clashview/internal/util/logx"
)

type Model struct {
	ctx  context.Context
	cfg  *config.Config
	sess *session.Session

	logView    viewport.Model
	spin       spinner.Model
	styles     Styles
	keymap     KeyMap
	termWidth  int
	termHeight int
}

func initialModel(ctx context.Context, cfg *config.Config, sess *session.Session) *Model {
	m := &Model{
		ctx:    ctx,
		cfg:    cfg,
		sess:   sess,
		styles: NewStyles(cfg.Theme == config.ThemeDark),
		keymap: DefaultKeyMap(),
		spin:   spinner.New(),
	}
	m.spin.Spinner = spinner.Dot
	m.logView = viewport.New(80, 20)
	return m
}

func Run(ctx context.Context, cfg *config.Config) error {
	client := api.New(cfg.APIURL, cfg.Secret, time.Duration(cfg.HTTPTimeoutSec)*time.Second)
	sess := session.New(ctx, client, session.Options{
		LogLevel:    cfg.LogLevel,
		MaxLogLines: cfg.MaxLogLines,
	})
	m := initialModel(ctx, cfg, sess)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return m.spin.Tick
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth, m.termHeight = msg.Width, msg.Height
		m.logView.Width = m.contentWidth()
		m.logView.Height = m.contentHeight()
		m.syncLogView()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keymap
	switch {
	case msg.Type == tea.KeyCtrlC, keyMatches(msg, km.Escape), keyMatchesFold(msg, km.Quit):
		return m, tea.Quit
	case keyMatches(msg, km.PrevPage):
		m.sess.PrevPage()
	case keyMatches(msg, km.NextPage):
		m.sess.NextPage()
	case keyMatches(msg, km.ScrollUp):
		if m.sess.CurrentPage == session.PageLog {
			m.logView.LineUp(1)
		} else {
			m.sess.ScrollUp()
		}
	case keyMatches(msg, km.ScrollDown):
		if m.sess.CurrentPage == session.PageLog {
			m.logView.LineDown(1)
		} else {
			m.sess.ScrollDown()
		}
	case keyMatches(msg, km.LoadConfigs):
		if m.sess.CurrentPage == session.PageConfig && m.sess.Configs == nil {
			m.sess.LoadConfigs()
			m.reportConfigOutcome()
		}
	case keyMatchesFold(msg, km.Reload):
		if m.sess.CurrentPage == session.PageConfig {
			m.sess.ReloadRequest()
			m.reportConfigOutcome()
		}
	case keyMatchesFold(msg, km.LoadLogs):
		if m.sess.CurrentPage == session.PageLog {
			m.sess.LoadLogs()
			m.syncLogView()
			m.logView.GotoBottom()
			m.sess.SetOutput("logs refreshed")
		}
	}
	return m, nil
}

func (m *Model) reportConfigOutcome() {
	if m.sess.Err != "" {
		m.sess.SetOutput(m.sess.Err)
		return
	}
	m.sess.SetOutput("configs loaded")
	logx.Debugf("configs loaded, scroll bound %d", m.sess.ScrollBound)
}

func (m *Model) syncLogView() {
	if m.sess.LogsLoaded {
		m.logView.SetContent(m.sess.Logs)
	}
}
