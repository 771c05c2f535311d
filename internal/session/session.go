// Package session holds the dashboard's mutable state and the operations
// the input handler runs against it. Every operation runs to completion
// before the next frame is drawn; at most one controller request is ever in
// flight.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"clashview/internal/sse"
	"clashview/internal/util/logx"
)

// ControlClient is the slice of the controller API the session drives
// directly. The concrete client in internal/api satisfies it.
type ControlClient interface {
	Configs(ctx context.Context) (json.RawMessage, error)
	Logs(ctx context.Context, level string) (io.ReadCloser, error)
}

type Options struct {
	LogLevel    string // server-side filter for the log stream, empty = all
	MaxLogLines int    // scrollback cap, 0 = sse.DefaultMaxLines
}

// Session is the root state object. It is created once at startup, mutated
// in place by handled input events, and read (never mutated) by the
// renderer. Nothing survives process exit.
type Session struct {
	ctx    context.Context
	client ControlClient
	opts   Options

	CurrentPage Page

	// Config page
	Configs json.RawMessage // nil until the first successful load
	Loading bool
	Err     string

	// Scroll/viewport for the config page. ScrollOffset grows without an
	// upper bound here (the renderer clips); ScrollPos is the scrollbar
	// position, clamped to ScrollBound.
	ScrollOffset int
	ScrollBound  int
	ScrollPos    int

	// Log page
	Logs        string
	LogsLoaded  bool // distinguishes an empty buffer from no buffer at all
	LogsLoading bool

	// Output shown in the status region under the content area.
	Output string
}

func New(ctx context.Context, client ControlClient, opts Options) *Session {
	if opts.MaxLogLines <= 0 {
		opts.MaxLogLines = sse.DefaultMaxLines
	}
	return &Session{
		ctx:         ctx,
		client:      client,
		opts:        opts,
		CurrentPage: PageProxy,
	}
}

// LoadConfigs fetches the controller configuration. On failure the previous
// document (if any) stays visible behind the error message; a failed load
// never poisons a later one.
func (s *Session) LoadConfigs() {
	s.Loading = true
	s.Err = ""

	raw, err := s.client.Configs(s.ctx)
	if err != nil {
		s.Err = fmt.Sprintf("Failed to load configs: %v", err)
		logx.Warnf("config load failed: %v", err)
	} else {
		s.Configs = raw
		s.ScrollBound = maxInt(0, lineCount(s.PrettyConfigs())-1)
		s.syncScrollbar()
	}

	s.Loading = false
}

// ReloadRequest discards the cached configuration and fetches again. This is
// the only way to re-fetch after a successful load.
func (s *Session) ReloadRequest() {
	s.Configs = nil
	s.LoadConfigs()
}

// LoadLogs opens the controller's log stream, reads it to completion, and
// merges the extracted lines into the scrollback buffer. Failures append an
// error line instead of discarding the buffer.
func (s *Session) LoadLogs() {
	s.LogsLoading = true

	stream, err := s.client.Logs(s.ctx, s.opts.LogLevel)
	if err != nil {
		s.appendLogLine(fmt.Sprintf("Failed to load logs: %v", err))
		logx.Warnf("log stream open failed: %v", err)
		s.LogsLoading = false
		return
	}
	body, err := io.ReadAll(stream)
	stream.Close()
	if err != nil {
		s.appendLogLine(fmt.Sprintf("Error reading logs: %v", err))
		logx.Warnf("log stream read failed: %v", err)
		s.LogsLoading = false
		return
	}

	chunk := sse.Extract(string(body))
	if s.LogsLoaded {
		s.Logs = sse.Merge(s.Logs, chunk, s.opts.MaxLogLines)
	} else {
		s.Logs = sse.Clip(chunk, s.opts.MaxLogLines)
		s.LogsLoaded = true
	}

	s.LogsLoading = false
}

func (s *Session) appendLogLine(line string) {
	if s.LogsLoaded {
		s.Logs += "\n" + line
		return
	}
	s.Logs = line
	s.LogsLoaded = true
}

// NextPage moves one page right; PrevPage one page left. Entering the config
// page lazily loads the configuration once per session; an explicit
// ReloadRequest is the only way to force another fetch.
func (s *Session) NextPage() {
	s.CurrentPage = s.CurrentPage.Next()
	s.enterPage()
}

func (s *Session) PrevPage() {
	s.CurrentPage = s.CurrentPage.Prev()
	s.enterPage()
}

func (s *Session) enterPage() {
	if s.CurrentPage == PageConfig && s.Configs == nil && !s.Loading {
		s.LoadConfigs()
	}
}

func (s *Session) ScrollDown() {
	s.ScrollOffset++
	s.syncScrollbar()
}

func (s *Session) ScrollUp() {
	if s.ScrollOffset > 0 {
		s.ScrollOffset--
	}
	s.syncScrollbar()
}

func (s *Session) syncScrollbar() {
	pos := s.ScrollOffset
	if pos > s.ScrollBound {
		pos = s.ScrollBound
	}
	s.ScrollPos = pos
}

func (s *Session) SetOutput(out string) { s.Output = out }
func (s *Session) ClearOutput()         { s.Output = "" }

// PrettyConfigs is the config document as displayed: indented JSON. Empty
// when nothing has been loaded.
func (s *Session) PrettyConfigs() string {
	if s.Configs == nil {
		return ""
	}
	var v any
	if err := json.Unmarshal(s.Configs, &v); err != nil {
		return string(s.Configs)
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return string(s.Configs)
	}
	return string(b)
}

func lineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
