package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

type Config struct {
	APIURL         string
	Secret         string
	LogLevel       string // level filter passed to the /logs endpoint (empty = all)
	MaxLogLines    int
	Theme          Theme
	HTTPTimeoutSec int
	DelayTestURL   string
	ShowVersion    bool
}

func Load() (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("clashview", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	fs.StringVar(&cfg.APIURL, "api", getenvDefault("CLASHVIEW_API_URL", "http://127.0.0.1:9090"), "base URL of the clash/mihomo external controller")
	fs.StringVar(&cfg.Secret, "secret", getenvDefault("CLASHVIEW_SECRET", ""), "bearer secret for the controller (or CLASHVIEW_SECRET)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "log level filter for the /logs stream: debug|info|warning|error|silent (empty = controller default)")
	fs.IntVar(&cfg.MaxLogLines, "max-log-lines", 1000, "log scrollback cap in lines (min 100)")
	theme := string(ThemeDark)
	fs.StringVar(&theme, "theme", string(ThemeDark), "theme: dark|light")
	fs.IntVar(&cfg.HTTPTimeoutSec, "timeout-sec", getenvDefaultInt("CLASHVIEW_TIMEOUT_SEC", 15), "controller request timeout in seconds")
	fs.StringVar(&cfg.DelayTestURL, "delay-url", "http://www.gstatic.com/generate_204", "probe URL for proxy delay tests")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}
	cfg.Theme = Theme(theme)

	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")
	if _, err := url.Parse(cfg.APIURL); err != nil {
		return nil, fmt.Errorf("invalid --api URL: %w", err)
	}
	if cfg.APIURL == "" {
		return nil, errors.New("--api must not be empty")
	}
	if cfg.MaxLogLines < 100 {
		cfg.MaxLogLines = 100
	}
	if cfg.HTTPTimeoutSec <= 0 {
		cfg.HTTPTimeoutSec = 15
	}

	return cfg, nil
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getenvDefaultInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func (c *Config) String() string {
	return fmt.Sprintf("api=%s secret-set=%v log-level=%q max-log-lines=%d theme=%s", c.APIURL, c.Secret != "", c.LogLevel, c.MaxLogLines, c.Theme)
}
