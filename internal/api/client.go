// Package api is a thin client for the clash/mihomo external controller
// (RESTful control API). Every call attaches the bearer secret; failures are
// either a TransportError (endpoint unreachable) or a ProtocolError
// (endpoint answered badly).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL string
	secret  string
	http    *http.Client
}

// New builds a client for the controller at baseURL. A zero timeout falls
// back to 15s, matching the controller's own defaults.
func New(baseURL, secret string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, err
	}
	if c.secret != "" {
		req.Header.Set("Authorization", "Bearer "+c.secret)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}

// do runs the request and enforces the error taxonomy. On success the
// response body is returned unread; the caller owns closing it.
func (c *Client) do(op string, req *http.Request) (*http.Response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, &ProtocolError{Op: op, Status: resp.StatusCode}
	}
	return resp, nil
}

func (c *Client) getJSON(ctx context.Context, op, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &ProtocolError{Op: op, Err: err}
	}
	return nil
}

func (c *Client) putJSON(ctx context.Context, op, path string, body any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &ProtocolError{Op: op, Err: err}
		}
		rd = bytes.NewReader(b)
	}
	req, err := c.newRequest(ctx, http.MethodPut, path, rd)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	resp, err := c.do(op, req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// Configs fetches the current controller configuration (GET /configs).
func (c *Client) Configs(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "configs", "/configs", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ReloadConfigs asks the controller to (re)load its configuration
// (PUT /configs). Either a file path or an inline payload may be given;
// force skips the controller's change detection.
func (c *Client) ReloadConfigs(ctx context.Context, path, payload string, force bool) error {
	body := map[string]string{}
	if path != "" {
		body["path"] = path
	}
	if payload != "" {
		body["payload"] = payload
	}
	var b any
	if len(body) > 0 {
		b = body
	}
	return c.putJSON(ctx, "reload configs", fmt.Sprintf("/configs?force=%v", force), b)
}

// Proxies lists all proxies and groups (GET /proxies).
func (c *Client) Proxies(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "proxies", "/proxies", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Proxy fetches a single proxy or group by name (GET /proxies/{name}).
func (c *Client) Proxy(ctx context.Context, name string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "proxy", "/proxies/"+url.PathEscape(name), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// SelectProxy switches the active proxy of a selector group
// (PUT /proxies/{group}).
func (c *Client) SelectProxy(ctx context.Context, group, name string) error {
	return c.putJSON(ctx, "select proxy", "/proxies/"+url.PathEscape(group), map[string]string{"name": name})
}

// ProxyDelay probes one proxy's latency in milliseconds
// (GET /proxies/{name}/delay). The result is non-negative; a probe that
// times out surfaces as an error from the controller, not a sentinel value.
func (c *Client) ProxyDelay(ctx context.Context, name, testURL string, timeout time.Duration) (int, error) {
	q := url.Values{}
	q.Set("url", testURL)
	q.Set("timeout", fmt.Sprint(timeout.Milliseconds()))
	path := "/proxies/" + url.PathEscape(name) + "/delay?" + q.Encode()
	var out map[string]int
	if err := c.getJSON(ctx, "proxy delay", path, &out); err != nil {
		return 0, err
	}
	delay, ok := out["delay"]
	if !ok {
		return 0, &ProtocolError{Op: "proxy delay", Err: fmt.Errorf("delay field not found")}
	}
	if delay < 0 {
		return 0, &ProtocolError{Op: "proxy delay", Err: fmt.Errorf("negative delay %d", delay)}
	}
	return delay, nil
}

// Rules lists the routing rules (GET /rules).
func (c *Client) Rules(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, "rules", "/rules", &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Version returns the controller version string, trimmed (GET /version).
func (c *Client) Version(ctx context.Context) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/version", nil)
	if err != nil {
		return "", &TransportError{Op: "version", Err: err}
	}
	resp, err := c.do("version", req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &TransportError{Op: "version", Err: err}
	}
	return strings.TrimSpace(string(b)), nil
}

// Logs opens the controller's SSE log stream (GET /logs). The returned body
// is a live stream; the caller reads and closes it. level filters server-side
// when non-empty.
func (c *Client) Logs(ctx context.Context, level string) (io.ReadCloser, error) {
	path := "/logs"
	if level != "" {
		path += "?level=" + url.QueryEscape(level)
	}
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &TransportError{Op: "logs", Err: err}
	}
	resp, err := c.do("logs", req)
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}
