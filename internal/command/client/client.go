package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/server"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

// ErrAPI 表示服务器返回了非 2xx 状态。
var ErrAPI = errors.New("api error")

// Client 是 serve API 的客户端。
type Client struct {
	base    string
	http    *http.Client
	retries int
	backoff time.Duration
}

// NewClient 按设置创建客户端。
func NewClient(cfg config.ClientConfig) *Client {
	return &Client{
		base:    strings.TrimRight(cfg.URL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		retries: max(cfg.Retries, 0),
		backoff: 200 * time.Millisecond,
	}
}

// Health 检查服务器健康状态。
func (c *Client) Health(ctx context.Context) error {
	var body map[string]string
	if err := c.do(ctx, http.MethodGet, "/health", nil, &body); err != nil {
		return err
	}
	if body["status"] != "ok" {
		return fmt.Errorf("%w: unexpected health status %q", ErrAPI, body["status"])
	}

	return nil
}

// Explain 远程解释 content，name 只用于错误信息。
func (c *Client) Explain(ctx context.Context, name string, content []byte) ([]explain.Entry, error) {
	var entries []explain.Entry
	err := c.do(ctx, http.MethodPost, "/explain?"+url.Values{"name": {name}}.Encode(), content, &entries)

	return entries, err
}

// Validate 远程校验 content。
func (c *Client) Validate(ctx context.Context, name string, content []byte, disable []string) (validate.Report, error) {
	q := url.Values{"name": {name}}
	if len(disable) > 0 {
		q.Set("disable", strings.Join(disable, ","))
	}

	var report validate.Report
	err := c.do(ctx, http.MethodPost, "/validate?"+q.Encode(), content, &report)

	return report, err
}

// Diff 远程比较两份配置。
func (c *Client) Diff(ctx context.Context, req server.DiffRequest) (render.DiffResult, error) {
	var result render.DiffResult
	body, err := json.Marshal(req)
	if err != nil {
		return result, err
	}
	err = c.do(ctx, http.MethodPost, "/diff", body, &result)

	return result, err
}

// Template 获取模板原文。
func (c *Client) Template(ctx context.Context, projectType string) ([]byte, error) {
	var raw json.RawMessage
	err := c.do(ctx, http.MethodGet, "/templates/"+url.PathEscape(projectType), nil, &raw)

	return raw, err
}

// do 发送请求并解码 JSON 响应；网络错误与 5xx 会按 retries 重试。
func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			slog.Debug("Retrying request", "path", path, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.backoff * time.Duration(attempt)):
			}
		}

		retry, err := c.once(ctx, method, path, body, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retry {
			break
		}
	}

	return lastErr
}

func (c *Client) once(ctx context.Context, method, path string, body []byte, out any) (bool, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return false, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return true, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr struct {
			Error string `json:"error"`
		}
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			msg = apiErr.Error
		}
		return resp.StatusCode >= http.StatusInternalServerError, fmt.Errorf("%w: %s (%d)", ErrAPI, msg, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}

	return false, nil
}
