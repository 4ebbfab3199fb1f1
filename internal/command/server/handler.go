package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/templates"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/tsconfig"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

// DiffRequest 是 POST /diff 的请求体，A 与 B 为 tsconfig 原文（允许注释）。
type DiffRequest struct {
	A        string `json:"a"`
	B        string `json:"b"`
	NameA    string `json:"nameA,omitempty"`
	NameB    string `json:"nameB,omitempty"`
	HideSame bool   `json:"hideSame,omitempty"`
}

type handler struct {
	db       *optiondb.DB
	disabled []string
	maxBody  int64
	metrics  *metrics
}

// NewHandler 返回 API 路由。
//
//	GET  /health
//	POST /explain            body: tsconfig 原文
//	POST /validate?disable=  body: tsconfig 原文
//	POST /diff               body: DiffRequest
//	GET  /templates/{type}
//	GET  /options/{name}
//	GET  /metrics
func NewHandler(db *optiondb.DB, cfg *config.Config) http.Handler {
	h := &handler{
		db:       db,
		disabled: cfg.Validate.Disable,
		maxBody:  cfg.Server.MaxBody,
		metrics:  newMetrics(),
	}

	mux := http.NewServeMux()
	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("POST /explain", h.metrics.instrument("explain", h.explain))
	mux.Handle("POST /validate", h.metrics.instrument("validate", h.validate))
	mux.Handle("POST /diff", h.metrics.instrument("diff", h.diff))
	mux.Handle("GET /templates/{type}", h.metrics.instrument("templates", h.template))
	mux.Handle("GET /options/{name}", h.metrics.instrument("options", h.option))
	mux.Handle("GET /metrics", h.metrics.handler())

	return mux
}

func (h *handler) explain(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.readConfig(w, r)
	if !ok {
		return
	}

	entries := explain.Explain(cfg, h.db)
	if entries == nil {
		entries = []explain.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *handler) validate(w http.ResponseWriter, r *http.Request) {
	cfg, ok := h.readConfig(w, r)
	if !ok {
		return
	}

	disabled := append([]string{}, h.disabled...)
	if q := r.URL.Query().Get("disable"); q != "" {
		disabled = append(disabled, strings.Split(q, ",")...)
	}
	if unknown := validate.CheckRuleIDs(disabled); len(unknown) > 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown rule(s): %s", strings.Join(unknown, ", ")))
		return
	}

	report := validate.Validate(cfg, validate.WithDisabled(disabled...))
	for _, issue := range report.Issues {
		h.metrics.issues.WithLabelValues(string(issue.Severity)).Inc()
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *handler) diff(w http.ResponseWriter, r *http.Request) {
	var req DiffRequest
	body, ok := h.readBody(w, r)
	if !ok {
		return
	}
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.NameA == "" {
		req.NameA = "a"
	}
	if req.NameB == "" {
		req.NameB = "b"
	}

	a, err := tsconfig.Parse(req.NameA, []byte(req.A))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	b, err := tsconfig.Parse(req.NameB, []byte(req.B))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries := diff.Compare(a, b)
	result := render.DiffResult{FileA: req.NameA, FileB: req.NameB, Entries: entries, Summary: diff.Summarize(entries)}
	if req.HideSame {
		result.Entries = diff.Filter(entries, diff.Added, diff.Removed, diff.Changed)
	}
	if result.Entries == nil {
		result.Entries = []diff.Entry{}
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *handler) template(w http.ResponseWriter, r *http.Request) {
	tmpl, err := templates.Get(templates.ProjectType(r.PathValue("type")))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	content, err := tsconfig.Marshal(tmpl)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (h *handler) option(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	opt, ok := h.db.Lookup(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("%w: %s", optiondb.ErrUnknownOption, name))
		return
	}
	writeJSON(w, http.StatusOK, opt)
}

// readConfig 解析请求体中的 tsconfig，失败时写出错误响应。
func (h *handler) readConfig(w http.ResponseWriter, r *http.Request) (*tsconfig.Object, bool) {
	body, ok := h.readBody(w, r)
	if !ok {
		return nil, false
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		name = "request body"
	}
	cfg, err := tsconfig.Parse(name, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return nil, false
	}

	return cfg, true
}

func (h *handler) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if h.maxBody > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return nil, false
		}
		writeError(w, http.StatusBadRequest, fmt.Errorf("read body: %w", err))
		return nil, false
	}

	return body, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = render.New(w, render.FormatJSON, false).Data(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
