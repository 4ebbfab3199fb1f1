package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/render"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

const sampleConfig = `{
  // comments are allowed
  "compilerOptions": {
    "strict": true,
    "noImplicitAny": true,
    "sourceMap": true,
    "inlineSourceMap": true,
  },
  "include": ["src"],
}`

func newTestServer(t *testing.T, mutate ...func(*config.Config)) *httptest.Server {
	t.Helper()
	db, err := optiondb.Load()
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	srv := httptest.NewServer(NewHandler(db, &cfg))
	t.Cleanup(srv.Close)

	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body)) //nolint:noctx // test helper
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/health") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestExplain(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/explain", sampleConfig)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var entries []explain.Entry
	decode(t, resp, &entries)
	require.NotEmpty(t, entries)
	assert.Equal(t, "include", entries[0].Option)
	assert.Equal(t, "compilerOptions.strict", entries[1].Option)
}

func TestExplain_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp := post(t, srv.URL+"/explain?name=broken.json", `{"compilerOptions": `)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["error"], "broken.json")
}

func TestValidate(t *testing.T) {
	t.Run("reports conflicts", func(t *testing.T) {
		srv := newTestServer(t)

		resp := post(t, srv.URL+"/validate", sampleConfig)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report validate.Report
		decode(t, resp, &report)
		assert.False(t, report.Valid)
		assert.Equal(t, 1, report.Count(validate.SeverityError))
	})

	t.Run("settings and query disable rules", func(t *testing.T) {
		srv := newTestServer(t, func(c *config.Config) {
			c.Validate.Disable = []string{"source-map-conflict"}
		})

		resp := post(t, srv.URL+"/validate?disable=strict-redundant,skip-lib-check", sampleConfig)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var report validate.Report
		decode(t, resp, &report)
		assert.True(t, report.Valid)
		for _, issue := range report.Issues {
			assert.NotContains(t, []string{"source-map-conflict", "strict-redundant", "skip-lib-check"}, issue.Rule)
		}
	})

	t.Run("unknown rule", func(t *testing.T) {
		srv := newTestServer(t)

		resp := post(t, srv.URL+"/validate?disable=nope", sampleConfig)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDiff(t *testing.T) {
	srv := newTestServer(t)

	req, err := json.Marshal(DiffRequest{
		A:        `{"compilerOptions": {"target": "ES2020", "strict": true}}`,
		B:        `{"compilerOptions": {"target": "ES2022", "strict": true, "jsx": "react-jsx"}}`,
		HideSame: true,
	})
	require.NoError(t, err)

	resp := post(t, srv.URL+"/diff", string(req))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result render.DiffResult
	decode(t, resp, &result)
	assert.Equal(t, diff.Summary{Added: 1, Changed: 1, Same: 1}, result.Summary)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "compilerOptions.jsx", result.Entries[0].Option)
	assert.Equal(t, diff.Added, result.Entries[0].Status)
}

func TestTemplates(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/templates/node") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("{\n  \"compilerOptions\": {\n    \"target\": \"ES2022\",")))

	missing, err := http.Get(srv.URL + "/templates/angular") //nolint:noctx // test
	require.NoError(t, err)
	defer missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestOptions(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/options/compilerOptions.strict") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var opt optiondb.Option
	decode(t, resp, &opt)
	assert.Equal(t, "strict", opt.Name)
	assert.Equal(t, "boolean", opt.Type)
}

func TestBodyLimit(t *testing.T) {
	srv := newTestServer(t, func(c *config.Config) { c.Server.MaxBody = 16 })

	resp := post(t, srv.URL+"/explain", sampleConfig)
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
}

func TestMetrics(t *testing.T) {
	srv := newTestServer(t)
	post(t, srv.URL+"/validate", sampleConfig)

	resp, err := http.Get(srv.URL + "/metrics") //nolint:noctx // test
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `tsconfig_helper_requests_total{code="200",method="post",route="validate"} 1`)
	assert.Contains(t, string(body), `tsconfig_helper_validate_issues_total{severity="error"} 1`)
}
