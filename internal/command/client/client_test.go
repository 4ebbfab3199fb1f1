package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command/server"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/config"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

func newClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c := NewClient(config.ClientConfig{URL: srv.URL + "/", Timeout: 5 * time.Second, Retries: 2})
	c.backoff = time.Millisecond

	return c
}

func apiHandler(t *testing.T) http.Handler {
	t.Helper()
	db, err := optiondb.Load()
	require.NoError(t, err)
	cfg := config.DefaultConfig()

	return server.NewHandler(db, &cfg)
}

func TestClient_AgainstServer(t *testing.T) {
	ctx := context.Background()
	c := newClient(t, apiHandler(t))

	t.Run("health", func(t *testing.T) {
		require.NoError(t, c.Health(ctx))
	})

	t.Run("explain", func(t *testing.T) {
		entries, err := c.Explain(ctx, "tsconfig.json", []byte(`{"compilerOptions": {"strict": true, "madeUp": 1}}`))
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Known)
		assert.False(t, entries[1].Known)
	})

	t.Run("validate with disabled rules", func(t *testing.T) {
		report, err := c.Validate(ctx, "tsconfig.json", []byte(`{"compilerOptions": {}}`), []string{"include-missing"})
		require.NoError(t, err)
		assert.True(t, report.Valid)
		for _, issue := range report.Issues {
			assert.NotEqual(t, "include-missing", issue.Rule)
		}
		assert.Positive(t, report.Count(validate.SeverityInfo))
	})

	t.Run("diff", func(t *testing.T) {
		result, err := c.Diff(ctx, server.DiffRequest{
			A: `{"compilerOptions": {"strict": true}}`,
			B: `{"compilerOptions": {"strict": false}}`,
		})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, diff.Changed, result.Entries[0].Status)
		assert.Equal(t, false, result.Entries[0].FileB)
	})

	t.Run("template", func(t *testing.T) {
		raw, err := c.Template(ctx, "library")
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"declarationMap": true`)
	})

	t.Run("api errors are not retried", func(t *testing.T) {
		_, err := c.Template(ctx, "angular")
		require.ErrorIs(t, err, ErrAPI)
		assert.Contains(t, err.Error(), "(404)")
	})
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, `{"error":"busy"}`, http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))

	require.NoError(t, c.Health(context.Background()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	c := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error":"down"}`, http.StatusInternalServerError)
	}))

	err := c.Health(context.Background())
	require.ErrorIs(t, err, ErrAPI)
	assert.Contains(t, err.Error(), "down")
	assert.Equal(t, int32(3), calls.Load())
}
