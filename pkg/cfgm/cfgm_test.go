package cfgm

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type testServer struct {
	Addr    string        `json:"addr" desc:"监听地址"`
	Timeout time.Duration `json:"timeout" desc:"读写超时"`
}

type testConfig struct {
	Format  string     `json:"format" desc:"输出格式"`
	NoColor bool       `json:"no-color" desc:"禁用颜色"`
	Disable []string   `json:"disable" desc:"禁用的规则"`
	Server  testServer `json:"server" desc:"HTTP 服务"`
}

func testDefaults() testConfig {
	return testConfig{
		Format: "text",
		Server: testServer{Addr: ":40118", Timeout: 15 * time.Second},
	}
}

func noEnv(string) (string, bool) { return "", false }

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "settings.yaml", "format: yaml\nserver:\n  timeout: 3s\n")

	cfg, info, err := LoadInfo(testDefaults(),
		WithBaseDir(dir),
		WithConfigPaths("missing.yaml", "settings.yaml"),
		WithLookup(noEnv),
	)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, 3*time.Second, cfg.Server.Timeout)
	assert.Equal(t, ":40118", cfg.Server.Addr, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(dir, "settings.yaml"), info.File)
}

func TestLoad_JSONWithComments(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.json", `{
  // team defaults
  "disable": ["skip-lib-check",],
  "server": {"addr": "http://localhost:1"}, /* url stays intact */
}`)

	cfg, err := Load(testDefaults(), WithConfigFile(path), WithLookup(noEnv))
	require.NoError(t, err)
	assert.Equal(t, []string{"skip-lib-check"}, cfg.Disable)
	assert.Equal(t, "http://localhost:1", cfg.Server.Addr)
}

func TestLoad_ConfigFileMissing(t *testing.T) {
	_, err := Load(testDefaults(), WithConfigFile(filepath.Join(t.TempDir(), "nope.yaml")))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.yaml", "- just\n- a list\n")

	_, err := Load(testDefaults(), WithConfigFile(path), WithLookup(noEnv))
	require.ErrorIs(t, err, ErrNotObject)
	assert.Contains(t, err.Error(), "bad.yaml")
}

func TestLoad_TemplateExpansion(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "format: ${OUT_FORMAT:-json}\nserver:\n  addr: ${LISTEN}\n")
	lookup := func(name string) (string, bool) {
		if name == "LISTEN" {
			return ":9000", true
		}
		return "", false
	}

	t.Run("expanded", func(t *testing.T) {
		cfg, err := Load(testDefaults(), WithConfigFile(path), WithLookup(lookup))
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, ":9000", cfg.Server.Addr)
	})

	t.Run("disabled", func(t *testing.T) {
		cfg, err := Load(testDefaults(), WithConfigFile(path), WithLookup(lookup), WithoutTemplateExpansion())
		require.NoError(t, err)
		assert.Equal(t, "${OUT_FORMAT:-json}", cfg.Format)
	})
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "settings.yaml", "format: yaml\nno-color: false\n")
	env := map[string]string{
		"TSCH_FORMAT":         "json",
		"TSCH_NO_COLOR":       "true",
		"TSCH_SERVER_TIMEOUT": "1m",
		"TSCH_UNRELATED":      "x",
	}

	cfg, info, err := LoadInfo(testDefaults(),
		WithConfigFile(path),
		WithEnvPrefix("TSCH_"),
		WithLookup(func(name string) (string, bool) {
			v, ok := env[name]
			return v, ok
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, time.Minute, cfg.Server.Timeout)
	assert.Equal(t, []string{"TSCH_FORMAT", "TSCH_NO_COLOR", "TSCH_SERVER_TIMEOUT"}, info.Env)
}

func TestLoad_FlagsOverrideEverything(t *testing.T) {
	env := map[string]string{"TSCH_FORMAT": "json"}

	var (
		got  *testConfig
		info *Info
	)
	root := &cli.Command{
		Name: "app",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}},
		},
		Commands: []*cli.Command{{
			Name: "run",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "server-addr"},
				&cli.StringSliceFlag{Name: "disable"},
				&cli.DurationFlag{Name: "server-timeout"},
			},
			Action: func(_ context.Context, cmd *cli.Command) error {
				var err error
				got, info, err = LoadInfo(testDefaults(),
					WithCommand(cmd),
					WithConfigPaths(),
					WithEnvPrefix("TSCH_"),
					WithLookup(func(name string) (string, bool) {
						v, ok := env[name]
						return v, ok
					}),
				)
				return err
			},
		}},
	}

	err := root.Run(context.Background(), []string{"app", "-f", "yaml", "run", "--server-addr", ":1", "--disable", "a", "--disable", "b"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "yaml", got.Format, "parent flag set through its alias wins over env")
	assert.Equal(t, ":1", got.Server.Addr)
	assert.Equal(t, []string{"a", "b"}, got.Disable)
	assert.Equal(t, 15*time.Second, got.Server.Timeout, "unset flag keeps default")
	assert.ElementsMatch(t, []string{"format", "disable", "server-addr"}, info.Flags)
}

func TestEnvBindings(t *testing.T) {
	got := envBindings("TSCH_", configKeys(reflect.TypeOf(testDefaults())))
	assert.Equal(t, map[string]string{
		"TSCH_FORMAT":         "format",
		"TSCH_NO_COLOR":       "no-color",
		"TSCH_DISABLE":        "disable",
		"TSCH_SERVER_ADDR":    "server.addr",
		"TSCH_SERVER_TIMEOUT": "server.timeout",
	}, got)
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "server-addr", FlagName("server.addr"))
	assert.Equal(t, "validate-fail-on", FlagName("validate.fail-on"))
}
