package version

import (
	"bytes"
	"context"
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
)

func TestInfoString(t *testing.T) {
	info := Info{App: "tsconfig-helper", Version: "v1.2.0", Commit: "0123456789abcdef", Go: "go1.25"}
	assert.Equal(t, "tsconfig-helper v1.2.0 (0123456789ab) go1.25", info.String())

	info.Commit = ""
	assert.Equal(t, "tsconfig-helper v1.2.0 go1.25", info.String())
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, command.AppName, info.App)
	assert.NotEmpty(t, info.Version)
	assert.Equal(t, runtime.Version(), info.Go)
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	root := command.NewRoot(New())
	root.Writer = &buf
	require.NoError(t, root.Run(context.Background(), append([]string{command.AppName}, args...)))

	return buf.String()
}

func TestCommand(t *testing.T) {
	var info Info
	require.NoError(t, json.Unmarshal([]byte(run(t, "version", "--json")), &info))
	assert.Equal(t, command.AppName, info.App)

	assert.True(t, strings.HasPrefix(run(t, "version"), command.AppName+" "))
}
