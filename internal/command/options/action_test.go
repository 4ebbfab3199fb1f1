package options

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/command"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	root := command.NewRoot(New())
	root.Writer = &buf
	err := root.Run(context.Background(), append([]string{command.AppName}, args...))

	return buf.String(), err
}

func TestOptionsCommand(t *testing.T) {
	t.Run("single option", func(t *testing.T) {
		out, err := run(t, "options", "--json", "strict")
		require.NoError(t, err)

		var opt optiondb.Option
		require.NoError(t, json.Unmarshal([]byte(out), &opt))
		assert.Equal(t, "strict", opt.Name)
		assert.True(t, opt.Recommended)
	})

	t.Run("list", func(t *testing.T) {
		out, err := run(t, "options", "--no-color")
		require.NoError(t, err)
		assert.Contains(t, out, "Top-level fields")
		assert.Contains(t, out, "compiler options, ★ = recommended")
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := run(t, "options", "strictest")
		require.ErrorIs(t, err, optiondb.ErrUnknownOption)
	})
}
