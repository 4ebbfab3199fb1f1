package render

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260120-go-tsconfig-helper/internal/diff"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/explain"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/optiondb"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/templates"
	"github.com/lwmacct/260120-go-tsconfig-helper/internal/validate"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{" yaml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorEnabled(t *testing.T) {
	assert.False(t, ColorEnabled(nil, false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ColorEnabled(nil, false))
}

func TestPrinter_Explain(t *testing.T) {
	entries := []explain.Entry{
		{Option: "compilerOptions.strict", Value: "true", Description: "Enable all strict type-checking options.", Type: "boolean", Known: true},
		{Option: "compilerOptions.madeUp", Value: "1", Description: explain.UnknownDescription},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Explain("tsconfig.json", entries))

	out := buf.String()
	assert.Contains(t, out, "TSConfig Explanation: tsconfig.json")
	assert.Contains(t, out, "🔹 compilerOptions.strict\n   Value: true\n   Enable all strict type-checking options.\n   Type: boolean\n")
	assert.Contains(t, out, "⚠️  "+explain.UnknownDescription)
	assert.Contains(t, out, "✅ Explained 2 options")
	assert.NotContains(t, out, "\x1b[")
}

func TestPrinter_ExplainJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatJSON, false).Explain("tsconfig.json", nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestPrinter_Diff(t *testing.T) {
	entries := []diff.Entry{
		{Option: "compilerOptions.jsx", FileB: "react-jsx", Status: diff.Added},
		{Option: "compilerOptions.outDir", FileA: "./dist", Status: diff.Removed},
		{Option: "compilerOptions.target", FileA: "ES2020", FileB: "ES2022", Status: diff.Changed},
		{Option: "compilerOptions.strict", FileA: true, FileB: true, Status: diff.Same},
	}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText, false).Diff("a.json", "b.json", entries, false))

		out := buf.String()
		assert.Contains(t, out, "➕ Added in b.json (1):\n   compilerOptions.jsx: react-jsx\n")
		assert.Contains(t, out, "➖ Removed from b.json (1):\n   compilerOptions.outDir: ./dist\n")
		assert.Contains(t, out, "🔄 Changed (1):\n   compilerOptions.target:\n      a.json: ES2020\n      b.json: ES2022\n")
		assert.Contains(t, out, "📊 Summary: 1 added, 1 removed, 1 changed, 1 same")
		assert.NotContains(t, out, "compilerOptions.strict")
	})

	t.Run("json hides same entries", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatJSON, false).Diff("a.json", "b.json", entries, true))

		var got DiffResult
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Len(t, got.Entries, 3)
		assert.Equal(t, diff.Summary{Added: 1, Removed: 1, Changed: 1, Same: 1}, got.Summary)
	})

	t.Run("yaml keeps false values", func(t *testing.T) {
		var buf bytes.Buffer
		changed := []diff.Entry{{Option: "compilerOptions.strict", FileA: true, FileB: false, Status: diff.Changed}}
		require.NoError(t, New(&buf, FormatYAML, false).Diff("a.json", "b.json", changed, false))

		var got map[string]any
		require.NoError(t, yamlv3.Unmarshal(buf.Bytes(), &got))
		list, ok := got["entries"].([]any)
		require.True(t, ok)
		require.Len(t, list, 1)
		entry, ok := list[0].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, false, entry["fileB"])
	})

	t.Run("json keeps null values", func(t *testing.T) {
		var buf bytes.Buffer
		nulls := []diff.Entry{{Option: "compilerOptions.x", Status: diff.Same}}
		require.NoError(t, New(&buf, FormatJSON, false).Diff("a.json", "b.json", nulls, false))
		assert.Contains(t, buf.String(), "\"fileA\": null,\n      \"fileB\": null,")
	})

	t.Run("yaml keeps numbers", func(t *testing.T) {
		var buf bytes.Buffer
		depth := []diff.Entry{{
			Option: "compilerOptions.maxNodeModuleJsDepth",
			FileA:  json.Number("2"),
			FileB:  json.Number("3"),
			Status: diff.Changed,
		}}
		require.NoError(t, New(&buf, FormatYAML, false).Diff("a.json", "b.json", depth, false))
		assert.Contains(t, buf.String(), "fileA: 2\n")
		assert.Contains(t, buf.String(), "fileB: 3\n")
	})
}

func TestPrinter_Unified(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, FormatText, false)

	require.NoError(t, p.Unified(""))
	assert.Equal(t, "No changes.\n", buf.String())

	buf.Reset()
	text := "--- a.json\n+++ b.json\n@@ -1 +1 @@\n-a\n+b\n"
	require.NoError(t, p.Unified(text))
	assert.Equal(t, text, buf.String())
}

func TestPrinter_Validate(t *testing.T) {
	t.Run("no issues", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText, false).Validate("tsconfig.json", validate.Report{Issues: []validate.Issue{}, Valid: true}))
		assert.Contains(t, buf.String(), "✅ No issues found! Your tsconfig looks great.")
	})

	t.Run("grouped by severity", func(t *testing.T) {
		report := validate.Report{
			Issues: []validate.Issue{
				{Rule: "paths-base-url", Severity: validate.SeverityInfo, Option: "paths", Message: "paths is set", Suggestion: "Set baseUrl"},
				{Rule: "include-missing", Severity: validate.SeverityWarning, Message: "No \"include\" specified"},
				{Rule: "source-map-conflict", Severity: validate.SeverityError, Option: "sourceMap", Message: "conflict"},
			},
		}

		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText, false).Validate("tsconfig.json", report))

		out := buf.String()
		errIdx := bytes.Index(buf.Bytes(), []byte("❌ Errors:"))
		warnIdx := bytes.Index(buf.Bytes(), []byte("⚠️  Warnings:"))
		infoIdx := bytes.Index(buf.Bytes(), []byte("ℹ️  Suggestions:"))
		require.Positive(t, errIdx)
		assert.Less(t, errIdx, warnIdx)
		assert.Less(t, warnIdx, infoIdx)

		assert.Contains(t, out, "  [config] No \"include\" specified\n")
		assert.Contains(t, out, "  [paths] paths is set\n    💡 Set baseUrl\n")
		assert.Contains(t, out, "📊 Summary: 1 error(s), 1 warning(s), 1 suggestion(s)")
		assert.Contains(t, out, "❌ Validation failed.")
	})
}

func TestPrinter_Init(t *testing.T) {
	highlights, err := templates.Highlights(templates.Node)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Init(InitResult{Type: "node", Path: "/tmp/x/tsconfig.json", Highlights: highlights}))

	out := buf.String()
	assert.Contains(t, out, "✅ Created node tsconfig.json at: /tmp/x/tsconfig.json")
	assert.Contains(t, out, "   - Strict mode: ✓ enabled\n")
	assert.Contains(t, out, "   - Module: commonjs\n")
	assert.NotContains(t, out, "JSX")
}

func TestPrinter_OptionList(t *testing.T) {
	db, err := optiondb.Load()
	require.NoError(t, err)

	t.Run("category filter", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatJSON, false).OptionList(db, "no-such-category"))

		var got map[string][]optiondb.Option
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Empty(t, got["compilerOptions"])
		assert.NotContains(t, got, "top")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, New(&buf, FormatText, false).OptionList(db, ""))

		out := buf.String()
		assert.Contains(t, out, "Top-level fields")
		assert.Contains(t, out, "extends")
		assert.Contains(t, out, "★ strict")
	})
}

func TestPrinter_Option(t *testing.T) {
	opt := optiondb.Option{Name: "target", Description: "ECMAScript target.", Type: "string", Common: []string{"ES2020", "ES2022"}, Recommended: true}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Option("compilerOptions.target", opt))

	out := buf.String()
	assert.Contains(t, out, "🔹 compilerOptions.target")
	assert.Contains(t, out, "Common values: ES2020, ES2022")
	assert.Contains(t, out, "★ Recommended")
}

func TestPrinter_Rules(t *testing.T) {
	rules := []RuleInfo{
		{ID: "skip-lib-check", Description: "skipLibCheck not enabled"},
		{ID: "declaration-map", Description: "declaration without declarationMap", Disabled: true},
	}

	var buf bytes.Buffer
	require.NoError(t, New(&buf, FormatText, false).Rules(rules))
	assert.Contains(t, buf.String(), "  skip-lib-check             skipLibCheck not enabled\n")
	assert.Contains(t, buf.String(), "declaration without declarationMap (disabled)\n")
}
