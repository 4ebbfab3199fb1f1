package templexp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/260120-go-tsconfig-helper/pkg/templexp"
)

func TestExpandTemplate_ShellParameterExpansion(t *testing.T) {
	t.Setenv("TSCH_SET", "set-value")
	t.Setenv("TSCH_EMPTY", "")

	tests := []struct {
		name     string
		template string
		want     string
		wantErr  bool
		errMsg   string
	}{
		{name: "basic expansion", template: `prefix-${TSCH_SET}-suffix`, want: "prefix-set-value-suffix"},
		{name: "missing expands to empty", template: `x=${TSCH_MISSING}`, want: "x="},
		{name: "fallback with colon treats empty as unset", template: `${TSCH_EMPTY:-fallback}`, want: "fallback"},
		{name: "fallback without colon keeps empty", template: `x=${TSCH_EMPTY-fallback}`, want: "x="},
		{name: "alternate with colon", template: `${TSCH_SET:+alt}`, want: "alt"},
		{name: "alternate skipped for empty", template: `x=${TSCH_EMPTY:+alt}`, want: "x="},
		{name: "nested fallback", template: `${TSCH_MISSING:-${TSCH_SET}}`, want: "set-value"},
		{name: "assignment visible later in same text", template: `${TSCH_NEW:=value}-${TSCH_NEW}`, want: "value-value"},
		{name: "literal dollar", template: `$$${TSCH_SET}`, want: "$set-value"},
		{name: "bare dollar untouched", template: `cost $5 and $HOME`, want: "cost $5 and $HOME"},
		{name: "unrecognised expression kept", template: `${1abc} ${TSCH_SET:x}`, want: "${1abc} ${TSCH_SET:x}"},
		{name: "unterminated kept", template: `${TSCH_SET`, want: "${TSCH_SET"},
		{name: "required var triggers error", template: `${TSCH_MISSING:?missing}`, wantErr: true, errMsg: "missing"},
		{name: "required var default message", template: `${TSCH_MISSING?}`, wantErr: true, errMsg: "parameter null or not set"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := templexp.ExpandTemplate(tt.template)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpand_CustomLookup(t *testing.T) {
	vars := map[string]string{"configDir": "/work/app"}
	lookup := func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	}

	got, err := templexp.Expand(`${configDir}/src/**/*`, lookup)
	require.NoError(t, err)
	assert.Equal(t, "/work/app/src/**/*", got)

	got, err = templexp.Expand(`${outDir:-dist}`, lookup)
	require.NoError(t, err)
	assert.Equal(t, "dist", got)

	got, err = templexp.Expand(`${configDir}`, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExpand_AssignmentDoesNotLeak(t *testing.T) {
	_, err := templexp.Expand(`${TSCH_LEAK:=x}`, nil)
	require.NoError(t, err)

	got, err := templexp.Expand(`${TSCH_LEAK:-unset}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "unset", got)
}

func TestPlaceholders(t *testing.T) {
	got := templexp.Placeholders(`$${skip} ${configDir}/a/${NAME:-${configDir}} ${9bad}`)
	require.Len(t, got, 2)

	assert.Equal(t, "configDir", got[0].Name)
	assert.Empty(t, got[0].Op)
	assert.Equal(t, "${configDir}", got[0].Raw)
	assert.Equal(t, 9, got[0].Offset)

	assert.Equal(t, "NAME", got[1].Name)
	assert.Equal(t, ":-", got[1].Op)
	assert.Equal(t, "${configDir}", got[1].Word)
	assert.Equal(t, "${NAME:-${configDir}}", got[1].Raw)

	assert.Empty(t, templexp.Placeholders("no placeholders here"))
}
