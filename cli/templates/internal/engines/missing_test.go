package engines

import (
	"testing"
	"text/template"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithMissingFields(t *testing.T) {
	parsed, err := template.New("t").Funcs(commonTemplateFuncs).Parse(
		`{{ .name }}{{ if .async_mode }}{{ .db }}{{ end }}` +
			`{{ range .versions }}{{ .Major }}{{ $.inner }}{{ end }}` +
			`{{ with .cfg }}{{ .nested }}{{ end }}{{ default "x" .author }}`)
	require.NoError(t, err)

	data := withMissingFields("t", treesOf(parsed), map[string]any{"name": "demo"})
	assert.Equal(t, map[string]any{
		"name":       "demo",
		"async_mode": "",
		"db":         "",
		"versions":   []string{},
		"inner":      "",
		"cfg":        "",
		"author":     "",
	}, data)
}

func TestWithMissingFieldsKeepsOriginal(t *testing.T) {
	parsed, err := template.New("t").Parse(`{{ .a }}{{ .b }}`)
	require.NoError(t, err)

	original := map[string]any{"a": 1}
	data := withMissingFields("t", treesOf(parsed), original)
	assert.Equal(t, map[string]any{"a": 1}, original)
	assert.Equal(t, map[string]any{"a": 1, "b": ""}, data)
}

func TestWithMissingFieldsNested(t *testing.T) {
	parsed, err := template.New("t").Parse(
		`{{ .cfg }}{{ .cfg.name }}{{ range $.cfg.items }}{{ end }}{{ .tool.poetry.name }}`)
	require.NoError(t, err)

	data := withMissingFields("t", treesOf(parsed), map[string]any{})
	assert.Equal(t, map[string]any{
		"cfg": map[string]any{
			"name":  "",
			"items": []string{},
		},
		"tool": map[string]any{
			"poetry": map[string]any{"name": ""},
		},
	}, data)
}

func TestWithMissingFieldsDefinedTemplates(t *testing.T) {
	parsed, err := template.New("t").Parse(
		`{{ define "header" }}{{ .title }}{{ template "footer" $ }}{{ end }}` +
			`{{ define "footer" }}{{ .footer }}{{ end }}` +
			`{{ define "item" }}{{ .item_name }}{{ end }}` +
			`{{ template "header" . }}{{ range .items }}{{ template "item" . }}{{ end }}`)
	require.NoError(t, err)

	data := withMissingFields("t", treesOf(parsed), nil)
	assert.Equal(t, map[string]any{
		"title":  "",
		"footer": "",
		"items":  []string{},
	}, data)
}

func TestRenderTextMissingEdges(t *testing.T) {
	engine := newTestEngine()
	testCases := []struct {
		name     string
		text     string
		data     map[string]any
		expected string
	}{
		{
			"nested reference",
			`[{{ .cfg.name }}]{{ if .cfg.enabled }}on{{ else }}off{{ end }}`,
			nil,
			"[]off",
		},
		{
			"eq on missing",
			`{{ if eq .n 1 }}one{{ else }}other{{ end }}`,
			map[string]any{},
			"other",
		},
		{
			"ne on missing",
			`{{ if ne .n 1 }}differs{{ end }}`,
			map[string]any{},
			"differs",
		},
		{
			"eq on set",
			`{{ if eq .n 1 }}one{{ end }}{{ if eq .db "asyncpg" "sqlite" }} db{{ end }}`,
			map[string]any{"n": 1, "db": "sqlite"},
			"one db",
		},
		{
			"defined template",
			`{{ define "x" }}[{{ .foo }}]{{ end }}{{ template "x" . }}`,
			map[string]any{},
			"[]",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := engine.RenderText(tc.text, tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
			assert.NotContains(t, actual, "<no value>")
		})
	}
}

func TestValuesEqual(t *testing.T) {
	assert.True(t, equal(1, 2, uint8(1)))
	assert.True(t, equal("a", "a"))
	assert.True(t, equal(nil, nil))
	assert.False(t, equal("", 0))
	assert.False(t, equal(nil, ""))
	assert.False(t, equal(-1, uint(1)))
	assert.True(t, equal(1.5, 1.5))
	assert.False(t, equal([]string{}, []string{}))
	assert.True(t, notEqual("", 1))
	assert.False(t, notEqual(true, true))
}
