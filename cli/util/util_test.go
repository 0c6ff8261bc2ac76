package util

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	workDir := t.TempDir()
	cfgPath := filepath.Join(workDir, "gentem.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("gentem:\n  templates_dir: tpl\n"), 0o644))

	raw, err := ParseYAML(cfgPath)
	require.NoError(t, err)
	require.Contains(t, raw, "gentem")

	_, err = ParseYAML(filepath.Join(workDir, "missing.yaml"))
	require.Error(t, err)

	require.NoError(t, os.WriteFile(cfgPath, []byte("gentem: [\n"), 0o644))
	_, err = ParseYAML(cfgPath)
	require.ErrorContains(t, err, "failed to parse YAML")
}

func TestFileExists(t *testing.T) {
	workDir := t.TempDir()

	exists, err := FileExists(filepath.Join(workDir, "nothing"))
	require.NoError(t, err)
	assert.False(t, exists)

	fileName := filepath.Join(workDir, "file")
	require.NoError(t, os.WriteFile(fileName, nil, 0o644))
	exists, err = FileExists(fileName)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.True(t, IsRegularFile(fileName))
	assert.False(t, IsDir(fileName))
	assert.True(t, IsDir(workDir))
}

func TestValidationError(t *testing.T) {
	errSentinel := errors.New("sentinel")
	err := WrapValidationError(errSentinel, "bad value '%s'", "x")
	require.EqualError(t, err, "bad value 'x'")
	assert.ErrorIs(t, err, errSentinel)

	var validationErr *ValidationError
	assert.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &validationErr)

	assert.NotErrorIs(t, NewValidationError("plain"), errSentinel)
}

func TestHandleCmdErr(t *testing.T) {
	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	cmd := &cobra.Command{Use: "gentem"}

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"no error", nil, 0},
		{"validation", NewValidationError("bad input"), ValidationExitCode},
		{"wrapped validation", fmt.Errorf("x: %w", NewValidationError("bad")), ValidationExitCode},
		{"abort", ErrCmdAbort, 1},
		{"generic", errors.New("boom"), 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code = 0
			HandleCmdErr(cmd, tc.err)
			assert.Equal(t, tc.code, code)
		})
	}
}

func TestGetYamlFileName(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "gentem.yaml")

	name, err := GetYamlFileName(yamlPath, false)
	require.NoError(t, err)
	assert.Empty(t, name)

	_, err = GetYamlFileName(yamlPath, true)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(yamlPath, []byte("gentem:\n"), 0o644))
	name, err = GetYamlFileName(filepath.Join(dir, "gentem.yml"), true)
	require.NoError(t, err)
	assert.Equal(t, yamlPath, name)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "gentem.yml"), []byte("{}"), 0o644))
	_, err = GetYamlFileName(yamlPath, true)
	assert.ErrorContains(t, err, "Ambiguous selection")

	_, err = GetYamlFileName(filepath.Join(dir, "gentem.json"), true)
	assert.ErrorContains(t, err, "has no .yaml/.yml extension")
}
