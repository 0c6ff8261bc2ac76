package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setBuildInfo(t *testing.T, tag, commit, label string) {
	t.Helper()
	oldTag, oldCommit, oldLabel := gitTag, gitCommit, versionLabel
	gitTag, gitCommit, versionLabel = tag, commit, label
	t.Cleanup(func() {
		gitTag, gitCommit, versionLabel = oldTag, oldCommit, oldLabel
	})
}

func TestGetVersion(t *testing.T) {
	setBuildInfo(t, "v1.2.3", "abc123", "")
	assert.Equal(t, "1.2.3", GetVersion(true, false))
	assert.Equal(t, "1.2.3.abc123", GetVersion(false, true))
	assert.Equal(t, "gentem version 1.2.3, "+runtime.GOOS+"/"+runtime.GOARCH+
		". commit: abc123", GetVersion(false, false))
	assert.Equal(t, "1.2.3", GeneratorVersion())
}

func TestGetVersionLabelAndPrerelease(t *testing.T) {
	setBuildInfo(t, "v2.0.0-rc1", "def", "dev")
	assert.Equal(t, "2.0.0-rc1/dev", GetVersion(true, false))
	assert.Equal(t, "2.0.0-rc1", GeneratorVersion())
}

func TestGetVersionNotSemantic(t *testing.T) {
	setBuildInfo(t, "nightly", "def", "")
	assert.Equal(t, "nightly", GetVersion(true, false))
}

func TestGetVersionUnknown(t *testing.T) {
	setBuildInfo(t, "", "", "")
	assert.Equal(t, "<unknown>", GetVersion(true, false))
	assert.Empty(t, GeneratorVersion())
}
