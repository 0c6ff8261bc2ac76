package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	tests := []struct {
		name      string
		slug      string
		pkg       string
		className string
	}{
		{"my_project", "my-project", "my_project", "MyProject"},
		{"MyProject", "myproject", "myproject", "Myproject"},
		{"my-test-project", "my-test-project", "my_test_project", "My-test-project"},
		{"api", "api", "api", "Api"},
		{"", "", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.slug, Slugify(tc.name))
			assert.Equal(t, tc.pkg, PackageName(tc.name))
			assert.Equal(t, tc.className, ClassName(tc.name))
		})
	}
}
