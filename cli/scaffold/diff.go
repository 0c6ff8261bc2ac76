package scaffold

import (
	"fmt"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between current and rendered file content.
// An empty string is returned for equal content.
func UnifiedDiff(current, rendered, name string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		FromFile: "a/" + name,
		B:        difflib.SplitLines(rendered),
		ToFile:   "b/" + name,
		Context:  3,
	}
	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("failed to build diff of %s: %w", name, err)
	}
	return text, nil
}
