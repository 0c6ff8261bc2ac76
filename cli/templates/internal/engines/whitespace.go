package engines

import (
	"regexp"
	"strings"
)

// blockLinePattern matches a line holding nothing but block-control actions: the leading
// indentation, the actions and the line break are matched together.
var blockLinePattern = regexp.MustCompile(`(?m)^[ \t]*(?:\{\{-?\s*(?:(?:if|else|end|range|` +
	`with|define|block|break|continue)\b|/\*)[^}]*\}\}[ \t]*)+\r?\n`)

// trimBlockLines removes indentation and the trailing line break around block-control
// actions standing on their own line, so conditionals and loops do not leave blank lines
// or stray indentation in the output.
func trimBlockLines(body string) string {
	return blockLinePattern.ReplaceAllStringFunc(body, strings.TrimSpace)
}
