package util

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Capitalize returns s with the first rune upper-cased and the rest lower-cased.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	first, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(first)) + strings.ToLower(s[size:])
}

// Slugify returns lower-dash form of the project name: "My_Project" -> "my-project".
func Slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// PackageName returns importable package form of the project name:
// "my-project" -> "my_project".
func PackageName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "-", "_")
}

// ClassName returns class-style form of the project name: "my_project" -> "MyProject".
func ClassName(name string) string {
	var builder strings.Builder
	for _, word := range strings.Split(name, "_") {
		builder.WriteString(Capitalize(word))
	}
	return builder.String()
}
