// Package builtin_templates contains templates embedded into gentem binary.
package builtin_templates

import (
	"embed"
	"io/fs"
)

// TemplatesFs holds the built-in template tree. Hidden files (.dockerignore, .github)
// are part of the tree.
//
//go:embed all:templates
var TemplatesFs embed.FS

// Categories contains top-level template categories.
var Categories = [...]string{"base", "library", "cli", "script", "fastapi", "add"}

// FS returns the template tree rooted at the templates directory.
func FS() fs.FS {
	fsys, err := fs.Sub(TemplatesFs, "templates")
	if err != nil {
		// The directory is embedded at build time.
		panic(err)
	}
	return fsys
}
