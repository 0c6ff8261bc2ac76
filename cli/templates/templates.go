// Package templates provides the template store and rendering engine used to
// instantiate project files.
package templates

import (
	"io/fs"
	"sync"

	"github.com/gentem/gentem/cli/templates/builtin_templates"
	"github.com/gentem/gentem/cli/templates/internal/engines"
)

// Context is a set of variables applied to a template: strings, booleans, integers and
// string sequences. Missing variables render as empty values.
type Context map[string]any

// Clone returns a shallow copy of the context.
func (ctx Context) Clone() Context {
	clone := make(Context, len(ctx))
	for key, value := range ctx {
		clone[key] = value
	}
	return clone
}

// TemplateEngine is an interface to support to use for project files instantiation.
type TemplateEngine interface {
	// Render applies data to the named template. Returns instantiated text.
	Render(name string, data map[string]any) (string, error)

	// RenderToFile applies data to the named template. Instantiated template is saved
	// as dstPath, parent directories are created.
	RenderToFile(name string, data map[string]any, dstPath string) error

	// RenderText applies data to the template text. Returns instantiated text.
	RenderText(in string, data map[string]any) (string, error)

	// HasTemplate returns true if the named template exists.
	HasTemplate(name string) bool

	// ListTemplates returns sorted names of all templates, or of one category only.
	ListTemplates(category string) ([]string, error)

	// MatchTemplates returns sorted names of templates matching a glob pattern.
	MatchTemplates(pattern string) ([]string, error)
}

// AutoescapeMode selects output escaping.
type AutoescapeMode = engines.AutoescapeMode

const (
	// AutoescapeNone passes values through as is. Used for code and config files.
	AutoescapeNone = engines.AutoescapeNone
	// AutoescapeHTML escapes values in templates producing .html, .htm and .xml files.
	AutoescapeHTML = engines.AutoescapeHTML
)

// TemplateExt is the file name suffix of stored templates.
const TemplateExt = engines.TemplateExt

// ErrTemplateNotFound is returned when a requested template does not exist.
var ErrTemplateNotFound = engines.ErrTemplateNotFound

// RenderError is returned when a template is malformed or fails to execute.
type RenderError = engines.RenderError

// Option configures a template engine.
type Option = engines.Option

// WithAutoescape sets output escaping mode.
func WithAutoescape(mode AutoescapeMode) Option {
	return engines.WithAutoescape(mode)
}

// NewEngine creates a template engine serving templates from fsys.
func NewEngine(fsys fs.FS, opts ...Option) TemplateEngine {
	return engines.NewGoTextEngine(fsys, opts...)
}

var (
	defaultEngine     TemplateEngine
	defaultEngineOnce sync.Once
)

// NewDefaultEngine returns the process-wide engine serving built-in templates. It is
// created on first use and never changes afterwards.
func NewDefaultEngine() TemplateEngine {
	defaultEngineOnce.Do(func() {
		defaultEngine = NewEngine(builtin_templates.FS())
	})
	return defaultEngine
}
