// Package formatter renders extracted routes as documentation.
package formatter

import (
	"fmt"
	"io"

	"github.com/routelabel/routelabel/internal/decorator"
	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/models"
)

// ModuleDoc groups the routes extracted from a single Python module
// together with the module's name and docstring.
type ModuleDoc struct {
	Name   string
	Doc    string
	Routes []*models.Route
}

// Options control document-level rendering behavior.
type Options struct {
	// GroupByModule emits a heading and the module docstring before
	// each module's routes instead of one flat route list.
	GroupByModule bool
}

// Formatter writes a documentation rendering of the given modules.
type Formatter interface {
	Write(w io.Writer, modules []ModuleDoc, opts Options) error
}

// HandlerFunc renders output for one extra (non-route) decorator.
type HandlerFunc func(w io.Writer, dec *decorator.CallDescriptor) error

// Registry maps a flattened decorator name to its output handler.
// Decorators without an entry are ignored.
type Registry map[string]HandlerFunc

func (r Registry) dispatch(w io.Writer, decorators []*decorator.CallDescriptor) error {
	for _, dec := range decorators {
		handler, ok := r[dec.Name]
		if !ok {
			continue
		}
		if err := handler(w, dec); err != nil {
			return err
		}
	}
	return nil
}

// DefaultRegistry returns the built-in decorator handlers.
func DefaultRegistry() Registry {
	return Registry{
		"headered": func(w io.Writer, _ *decorator.CallDescriptor) error {
			_, err := fmt.Fprint(w, "\n_X-Arbitrary-Header_: Here is a header!\n")
			return err
		},
	}
}

// Names of the supported output formats.
const (
	FormatMarkdown = "markdown"
	FormatSphinx   = "sphinx"
	FormatTable    = "table"
)

// New returns the formatter for the named output format.
func New(format string, registry Registry) (Formatter, error) {
	if registry == nil {
		registry = DefaultRegistry()
	}
	switch format {
	case FormatMarkdown:
		return &Markdown{registry: registry}, nil
	case FormatSphinx:
		return &Sphinx{registry: registry}, nil
	case FormatTable:
		return &Table{}, nil
	default:
		return nil, errors.New(errors.FormatCode, "unknown output format %q", format)
	}
}

func flatten(modules []ModuleDoc) []*models.Route {
	var routes []*models.Route
	for _, mod := range modules {
		routes = append(routes, mod.Routes...)
	}
	return routes
}
