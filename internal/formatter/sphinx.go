package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/routelabel/routelabel/internal/errors"
	"github.com/routelabel/routelabel/internal/models"
)

// Sphinx renders routes as a reST document for Sphinx: per route a
// `METH1/METH2 /rule` heading underlined with `=`, registry output for
// extra decorators, then the docstring under a **Notes:** label.
// Routes are written in source order; grouping options do not apply.
type Sphinx struct {
	registry Registry
}

func (s *Sphinx) Write(w io.Writer, modules []ModuleDoc, _ Options) error {
	for _, route := range flatten(modules) {
		if err := s.writeRoute(w, route); err != nil {
			return err
		}
	}
	return nil
}

func (s *Sphinx) writeRoute(w io.Writer, route *models.Route) error {
	var b strings.Builder

	endpoint := strings.Join(route.Methods, "/") + " " + route.RawRule
	fmt.Fprintf(&b, "%s\n", endpoint)
	fmt.Fprintf(&b, "%s\n", strings.Repeat("=", len(endpoint)))

	if err := s.registry.dispatch(&b, route.OtherDecorators); err != nil {
		return errors.WrapFormat("sphinx", err)
	}

	fmt.Fprint(&b, "\n**Notes:**\n\n")
	fmt.Fprintf(&b, "%s\n\n", route.Docstring())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.WrapFormat("sphinx", err)
	}
	return nil
}
